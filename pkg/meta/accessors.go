// Package meta is the typed access layer over a loosely-typed metadata
// store.
//
// Every accessor is total: lookup misses and coercion failures degrade
// silently to the caller-supplied default, never to an error or a panic.
// That trades diagnosability for ergonomic call sites; callers who need to
// tell "absent" from "present but wrong type" should use the store's
// Exists/Value primitives directly.
package meta

import (
	"time"

	"github.com/aretw0/silt/pkg/convert"
	"github.com/aretw0/silt/pkg/core"
)

// Get retrieves the value under key coerced to T, or def when the key is
// absent or the value cannot be coerced. This is the generic primitive the
// per-type accessors delegate to.
func Get[T any](s core.Store, key string, def T) T {
	if s == nil {
		return def
	}
	raw, ok := s.Value(key)
	if !ok {
		return def
	}
	v, ok := convert.To[T](raw)
	if !ok {
		return def
	}
	return v
}

// GetString retrieves a string value.
func GetString(s core.Store, key string, def string) string {
	return Get(s, key, def)
}

// GetBool retrieves a boolean value.
func GetBool(s core.Store, key string, def bool) bool {
	return Get(s, key, def)
}

// GetInt retrieves an integer value.
func GetInt(s core.Store, key string, def int) int {
	return Get(s, key, def)
}

// GetInt64 retrieves a 64-bit integer value.
func GetInt64(s core.Store, key string, def int64) int64 {
	return Get(s, key, def)
}

// GetFloat retrieves a floating-point value.
func GetFloat(s core.Store, key string, def float64) float64 {
	return Get(s, key, def)
}

// GetTime retrieves a timestamp value. The zero time is the conventional
// default when the caller has none of its own.
func GetTime(s core.Store, key string, def time.Time) time.Time {
	return Get(s, key, def)
}

// GetFilePath retrieves a file path value. Strings that do not parse as a
// file path fall back to def like any other coercion failure.
func GetFilePath(s core.Store, key string, def core.FilePath) core.FilePath {
	return Get(s, key, def)
}

// GetDirPath retrieves a directory path value.
func GetDirPath(s core.Store, key string, def core.DirPath) core.DirPath {
	return Get(s, key, def)
}

// GetList retrieves an ordered list of T.
//
// Singleton promotion is part of the contract: a key holding a single
// value coercible to T yields a one-element list, so callers never need to
// know whether the author stored one value or many. A genuine sequence
// yields its coercible items in original order.
func GetList[T any](s core.Store, key string, def []T) []T {
	if s == nil {
		return def
	}
	raw, ok := s.Value(key)
	if !ok {
		return def
	}
	list, ok := convert.ToList[T](raw)
	if !ok {
		return def
	}
	return list
}

// GetDocument retrieves a nested document.
//
// Returns nil when the key is absent or the value is not a document shape.
// A sequence is never unwrapped into a document.
func GetDocument(s core.Store, key string) core.Metadata {
	if s == nil {
		return nil
	}
	raw, ok := s.Value(key)
	if !ok {
		return nil
	}
	doc, ok := convert.ToMetadata(raw)
	if !ok {
		return nil
	}
	return doc
}

// GetDocuments retrieves an ordered collection of nested documents.
//
// Two absence tiers, kept distinguishable on purpose:
//   - key absent: nil ("no collection defined")
//   - key present but no item coerces to a document: empty, non-nil slice
//     ("collection defined, but empty/invalid")
//
// A single document value is promoted to a one-element collection.
func GetDocuments(s core.Store, key string) []core.Metadata {
	if s == nil {
		return nil
	}
	raw, ok := s.Value(key)
	if !ok {
		return nil
	}

	items, _ := convert.ToSlice(raw)
	out := make([]core.Metadata, 0, len(items))
	for _, it := range items {
		if doc, ok := convert.ToMetadata(it); ok {
			out = append(out, doc)
		}
	}
	return out
}

// GetAny retrieves the raw, loosely-typed value.
//
// A resolved nil (absent key, or a key explicitly holding nil) is replaced
// by def post-hoc: nil must never propagate out of this accessor when the
// caller supplied something better.
func GetAny(s core.Store, key string, def any) any {
	if s == nil {
		return def
	}
	raw, ok := s.Value(key)
	if !ok || raw == nil {
		return def
	}
	return raw
}
