package silt

import (
	"time"

	"github.com/aretw0/silt/pkg/core"
	"github.com/aretw0/silt/pkg/meta"
)

// Root-level re-exports of the typed accessor layer, so most callers only
// import the silt package. See pkg/meta for the full contract.

// Get retrieves the value under key coerced to T, or def on a miss or
// coercion failure.
func Get[T any](s core.Store, key string, def T) T {
	return meta.Get(s, key, def)
}

// GetString retrieves a string value.
func GetString(s core.Store, key string, def string) string {
	return meta.GetString(s, key, def)
}

// GetBool retrieves a boolean value.
func GetBool(s core.Store, key string, def bool) bool {
	return meta.GetBool(s, key, def)
}

// GetInt retrieves an integer value.
func GetInt(s core.Store, key string, def int) int {
	return meta.GetInt(s, key, def)
}

// GetInt64 retrieves a 64-bit integer value.
func GetInt64(s core.Store, key string, def int64) int64 {
	return meta.GetInt64(s, key, def)
}

// GetFloat retrieves a floating-point value.
func GetFloat(s core.Store, key string, def float64) float64 {
	return meta.GetFloat(s, key, def)
}

// GetTime retrieves a timestamp value.
func GetTime(s core.Store, key string, def time.Time) time.Time {
	return meta.GetTime(s, key, def)
}

// GetFilePath retrieves a file path value.
func GetFilePath(s core.Store, key string, def core.FilePath) core.FilePath {
	return meta.GetFilePath(s, key, def)
}

// GetDirPath retrieves a directory path value.
func GetDirPath(s core.Store, key string, def core.DirPath) core.DirPath {
	return meta.GetDirPath(s, key, def)
}

// GetList retrieves an ordered list of T, with singleton promotion.
func GetList[T any](s core.Store, key string, def []T) []T {
	return meta.GetList(s, key, def)
}

// GetDocument retrieves a nested document, or nil.
func GetDocument(s core.Store, key string) core.Metadata {
	return meta.GetDocument(s, key)
}

// GetDocuments retrieves a nested document collection; nil when the key
// is absent, empty when present without coercible documents.
func GetDocuments(s core.Store, key string) []core.Metadata {
	return meta.GetDocuments(s, key)
}

// GetAny retrieves the raw value, substituting def for nil.
func GetAny(s core.Store, key string, def any) any {
	return meta.GetAny(s, key, def)
}

// FormatString applies format to the value under key; def when absent.
func FormatString(s core.Store, key string, def string, format func(string) string) string {
	return meta.FormatString(s, key, def, format)
}
