// Package silt is the Composition Root for the silt library.
//
// It connects the typed metadata access layer (Domain Layer) with the
// infrastructure adapters (Source Layer) using the Hexagonal Architecture
// pattern.
//
// Philosophy:
//
// Silt sifts typed values out of loosely-typed metadata. Documents carry a
// string-keyed `map[string]any` (frontmatter, YAML, JSON — whatever the
// codec produced), and templating-style call sites want concrete strings,
// booleans, integers, timestamps, paths, nested documents and lists
// without error handling at every lookup. The accessor layer makes every
// lookup total: missing keys and wrong-shaped values degrade silently to a
// caller-supplied default.
//
// Features:
//
//   - **Total typed accessors**: `GetString`, `GetBool`, `GetInt`, `GetTime`,
//     `GetFilePath`, `GetDirPath`, generic `Get[T]` — never an error, never
//     a panic.
//   - **Singleton promotion**: `GetList[T]` treats a single value as a
//     one-element list; callers never care whether the author wrote one
//     value or many.
//   - **Two-tier collections**: `GetDocuments` keeps "no collection
//     defined" (nil) distinguishable from "defined but empty/invalid"
//     (empty slice).
//   - **Pluggable coercion**: the `pkg/convert` registry owns the
//     best-effort string→bool/int/time/path and shape conversions.
//   - **Default Adapter (FS)**: read-through source over Markdown
//     frontmatter, YAML and JSON files with an mtime index cache, glob
//     listing and fsnotify watching.
//
// Usage:
//
//	svc, err := silt.Open("./site", silt.WithLogger(logger))
//	m, err := svc.Metadata(ctx, "posts/hello")
//
//	title := silt.GetString(m, "title", "(untitled)")
//	tags := silt.GetList[string](m, "tags", nil)
package silt
