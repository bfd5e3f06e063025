package meta

import (
	"reflect"
	"testing"
	"time"

	"github.com/aretw0/silt/pkg/core"
)

func testStore() core.Metadata {
	return core.Metadata{
		"title":     "Hello World",
		"draft":     true,
		"published": "false",
		"count":     5,
		"weight":    "42",
		"ratio":     0.5,
		"date":      "2024-03-01",
		"cover":     "images/cover.png",
		"assets":    "static/img",
		"tags":      []any{"go", "metadata", "typed"},
		"mixed":     []any{"one", 2, true},
		"author":    map[string]any{"name": "Jane", "email": "jane@example.com"},
		"authors":   []any{map[string]any{"name": "Jane"}, map[string]any{"name": "Ana"}},
		"nothing":   nil,
	}
}

func TestGetScalars(t *testing.T) {
	m := testStore()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"String hit", GetString(m, "title", "def"), "Hello World"},
		{"String miss", GetString(m, "missing", "def"), "def"},
		{"String from int", GetString(m, "count", ""), "5"},
		{"String from map fails", GetString(m, "author", "def"), "def"},
		{"Bool hit", GetBool(m, "draft", false), true},
		{"Bool from string", GetBool(m, "published", true), false},
		{"Bool miss", GetBool(m, "missing", true), true},
		{"Int hit", GetInt(m, "count", -1), 5},
		{"Int from string", GetInt(m, "weight", -1), 42},
		{"Int miss", GetInt(m, "missing", -1), -1},
		{"Int from non-number", GetInt(m, "title", -1), -1},
		{"Int64 hit", GetInt64(m, "count", -1), int64(5)},
		{"Float hit", GetFloat(m, "ratio", -1), 0.5},
		{"Float miss", GetFloat(m, "missing", -1), float64(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v (%T), want %v (%T)", tt.got, tt.got, tt.want, tt.want)
			}
		})
	}
}

func TestGetTime(t *testing.T) {
	m := testStore()

	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := GetTime(m, "date", time.Time{}); !got.Equal(want) {
		t.Errorf("GetTime(date) = %v, want %v", got, want)
	}

	def := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := GetTime(m, "missing", def); !got.Equal(def) {
		t.Errorf("GetTime(missing) = %v, want default %v", got, def)
	}

	// Default-of-default is the zero time.
	if got := GetTime(m, "missing", time.Time{}); !got.IsZero() {
		t.Errorf("GetTime(missing, zero) = %v, want zero", got)
	}

	// Uncoercible value falls back, never fails.
	if got := GetTime(m, "author", def); !got.Equal(def) {
		t.Errorf("GetTime(author) = %v, want default %v", got, def)
	}
}

func TestGetPaths(t *testing.T) {
	m := testStore()

	if got := GetFilePath(m, "cover", ""); got != "images/cover.png" {
		t.Errorf("GetFilePath(cover) = %q", got)
	}
	if got := GetDirPath(m, "assets", "."); got != "static/img" {
		t.Errorf("GetDirPath(assets) = %q", got)
	}

	// Unparseable strings degrade to the default like any coercion failure.
	m["cover"] = ""
	if got := GetFilePath(m, "cover", "fallback.png"); got != "fallback.png" {
		t.Errorf("GetFilePath(empty) = %q, want fallback", got)
	}
	m["cover"] = "images/"
	if got := GetFilePath(m, "cover", "fallback.png"); got != "fallback.png" {
		t.Errorf("GetFilePath(dir-like) = %q, want fallback", got)
	}
}

func TestGetListPromotion(t *testing.T) {
	m := testStore()

	// Singleton promotion: one scalar becomes a one-element list.
	got := GetList[int](m, "count", nil)
	if !reflect.DeepEqual(got, []int{5}) {
		t.Errorf("GetList(count) = %v, want [5]", got)
	}

	// N items, original order preserved.
	tags := GetList[string](m, "tags", nil)
	if !reflect.DeepEqual(tags, []string{"go", "metadata", "typed"}) {
		t.Errorf("GetList(tags) = %v", tags)
	}

	// Mixed sequences keep only coercible items, in order.
	ints := GetList[int](m, "mixed", nil)
	if !reflect.DeepEqual(ints, []int{2, 1}) { // "one" fails, true -> 1
		t.Errorf("GetList[int](mixed) = %v", ints)
	}

	// Absent key returns the default untouched.
	def := []string{"x"}
	if got := GetList(m, "missing", def); !reflect.DeepEqual(got, def) {
		t.Errorf("GetList(missing) = %v, want %v", got, def)
	}

	// A promoted singleton that cannot coerce fails as a whole.
	if got := GetList[int](m, "author", []int{-1}); !reflect.DeepEqual(got, []int{-1}) {
		t.Errorf("GetList[int](author) = %v, want default", got)
	}
}

func TestGetDocument(t *testing.T) {
	m := testStore()

	doc := GetDocument(m, "author")
	if doc == nil {
		t.Fatal("GetDocument(author) = nil, want document")
	}
	if got := GetString(doc, "name", ""); got != "Jane" {
		t.Errorf("nested name = %q", got)
	}

	if doc := GetDocument(m, "missing"); doc != nil {
		t.Errorf("GetDocument(missing) = %v, want nil", doc)
	}

	// A document is never promoted from a list.
	if doc := GetDocument(m, "authors"); doc != nil {
		t.Errorf("GetDocument(authors) = %v, want nil", doc)
	}

	// Scalars are not documents.
	if doc := GetDocument(m, "title"); doc != nil {
		t.Errorf("GetDocument(title) = %v, want nil", doc)
	}
}

func TestGetDocumentsTiers(t *testing.T) {
	m := testStore()

	// Present with coercible items.
	docs := GetDocuments(m, "authors")
	if len(docs) != 2 {
		t.Fatalf("GetDocuments(authors) len = %d, want 2", len(docs))
	}
	if got := GetString(docs[1], "name", ""); got != "Ana" {
		t.Errorf("second author = %q", got)
	}

	// Absent key: nil, not an empty list.
	if docs := GetDocuments(m, "missing"); docs != nil {
		t.Errorf("GetDocuments(missing) = %v, want nil", docs)
	}

	// Present but nothing coercible: empty list, not nil. The two tiers
	// must stay distinguishable by nilness.
	m["broken"] = []any{"not", "documents"}
	docs = GetDocuments(m, "broken")
	if docs == nil {
		t.Fatal("GetDocuments(broken) = nil, want empty list")
	}
	if len(docs) != 0 {
		t.Errorf("GetDocuments(broken) len = %d, want 0", len(docs))
	}

	// A single document value is promoted to a one-element collection.
	docs = GetDocuments(m, "author")
	if len(docs) != 1 {
		t.Fatalf("GetDocuments(author) len = %d, want 1", len(docs))
	}
}

func TestGetAnyNilSubstitution(t *testing.T) {
	m := testStore()

	if got := GetAny(m, "count", "def"); got != 5 {
		t.Errorf("GetAny(count) = %v", got)
	}
	if got := GetAny(m, "missing", "def"); got != "def" {
		t.Errorf("GetAny(missing) = %v", got)
	}

	// The key exists but holds nil: the default still wins, because nil
	// must never propagate out of the dynamic accessor.
	if got := GetAny(m, "nothing", "def"); got != "def" {
		t.Errorf("GetAny(nothing) = %v, want def", got)
	}
}

func TestGenericGet(t *testing.T) {
	m := testStore()

	if got := Get(m, "count", -1); got != 5 {
		t.Errorf("Get[int](count) = %d", got)
	}
	if got := Get(m, "missing", -1); got != -1 {
		t.Errorf("Get[int](missing) = %d", got)
	}
	if got := Get(m, "title", ""); got != "Hello World" {
		t.Errorf("Get[string](title) = %q", got)
	}

	// Unregistered target types fall back to direct assertion.
	type custom struct{ N int }
	m["c"] = custom{N: 7}
	if got := Get(m, "c", custom{}); got.N != 7 {
		t.Errorf("Get[custom] = %+v", got)
	}
	if got := Get(m, "title", custom{N: 9}); got.N != 9 {
		t.Errorf("Get[custom](title) = %+v, want default", got)
	}
}

func TestNilStore(t *testing.T) {
	var m core.Metadata

	if got := GetString(m, "k", "def"); got != "def" {
		t.Errorf("nil store GetString = %q", got)
	}
	if got := GetList[string](m, "k", nil); got != nil {
		t.Errorf("nil store GetList = %v", got)
	}
	if got := GetDocuments(m, "k"); got != nil {
		t.Errorf("nil store GetDocuments = %v", got)
	}
}

func TestIdempotence(t *testing.T) {
	m := testStore()

	first := GetList[string](m, "tags", nil)
	second := GetList[string](m, "tags", nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated GetList differs: %v vs %v", first, second)
	}

	a := GetInt(m, "count", -1)
	b := GetInt(m, "count", -1)
	if a != b {
		t.Errorf("repeated GetInt differs: %d vs %d", a, b)
	}

	// Accessors must not mutate the store.
	if !reflect.DeepEqual(m, testStore()) {
		t.Error("store mutated by accessors")
	}
}
