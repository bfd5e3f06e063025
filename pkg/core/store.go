package core

import "context"

// Store is the read contract the typed accessors consume.
// It deliberately exposes only existence and raw lookup; typed retrieval
// is layered on top by pkg/meta so any key-value holder can back it.
type Store interface {
	// Exists reports whether the key is present, regardless of its value.
	Exists(key string) bool

	// Value returns the raw stored value and whether the key was present.
	// A present key may still hold a nil value.
	Value(key string) (any, bool)
}

// Exists implements Store. A nil map has no keys.
func (m Metadata) Exists(key string) bool {
	_, ok := m[key]
	return ok
}

// Value implements Store.
func (m Metadata) Value(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

var _ Store = Metadata(nil)

// Source defines the contract for reading documents from a backing medium.
// Adhering to this interface keeps the core independent of the underlying
// storage (filesystem, embedded map, HTTP, etc).
type Source interface {
	// Initialize ensures the underlying medium is ready to serve reads.
	Initialize(ctx context.Context) error

	// Get retrieves a document by its ID.
	Get(ctx context.Context, id string) (Document, error)

	// List returns all documents whose ID matches the glob pattern.
	// An empty pattern matches everything.
	List(ctx context.Context, pattern string) ([]Document, error)
}

// Watchable defines an interface for sources that can report changes.
type Watchable interface {
	// Watch emits an Event for every matching change until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
