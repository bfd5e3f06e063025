// Document is the central entity of the domain.
package core

// Metadata represents the flexible key-value pairs associated with a document.
// Values are loosely typed: whatever the codec produced (strings, numbers,
// nested maps, sequences). The typed accessors in pkg/meta project them into
// concrete types.
type Metadata map[string]any

// Document is the central entity of the domain.
// It represents a piece of content identified by an ID, carrying a
// loosely-typed metadata map.
type Document struct {
	ID       string
	Content  string
	Metadata Metadata
}

// EventType represents the type of change in a watched source.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in a watched source.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and the lifecycle Event contract).
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}
