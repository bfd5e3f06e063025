package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/silt/pkg/core"
	"gopkg.in/yaml.v3"
)

// Codec defines how to read documents of a specific file format.
// The source is read-through only, so codecs only decode.
type Codec interface {
	// Decode reads from r and returns a Document (without ID).
	Decode(r io.Reader, metadataKey string) (*core.Document, error)
}

// DefaultCodecs returns the standard set of codecs keyed by extension.
func DefaultCodecs() map[string]Codec {
	return map[string]Codec{
		".json": &JSONCodec{},
		".yaml": &YAMLCodec{},
		".yml":  &YAMLCodec{},
		".md":   &MarkdownCodec{},
	}
}

// --- JSON Codec ---

// JSONCodec reads JSON documents. The whole object becomes metadata,
// except the "content" field (or the nested metadataKey object when set).
type JSONCodec struct{}

func (c *JSONCodec) Decode(r io.Reader, metadataKey string) (*core.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	return fromPayload(payload, metadataKey), nil
}

// --- YAML Codec ---

// YAMLCodec reads YAML documents with the same shape rules as JSON.
type YAMLCodec struct{}

func (c *YAMLCodec) Decode(r io.Reader, metadataKey string) (*core.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	return fromPayload(payload, metadataKey), nil
}

// fromPayload splits a decoded map into metadata and content.
func fromPayload(payload map[string]any, metadataKey string) *core.Document {
	doc := &core.Document{
		Metadata: make(core.Metadata),
	}

	if metadataKey != "" {
		if meta, ok := payload[metadataKey].(map[string]any); ok {
			doc.Metadata = meta
		}
		if c, ok := payload["content"].(string); ok {
			doc.Content = c
		}
		return doc
	}

	doc.Metadata = payload
	if c, ok := payload["content"].(string); ok {
		doc.Content = c
		delete(doc.Metadata, "content")
	}
	return doc
}

// --- Markdown Codec ---

// MarkdownCodec reads Markdown files with optional YAML frontmatter
// delimited by --- fences.
type MarkdownCodec struct{}

func (c *MarkdownCodec) Decode(r io.Reader, metadataKey string) (*core.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &core.Document{
		Metadata: make(core.Metadata),
	}

	// Frontmatter must start at the very first byte.
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		doc.Content = string(data)
		return doc, nil
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("---"), 2)
	if len(parts) == 1 {
		return nil, errors.New("frontmatter started but no closing delimiter found")
	}

	if err := yaml.Unmarshal(parts[0], &doc.Metadata); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	// metadataKey allows nesting frontmatter under a sub-key, same as the
	// structured codecs.
	if metadataKey != "" {
		if meta, ok := doc.Metadata[metadataKey].(map[string]any); ok {
			doc.Metadata = meta
		}
	}

	doc.Content = strings.TrimPrefix(string(parts[1]), "\n")
	doc.Content = strings.TrimPrefix(doc.Content, "\r\n")

	return doc, nil
}
