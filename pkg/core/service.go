package core

import (
	"context"
	"errors"
	"sync"
)

// Service handles read access to documents and their metadata.
type Service struct {
	mu     sync.RWMutex
	source Source
}

// NewService creates a new Service over the given source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Document retrieves a document by ID.
func (s *Service) Document(ctx context.Context, id string) (Document, error) {
	if id == "" {
		return Document{}, ErrEmptyID
	}
	return s.source.Get(ctx, id)
}

// Documents retrieves all documents whose ID matches the glob pattern.
// An empty pattern matches everything.
func (s *Service) Documents(ctx context.Context, pattern string) ([]Document, error) {
	return s.source.List(ctx, pattern)
}

// Metadata retrieves only the metadata map of a document.
// Missing documents surface their error; the typed accessors layered on
// the result are the ones that never fail.
func (s *Service) Metadata(ctx context.Context, id string) (Metadata, error) {
	doc, err := s.Document(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.Metadata, nil
}

// Watch observes changes in the source if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.source.(Watchable)
	if !ok {
		return nil, errors.New("source does not support watching")
	}
	return w.Watch(ctx, pattern)
}
