package silt

import (
	"context"
	"log/slog"

	"github.com/aretw0/silt/pkg/adapters/fs"
	"github.com/aretw0/silt/pkg/core"
)

// --- Types ---

// Metadata is a public alias for the loosely-typed metadata map.
type Metadata = core.Metadata

// Document is a public alias for the document entity.
type Document = core.Document

// Store is a public alias for the read contract of the accessors.
type Store = core.Store

// FilePath is a public alias for the file path value kind.
type FilePath = core.FilePath

// DirPath is a public alias for the directory path value kind.
type DirPath = core.DirPath

// Event is a public alias for source change events.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring silt.
type Option func(*options)

type options struct {
	mustExist   bool
	systemDir   string
	metadataKey string
	logger      *slog.Logger
	source      core.Source
}

func defaultOptions() *options {
	return &options{
		systemDir: ".silt",
	}
}

// WithMustExist ensures the source directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".silt").
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.systemDir = name
	}
}

// WithMetadataKey nests document metadata under the given key instead of
// the document root (e.g. "meta" or "frontmatter").
func WithMetadataKey(key string) Option {
	return func(o *options) {
		o.metadataKey = key
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource allows injecting a custom source adapter (e.g. mock, S3).
// If provided, the default filesystem adapter is skipped.
func WithSource(source core.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// --- Factory ---

// Open creates a Service over the given path, initialized and ready to
// serve reads.
func Open(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	source := o.source
	if source == nil {
		source = fs.NewSource(fs.Config{
			Path:        path,
			MustExist:   o.mustExist,
			Logger:      o.logger,
			SystemDir:   o.systemDir,
			MetadataKey: o.metadataKey,
		})
	}

	if err := source.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return core.NewService(source), nil
}
