package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/silt/pkg/core"
)

// Source implements core.Source over a directory of documents.
// It is a read-through projection: files are parsed on demand and their
// metadata is served from an mtime-keyed index cache on listing.
type Source struct {
	Path   string
	config Config
	codecs map[string]Codec
	cache  *cache

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem source.
type Config struct {
	Path        string
	MustExist   bool
	Logger      *slog.Logger
	SystemDir   string // e.g. ".silt"; holds the index cache, skipped on walks
	MetadataKey string // If set, metadata is expected nested under this key
}

// NewSource creates a new filesystem-backed source.
func NewSource(config Config) *Source {
	if config.SystemDir == "" {
		config.SystemDir = ".silt"
	}
	return &Source{
		Path:   config.Path,
		config: config,
		codecs: DefaultCodecs(),
		cache:  newCache(config.Path, config.SystemDir),
	}
}

// Initialize verifies the source directory is usable.
func (s *Source) Initialize(ctx context.Context) error {
	info, err := os.Stat(s.Path)
	if os.IsNotExist(err) {
		if s.config.MustExist {
			return fmt.Errorf("source path does not exist: %s", s.Path)
		}
		if err := os.MkdirAll(s.Path, 0755); err != nil {
			return fmt.Errorf("failed to create source directory: %w", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("source path is not a directory: %s", s.Path)
	}
	return nil
}

// Get retrieves a document from the filesystem.
//
// Workflow:
//  1. Resolve the ID to a filename (.md is the default extension).
//  2. Open and decode with the codec matching the extension.
func (s *Source) Get(ctx context.Context, id string) (core.Document, error) {
	if id == "" {
		return core.Document{}, core.ErrEmptyID
	}

	filename := id
	ext := filepath.Ext(id)
	if ext == "" {
		ext = ".md"
		filename = id + ext
	}

	codec, ok := s.codecs[ext]
	if !ok {
		return core.Document{}, fmt.Errorf("unsupported document format: %s", ext)
	}

	fullPath := filepath.Join(s.Path, filename)
	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Document{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
		}
		return core.Document{}, err
	}
	defer f.Close()

	doc, err := codec.Decode(f, s.config.MetadataKey)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to parse document %s: %w", id, err)
	}
	doc.ID = id

	return *doc, nil
}

// List scans the directory for documents whose ID matches pattern.
// An empty pattern matches everything.
//
// Strategy:
//  1. Load the existing index cache from disk.
//  2. Walk the tree, skipping hidden and system directories.
//  3. For each supported, matching file: serve metadata from the cache
//     when the mtime is fresh, otherwise full-parse and update the cache.
//  4. Prune stale entries and persist the cache.
//
// Cache hits carry metadata only; use Get when the body is needed.
func (s *Source) List(ctx context.Context, pattern string) ([]core.Document, error) {
	var docs []core.Document

	if err := s.cache.Load(); err != nil {
		// A missing or corrupt index just means a cold start.
		if s.config.Logger != nil {
			s.config.Logger.Debug("index cache load failed", "error", err)
		}
	}
	seen := make(map[string]bool)

	err := filepath.WalkDir(s.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == s.config.SystemDir {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(d.Name())
		if _, supported := s.codecs[ext]; !supported {
			return nil
		}

		relPath, err := filepath.Rel(s.Path, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		id := idForPath(relPath, ext)
		if !matchPattern(pattern, id) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		mtime := info.ModTime()

		seen[relPath] = true

		if entry, hit := s.cache.Get(relPath, mtime); hit {
			docs = append(docs, core.Document{
				ID:       entry.ID,
				Metadata: entry.Metadata,
			})
			return nil
		}

		doc, err := s.Get(ctx, id)
		if err != nil {
			return nil // Skip unparseable
		}

		s.cache.Set(relPath, &indexEntry{
			ID:           id,
			Metadata:     doc.Metadata,
			LastModified: mtime,
		})

		docs = append(docs, doc)
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.cache.Prune(seen)
	if err := s.cache.Save(); err != nil {
		if s.config.Logger != nil {
			s.config.Logger.Debug("index cache save failed", "error", err)
		}
	}

	return docs, nil
}

// idForPath maps a relative file path to a document ID.
// Markdown drops its extension so that List IDs round-trip through Get.
func idForPath(relPath, ext string) string {
	if ext == ".md" {
		return strings.TrimSuffix(relPath, ext)
	}
	return relPath
}

// matchPattern reports whether the document ID matches the glob pattern.
// An empty or invalid pattern matches everything.
func matchPattern(pattern, id string) bool {
	if pattern == "" {
		return true
	}
	ok, err := doublestar.Match(pattern, id)
	if err != nil {
		return true
	}
	return ok
}

// resolveID maps an absolute filesystem path back to a document ID.
func (s *Source) resolveID(path string) (string, error) {
	relPath, err := filepath.Rel(s.Path, path)
	if err != nil {
		return "", err
	}
	relPath = filepath.ToSlash(relPath)
	return idForPath(relPath, filepath.Ext(relPath)), nil
}

var _ core.Source = (*Source)(nil)
var _ core.Watchable = (*Source)(nil)
