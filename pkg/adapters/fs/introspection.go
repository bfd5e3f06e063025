package fs

import (
	"github.com/aretw0/introspection"
)

// SourceState exposes internal state for observability.
type SourceState struct {
	Path          string   `json:"path"`
	SystemDir     string   `json:"system_dir"`
	CacheSize     int      `json:"cache_size"`
	Codecs        []string `json:"codecs"`
	WatcherActive bool     `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codecs := make([]string, 0, len(s.codecs))
	for ext := range s.codecs {
		codecs = append(codecs, ext)
	}

	return SourceState{
		Path:          s.Path,
		SystemDir:     s.config.SystemDir,
		CacheSize:     s.cache.Len(),
		Codecs:        codecs,
		WatcherActive: s.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "fs-source"
}

var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)

func (s *Source) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
