package fs

import (
	"context"

	"github.com/aretw0/silt/pkg/core"
)

// Watch emits an Event for every matching document change until ctx is
// done. The returned channel is closed when the watcher stops.
func (s *Source) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	events := make(chan core.Event, 32)

	w := newWatchWorker(s, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	return events, nil
}
