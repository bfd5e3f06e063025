package fs

import (
	"sync"
	"time"

	"github.com/aretw0/silt/pkg/core"
)

// debouncer coalesces bursts of events for the same document ID.
// Editors and atomic-rename writers emit several filesystem events per
// logical change; only the last one within the window is delivered.
type debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules event for delivery via send after the window elapses.
// A newer event for the same ID resets the window and supersedes the
// pending one.
func (d *debouncer) add(event core.Event, send func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[event.ID]; ok {
		// Stop reports false when the timer already fired; its callback
		// then owns the matching Done.
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[event.ID] = time.AfterFunc(d.window, func() {
		defer d.wg.Done()

		d.mu.Lock()
		delete(d.timers, event.ID)
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			send(event)
		}
	})
}

// stopAndWait stops accepting new events and waits (up to timeout) for
// in-flight timers to finish, so callers can safely tear down channels.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for id, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, id)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
