package tests_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/silt"
	"github.com/aretw0/silt/pkg/core"
)

func TestWatchReceivesChange(t *testing.T) {
	dir := t.TempDir()

	svc, err := silt.Open(dir, silt.WithMustExist(true))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	events, err := svc.Watch(ctx, "**")
	require.NoError(t, err)

	go func() {
		// Small delay so the watcher is registered before the write.
		time.Sleep(300 * time.Millisecond)
		path := filepath.Join(dir, "note.md")
		_ = os.WriteFile(path, []byte("---\ntitle: T\n---\n"), 0644)
	}()

	select {
	case event, ok := <-events:
		require.True(t, ok, "events channel closed early")
		require.Equal(t, "note", event.ID)
		if event.Type != core.EventCreate && event.Type != core.EventModify {
			t.Errorf("event type = %s, want CREATE or MODIFY", event.Type)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for watch event")
	}
}

func TestWatchIgnoresUnsupportedFiles(t *testing.T) {
	dir := t.TempDir()

	svc, err := silt.Open(dir, silt.WithMustExist(true))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := svc.Watch(ctx, "**")
	require.NoError(t, err)

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noise.tmp"), []byte("x"), 0644))

	select {
	case event, ok := <-events:
		if ok {
			t.Fatalf("unexpected event for unsupported file: %v", event)
		}
	case <-time.After(500 * time.Millisecond):
		// Silence is the expected outcome.
	}
}

func TestWatchChannelClosesOnCancel(t *testing.T) {
	dir := t.TempDir()

	svc, err := silt.Open(dir, silt.WithMustExist(true))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	events, err := svc.Watch(ctx, "")
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		require.False(t, ok, "channel should close after cancel")
	case <-time.After(10 * time.Second):
		t.Fatal("events channel did not close")
	}
}
