package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "me.vcf")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"Write", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"Create", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"Remove", fsnotify.Event{Name: target, Op: fsnotify.Remove}, false},
		{"Chmod", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"Sibling", fsnotify.Event{Name: filepath.Join(dir, "other.vcf"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event, target))
		})
	}
}

func TestFileWatcher_DebouncedChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "me.vcf")
	require.NoError(t, os.WriteFile(target, []byte("BEGIN:VCARD\r\n"), 0o600))

	var calls atomic.Int32
	w := New(target, func(string) { calls.Add(1) })
	w.Debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte("BEGIN:VCARD\r\nEND:VCARD\r\n"), 0o600))
	}
	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o600))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.EqualValues(t, 1, calls.Load(), "A burst of writes must produce one notification")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watcher did not stop on context cancellation")
	}
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "absent", "me.vcf"), nil)
	err := w.Run(context.Background())
	assert.Error(t, err)
}
