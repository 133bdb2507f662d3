package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.md")
	other := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("一"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	w := New([]string{path}, 20*time.Millisecond, nil)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	require.NoError(t, os.WriteFile(path, []byte("二"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunMissingDirectory(t *testing.T) {
	w := New([]string{filepath.Join(t.TempDir(), "missing", "book.md")}, 0, nil)
	err := w.Run(context.Background(), func(context.Context) error { return nil })
	assert.Error(t, err)
}
