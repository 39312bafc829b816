package services

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

func TestCatalogWatcher_ReloadsOnceAfterBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	var reloads int32
	watcher, err := NewCatalogWatcher(path, 50*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt32(&reloads, 1)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)
	defer watcher.Close()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":1}]`), 0o644))
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&reloads) == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&reloads))
}

func TestCatalogWatcher_MissingDirectory(t *testing.T) {
	_, err := NewCatalogWatcher(filepath.Join(t.TempDir(), "nope", "products.json"), time.Millisecond, func(context.Context) {})
	assert.Error(t, err)
}
