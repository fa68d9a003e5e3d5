package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/arthur-debert/insightdump/pkg/watch"
)

func TestWatchReportsWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "data.json")
	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan string, 10)
	done := make(chan error, 1)
	go func() {
		done <- watch.Watch(ctx, []string{target}, func(path string) {
			changed <- path
		}, watch.WithDebounce(20*time.Millisecond))
	}()

	// Keep writing until the watcher is registered and reports the change.
	var got string
	require.Eventually(t, func() bool {
		_ = os.WriteFile(other, []byte(`{"a":1}`), 0644)
		_ = os.WriteFile(target, []byte(`{"a":1}`), 0644)
		select {
		case got = <-changed:
			return true
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	abs, err := filepath.Abs(target)
	require.NoError(t, err)
	assert.Equal(t, abs, got)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}

	for len(changed) > 0 {
		assert.Equal(t, abs, <-changed, "unwatched files are ignored")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	missing := filepath.Join(t.TempDir(), "nope", "data.json")
	err := watch.Watch(context.Background(), []string{missing}, func(string) {})
	assert.Error(t, err)
}
