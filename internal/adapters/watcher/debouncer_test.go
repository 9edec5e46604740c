package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/press/internal/adapters/watcher"
)

// recorder captures debouncer deliveries.
type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) notify(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recorder) last() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func TestDebouncer_DeliversAfterQuiet(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.notify)

		d.Add("/site/posts/hello.md")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, rec.count())
		assert.Equal(t, []string{"/site/posts/hello.md"}, rec.last())
	})
}

func TestDebouncer_CoalescesRepeatedSaves(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.notify)

		d.Add("/site/posts/one.md")
		d.Add("/site/posts/two.md")
		d.Add("/site/posts/one.md")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		// One delivery with both paths; the repeated save shows up once.
		require.Equal(t, 1, rec.count())
		require.Len(t, rec.last(), 2)
		assert.Contains(t, rec.last(), "/site/posts/one.md")
		assert.Contains(t, rec.last(), "/site/posts/two.md")
	})
}

func TestDebouncer_EventRestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.notify)

		d.Add("/site/posts/one.md")
		time.Sleep(50 * time.Millisecond)

		// The second add restarts the window, so nothing fires at the
		// 100ms mark.
		d.Add("/site/posts/two.md")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 0, rec.count())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, rec.count())
	})
}

func TestDebouncer_FlushDeliversImmediately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.notify)

		d.Add("/site/posts/one.md")
		d.Add("/site/templates/default.html")

		d.Flush()

		require.Equal(t, 1, rec.count())
		require.Len(t, rec.last(), 2)
		assert.Contains(t, rec.last(), "/site/posts/one.md")
		assert.Contains(t, rec.last(), "/site/templates/default.html")
	})
}

func TestDebouncer_FlushWithNothingPending(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(100*time.Millisecond, rec.notify)

	d.Flush()

	assert.Equal(t, 0, rec.count())
}

func TestDebouncer_FlushAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.notify)

		d.Add("/site/posts/one.md")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, rec.count())

		// Everything already delivered; a flush must not deliver again.
		d.Flush()
		assert.Equal(t, 1, rec.count())
	})
}

func TestDebouncer_AddAfterFlush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.notify)

		d.Add("/site/posts/one.md")
		d.Flush()
		require.Equal(t, 1, rec.count())

		d.Add("/site/posts/two.md")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 2, rec.count())
		assert.Equal(t, []string{"/site/posts/two.md"}, rec.last())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/site/posts/one.md")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Flush()
	})
}
