// Package watcher implements file system watching for rebuilds on change.
package watcher

import (
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces rapid file system events into batched rebuilds. Paths
// are interned, so a file saved five times in one window surfaces once.
type Debouncer struct {
	window time.Duration
	notify func(paths []string)

	mu      sync.Mutex
	changed map[unique.Handle[string]]struct{}
	timer   *time.Timer
}

// NewDebouncer creates a debouncer that delivers batches to notify once
// events stop arriving for a full window.
func NewDebouncer(window time.Duration, notify func(paths []string)) *Debouncer {
	return &Debouncer{
		window:  window,
		notify:  notify,
		changed: make(map[unique.Handle[string]]struct{}),
	}
}

// Add records a changed path and restarts the debounce window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.changed[unique.Make(path)] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	if len(d.changed) == 0 {
		// Flush got here first.
		d.timer = nil
		d.mu.Unlock()
		return
	}
	paths := d.drainLocked()
	d.timer = nil
	d.mu.Unlock()

	if d.notify != nil {
		go d.notify(paths)
	}
}

// Flush immediately delivers all pending paths, blocking until the callback
// returns. Use it when pending work must finish before shutting down.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// The timer already fired; let it deliver rather than doing so twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	paths := d.drainLocked()
	d.mu.Unlock()

	if len(paths) > 0 && d.notify != nil {
		d.notify(paths)
	}
}

// drainLocked empties the pending set. Callers must hold mu.
func (d *Debouncer) drainLocked() []string {
	paths := make([]string, 0, len(d.changed))
	for handle := range d.changed {
		paths = append(paths, handle.Value())
	}
	clear(d.changed)
	return paths
}
