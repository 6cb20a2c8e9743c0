package fs

import (
	"sync"
	"time"

	"github.com/aretw0/intervals/pkg/worksheet"
)

// debouncer coalesces bursts of events per path. Editors typically emit
// several writes (and sometimes a rename) for one save.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]worksheet.Event
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]worksheet.Event),
	}
}

// add schedules fn for the path of e once no newer event for that path has
// arrived within the delay.
func (d *debouncer) add(e worksheet.Event, fn func(worksheet.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if prev, ok := d.pending[e.Path]; ok {
		e = merge(prev, e)
	}
	d.pending[e.Path] = e

	if t, ok := d.timers[e.Path]; ok && t.Stop() {
		d.wg.Done()
	}

	path := e.Path
	var t *time.Timer
	d.wg.Add(1)
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.timers[path] != t {
			d.mu.Unlock()
			return
		}
		ev := d.pending[path]
		delete(d.timers, path)
		delete(d.pending, path)
		d.mu.Unlock()

		fn(ev)
	})
	d.timers[path] = t
}

// stopAndWait drops pending events and waits up to timeout for callbacks
// already running.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
		delete(d.pending, path)
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

// merge folds a newer event into a pending one. A file created and then
// written within the window is still a creation.
func merge(prev, next worksheet.Event) worksheet.Event {
	switch {
	case prev.Type == worksheet.EventCreate && next.Type == worksheet.EventModify:
		next.Type = worksheet.EventCreate
	case prev.Type == worksheet.EventDelete && next.Type == worksheet.EventCreate:
		next.Type = worksheet.EventModify
	}
	return next
}
