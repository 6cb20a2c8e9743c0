// Package fs watches worksheet directories on the local filesystem.
package fs

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/intervals/pkg/worksheet"
)

// Config configures a Watcher.
type Config struct {
	Root     string
	Pattern  string
	Debounce time.Duration
	Logger   *slog.Logger
	// ErrorHandler receives runtime watcher errors (optional).
	ErrorHandler func(error)
}

// Watcher reports changes to worksheet files below Root.
type Watcher struct {
	config Config

	mu        sync.RWMutex
	active    bool
	delivered int
	lastEvent *time.Time
}

// NewWatcher creates a Watcher. Missing Pattern, Debounce and Logger fall
// back to "**/*", 50ms and a discarding logger.
func NewWatcher(config Config) *Watcher {
	if config.Pattern == "" {
		config.Pattern = "**/*"
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Watcher{config: config}
}

// Spec describes the watch worker for a lifecycle supervisor. Events are sent
// on events; a failed worker is restarted with backoff.
func (w *Watcher) Spec(events chan<- worksheet.Event) supervisor.Spec {
	return supervisor.Spec{
		Name: "worksheet-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			return newWatchWorker(w, events), nil
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			Multiplier:      2,
			ResetDuration:   time.Minute,
			MaxRestarts:     10,
			MaxDuration:     10 * time.Minute,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}
}

// Watch supervises a watch worker until ctx is done, then closes the
// returned channel.
func (w *Watcher) Watch(ctx context.Context) (<-chan worksheet.Event, error) {
	events := make(chan worksheet.Event, 16)

	sup := supervisor.New("worksheet-watcher", supervisor.StrategyOneForOne, w.Spec(events))
	if err := sup.Start(ctx); err != nil {
		return nil, err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()

		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := sup.Stop(stopCtx)
		close(events)
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		w.config.Logger.Error("watcher shutdown failed", "error", err)
	}))

	return events, nil
}

// recursiveAdd registers root and every non-hidden directory below it.
func (w *Watcher) recursiveAdd(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// mapEventType translates an fsnotify operation; "" means ignore.
func mapEventType(event fsnotify.Event) worksheet.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return worksheet.EventCreate
	case event.Has(fsnotify.Write):
		return worksheet.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return worksheet.EventDelete
	}
	return ""
}

func (w *Watcher) setActive(active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = active
}

func (w *Watcher) recordDelivery() {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	w.delivered++
	w.lastEvent = &now
}
