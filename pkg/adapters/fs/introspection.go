package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// WatcherState exposes internal state for observability.
type WatcherState struct {
	Root      string     `json:"root"`
	Pattern   string     `json:"pattern"`
	Debounce  string     `json:"debounce"`
	Active    bool       `json:"active"`
	Delivered int        `json:"delivered"`
	LastEvent *time.Time `json:"last_event,omitempty"`
}

// State implements introspection.Introspectable.
func (w *Watcher) State() any {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return WatcherState{
		Root:      w.config.Root,
		Pattern:   w.config.Pattern,
		Debounce:  w.config.Debounce.String(),
		Active:    w.active,
		Delivered: w.delivered,
		LastEvent: w.lastEvent,
	}
}

// ComponentType implements introspection.Component.
func (w *Watcher) ComponentType() string {
	return "watcher"
}

var _ introspection.Introspectable = (*Watcher)(nil)
var _ introspection.Component = (*Watcher)(nil)
