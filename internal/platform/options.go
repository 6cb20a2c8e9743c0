package platform

import (
	"log/slog"
	"time"
)

// Defaults applied when an option is not set.
const (
	DefaultSheetPattern = "**/*.{yaml,yml,json,csv}"
	DefaultDebounce     = 50 * time.Millisecond
	DefaultWorkers      = 4
)

// options holds the internal configuration for the intervals service.
type options struct {
	logger       *slog.Logger
	workers      int
	sheetPattern string
	debounce     time.Duration
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// Settings is the resolved view of a set of options.
type Settings struct {
	Logger       *slog.Logger
	Workers      int
	SheetPattern string
	Debounce     time.Duration
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:       nil,
		workers:      DefaultWorkers,
		sheetPattern: DefaultSheetPattern,
		debounce:     DefaultDebounce,
	}
}

// Resolve applies opts over the defaults.
func Resolve(opts ...Option) Settings {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return Settings{
		Logger:       o.logger,
		Workers:      o.workers,
		SheetPattern: o.sheetPattern,
		Debounce:     o.debounce,
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithWorkers bounds how many worksheets are graded concurrently.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithSheetPattern sets the doublestar pattern used to discover worksheets.
func WithSheetPattern(pattern string) Option {
	return func(o *options) {
		if pattern != "" {
			o.sheetPattern = pattern
		}
	}
}

// WithDebounce sets how long the watcher waits for a burst of file events to settle.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}
