package intervals

import (
	"log/slog"
	"time"

	"github.com/aretw0/intervals/internal/platform"
	"github.com/aretw0/intervals/pkg/core"
)

// --- Types ---

// Direction is the traversal order on the note circle.
type Direction = core.Direction

// Interval is an entry of the interval table.
type Interval = core.Interval

// Runtime is the service returned by New. It answers interval calls and
// grades or watches worksheets using its Settings.
type Runtime = platform.Runtime

// Settings is the resolved configuration of a Runtime.
type Settings = platform.Settings

const (
	Ascending  = core.Ascending
	Descending = core.Descending
)

// Errors returned by the operations; compare with errors.Is.
var (
	ErrArity                  = core.ErrArity
	ErrInvalidDirection       = core.ErrInvalidDirection
	ErrInvalidNote            = core.ErrInvalidNote
	ErrUnknownInterval        = core.ErrUnknownInterval
	ErrUnidentifiableInterval = core.ErrUnidentifiableInterval
)

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithWorkers bounds how many worksheets are graded concurrently.
func WithWorkers(n int) Option {
	return platform.WithWorkers(n)
}

// WithSheetPattern sets the doublestar pattern used to discover worksheets.
func WithSheetPattern(pattern string) Option {
	return platform.WithSheetPattern(pattern)
}

// WithDebounce sets the settle time for worksheet file events.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// --- Factory ---

// New creates a new Runtime.
func New(opts ...Option) (*Runtime, error) {
	return platform.New(opts...)
}

// --- Operations ---

// IntervalConstruction returns the note reached from a start note by an
// interval. args is [interval, startNote, direction?]; direction is "asc"
// (default) or "dsc".
func IntervalConstruction(args []string) (string, error) {
	return core.ConstructArgs(args)
}

// IntervalIdentification names the interval between two notes. args is
// [startNote, endNote, direction?]; direction is "asc" (default) or "dsc".
func IntervalIdentification(args []string) (string, error) {
	return core.IdentifyArgs(args)
}

// Intervals returns the interval table ordered by size.
func Intervals() []Interval {
	return core.Intervals()
}
