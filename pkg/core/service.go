package core

import (
	"io"
	"log/slog"
	"sync"
)

// Service wraps the interval operations with logging and call accounting.
// It is safe for concurrent use.
type Service struct {
	logger *slog.Logger

	mu              sync.RWMutex
	constructions   int
	identifications int
	failures        map[string]int
}

// NewService creates a new Service. A nil logger discards output.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		logger:   logger,
		failures: make(map[string]int),
	}
}

// Construct computes the note interval away from start.
func (s *Service) Construct(interval, start string, dir Direction) (string, error) {
	note, err := Construct(interval, start, dir)
	s.record(&s.constructions, err)
	if err != nil {
		s.logger.Debug("construction failed", "interval", interval, "start", start, "direction", dir, "error", err)
		return "", err
	}
	s.logger.Debug("constructed", "interval", interval, "start", start, "direction", dir, "end", note)
	return note, nil
}

// Identify names the interval between start and end.
func (s *Service) Identify(start, end string, dir Direction) (string, error) {
	name, err := Identify(start, end, dir)
	s.record(&s.identifications, err)
	if err != nil {
		s.logger.Debug("identification failed", "start", start, "end", end, "direction", dir, "error", err)
		return "", err
	}
	s.logger.Debug("identified", "start", start, "end", end, "direction", dir, "interval", name)
	return name, nil
}

// IntervalConstruction is the argument-array form of Construct:
// [interval, startNote, direction?].
func (s *Service) IntervalConstruction(args []string) (string, error) {
	dir, err := splitArgs(args)
	if err != nil {
		s.record(&s.constructions, err)
		return "", err
	}
	return s.Construct(args[0], args[1], dir)
}

// IntervalIdentification is the argument-array form of Identify:
// [startNote, endNote, direction?].
func (s *Service) IntervalIdentification(args []string) (string, error) {
	dir, err := splitArgs(args)
	if err != nil {
		s.record(&s.identifications, err)
		return "", err
	}
	return s.Identify(args[0], args[1], dir)
}

// Logger returns the service logger.
func (s *Service) Logger() *slog.Logger {
	return s.logger
}

func (s *Service) record(counter *int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*counter++
	if err != nil {
		s.failures[ErrorKind(err)]++
	}
}
