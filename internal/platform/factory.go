package platform

import (
	"github.com/aretw0/intervals/pkg/core"
)

// New wires a Runtime from options.
//
//	rt, err := intervals.New(intervals.WithLogger(logger), intervals.WithWorkers(8))
func New(opts ...Option) (*Runtime, error) {
	s := Resolve(opts...)
	svc := core.NewService(s.Logger)
	s.Logger = svc.Logger()
	return &Runtime{Service: svc, settings: s}, nil
}
