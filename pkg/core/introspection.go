package core

import (
	"maps"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Constructions   int            `json:"constructions"`
	Identifications int            `json:"identifications"`
	Failures        map[string]int `json:"failures,omitempty"`
	Intervals       int            `json:"intervals"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ServiceState{
		Constructions:   s.constructions,
		Identifications: s.identifications,
		Failures:        maps.Clone(s.failures),
		Intervals:       len(intervals),
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
