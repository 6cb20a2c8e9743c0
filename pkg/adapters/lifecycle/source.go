// Package lifecycle exposes worksheet events as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/intervals/pkg/worksheet"
)

type worksheetSource struct {
	events <-chan worksheet.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits worksheet events.
func NewSource(events <-chan worksheet.Event) lifecycle.Source {
	return &worksheetSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *worksheetSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *worksheetSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// worksheet.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
