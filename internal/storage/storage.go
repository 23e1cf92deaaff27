// Package storage holds the sinks committed pool events are written to.
package storage

import (
	"context"

	"go.uber.org/multierr"

	"github.com/ritikbhatt20/Vortex/internal/amm"
)

// Sink receives committed pool events.
type Sink interface {
	Emit(ctx context.Context, ev amm.Event) error
}

// Fanout delivers every event to each sink in order and reports all failures.
type Fanout []Sink

// Emit implements Sink.
func (f Fanout) Emit(ctx context.Context, ev amm.Event) error {
	var err error
	for _, s := range f {
		err = multierr.Append(err, s.Emit(ctx, ev))
	}
	return err
}
