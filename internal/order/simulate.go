package order

import (
	"context"
	"time"

	"github.com/idilsaglam/foodhub/internal/model"
)

// Simulate applies each transition in schedule to ord at its offset from now,
// calling emit after every status change. It returns once the order reaches its
// terminal status or ctx is done, and starts no goroutines that outlive it.
func Simulate(ctx context.Context, ord *model.Order, schedule Schedule, emit func(model.Order)) error {
	start := time.Now()
	for _, tr := range schedule {
		wait := tr.After - time.Since(start)
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if ord.Advance(tr.To) && emit != nil {
			emit(*ord)
		}
		if ord.Status.Terminal() {
			return nil
		}
	}
	return nil
}
