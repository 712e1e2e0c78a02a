package order

import (
	"time"

	"github.com/idilsaglam/foodhub/internal/model"
)

// DefaultStepDelay is the gap between consecutive simulated status changes.
const DefaultStepDelay = 3 * time.Second

// DefaultEstimatedTime is shown on every new order.
const DefaultEstimatedTime = "25-30 mins"

// Transition moves an order to To once After has elapsed since checkout.
type Transition struct {
	After time.Duration
	To    model.Status
}

// Schedule is the fixed list of transitions applied after checkout,
// ordered by strictly increasing After.
type Schedule []Transition

// NewSchedule spaces the three post-checkout transitions step apart:
// ready at 1*step, on-the-way at 2*step, delivered at 3*step.
func NewSchedule(step time.Duration) Schedule {
	if step <= 0 {
		step = DefaultStepDelay
	}
	s := make(Schedule, 0, len(model.Statuses)-1)
	for i, st := range model.Statuses[1:] {
		s = append(s, Transition{After: time.Duration(i+1) * step, To: st})
	}
	return s
}

// DefaultSchedule is NewSchedule(DefaultStepDelay): 3s, 6s, 9s.
func DefaultSchedule() Schedule { return NewSchedule(DefaultStepDelay) }
