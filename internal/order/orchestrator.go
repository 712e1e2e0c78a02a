// Package order places orders and drives them through the simulated
// preparing -> ready -> on-the-way -> delivered sequence.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/idilsaglam/foodhub/internal/model"
)

// Checkouter is the part of a cart the orchestrator needs. *cart.Cart satisfies it.
type Checkouter interface {
	Checkout() ([]model.CartEntry, bool)
}

// Notification is the confirmation surfaced to the user after a checkout.
type Notification struct {
	Title       string
	Description string
}

// Placement is what a successful checkout produces.
type Placement struct {
	Order    *model.Order
	Schedule Schedule
	Notice   Notification
}

// Orchestrator turns a non-empty cart into an Order.
type Orchestrator struct {
	Schedule      Schedule
	EstimatedTime string
	Logger        *zap.Logger

	// overridable in tests
	newID func() string
	now   func() time.Time
}

func NewOrchestrator(schedule Schedule, estimatedTime string, logger *zap.Logger) *Orchestrator {
	if len(schedule) == 0 {
		schedule = DefaultSchedule()
	}
	if strings.TrimSpace(estimatedTime) == "" {
		estimatedTime = DefaultEstimatedTime
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		Schedule:      schedule,
		EstimatedTime: estimatedTime,
		Logger:        logger,
		newID:         NewOrderID,
		now:           time.Now,
	}
}

// NewOrderID returns an opaque 8-character uppercase identifier.
func NewOrderID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(id[:8])
}

// Checkout clears c and returns the new order at preparing together with
// the transitions the caller must schedule. An empty cart does nothing (ok=false).
func (o *Orchestrator) Checkout(c Checkouter) (Placement, bool) {
	entries, ok := c.Checkout()
	if !ok {
		o.Logger.Debug("checkout ignored: empty cart")
		return Placement{}, false
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.LineTotal())
	}
	ord := &model.Order{
		ID:            o.newID(),
		Status:        model.StatusPreparing,
		EstimatedTime: o.EstimatedTime,
		Items:         entries,
		Total:         total,
		PlacedAt:      o.now(),
	}
	o.Logger.Info("order placed",
		zap.String("order_id", ord.ID),
		zap.Int("lines", len(entries)),
		zap.String("total", total.StringFixed(2)),
	)
	return Placement{
		Order:    ord,
		Schedule: o.Schedule,
		Notice: Notification{
			Title:       "Order placed!",
			Description: fmt.Sprintf("Your order #%s has been placed successfully.", ord.ID),
		},
	}, true
}
