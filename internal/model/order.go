package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is where an order sits in the delivery sequence.
type Status string

const (
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusOnTheWay  Status = "on-the-way"
	StatusDelivered Status = "delivered"
)

// Statuses is the fixed progression, in order.
var Statuses = []Status{StatusPreparing, StatusReady, StatusOnTheWay, StatusDelivered}

// Index returns the position of s in Statuses, or -1 for unknown values.
func (s Status) Index() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool { return s.Index() >= 0 }

// Next returns the successor of s. ok is false for the terminal status and unknown values.
func (s Status) Next() (next Status, ok bool) {
	i := s.Index()
	if i < 0 || i == len(Statuses)-1 {
		return "", false
	}
	return Statuses[i+1], true
}

// Terminal reports whether no further transition exists.
func (s Status) Terminal() bool { return s == StatusDelivered }

func (s Status) Label() string {
	switch s {
	case StatusPreparing:
		return "Preparing"
	case StatusReady:
		return "Ready"
	case StatusOnTheWay:
		return "On the Way"
	case StatusDelivered:
		return "Delivered"
	default:
		return string(s)
	}
}

// Order is a placed checkout. Never persisted; only the status changes after creation.
type Order struct {
	ID            string          `json:"id"`
	Status        Status          `json:"status"`
	EstimatedTime string          `json:"estimated_time"`
	Items         []CartEntry     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PlacedAt      time.Time       `json:"placed_at"`
}

// Advance moves the order to `to` if and only if `to` is the immediate
// successor of the current status. Anything else (repeat, regress, skip) is ignored.
func (o *Order) Advance(to Status) bool {
	next, ok := o.Status.Next()
	if !ok || next != to {
		return false
	}
	o.Status = to
	return true
}
