package model

import (
	"fmt"
	"sync/atomic"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderPaid is the initial state, set at construction.
	OrderPaid OrderStatus = "PAID"
	// OrderCancelled is the terminal state reached by a refund.
	OrderCancelled OrderStatus = "CANCELLED"
	// OrderCompleted is a declared terminal state for a finished trip. No
	// operation in this package produces it; it exists so an external
	// trip-completion trigger has a defined target.
	OrderCompleted OrderStatus = "COMPLETED"
)

// Finalized reports whether the status is terminal. Finalized orders cannot
// be refunded.
func (s OrderStatus) Finalized() bool { return s != OrderPaid }

// Order is the record of one completed booking. Everything but Status is
// immutable after construction; Status moves PAID -> CANCELLED exactly once,
// through the order store's cancel gate.
type Order struct {
	ID        string
	Passenger string // username of the buyer
	TrainID   string
	Start     string
	End       string
	Date      string // travel date, "2006-01-02"
	Departure string // departure time at Start, "HH:MM"
	FareCents int64  // total for all tickets
	Tickets   int
	Status    OrderStatus
	CreatedAt time.Time
}

// NewOrder builds a PAID order and assigns it a fresh id.
func NewOrder(passenger, trainID, start, end, date, departure string, fareCents int64, tickets int) *Order {
	return &Order{
		ID:        nextOrderID(),
		Passenger: passenger,
		TrainID:   trainID,
		Start:     start,
		End:       end,
		Date:      date,
		Departure: departure,
		FareCents: fareCents,
		Tickets:   tickets,
		Status:    OrderPaid,
		CreatedAt: time.Now(),
	}
}

var orderSeq atomic.Uint64

// nextOrderID returns a timestamp-prefixed id with a process-lifetime
// monotonic sequence. The sequence is 64-bit, so it cannot wrap within one
// process; uniqueness across restarts is not promised, matching the
// single-process scope of the inventory itself.
func nextOrderID() string {
	return fmt.Sprintf("%s%06d", time.Now().Format("20060102150405"), orderSeq.Add(1))
}
