// Package queue defines the audit events emitted by the booking
// orchestrator and the publisher that delivers them to a message broker.
package queue

// OrderCreatedEvent is published after a booking succeeds. It carries
// enough of the order for downstream consumers to log, notify or feed
// analytics without reading the primary store.
type OrderCreatedEvent struct {
	OrderID   string `json:"order_id"`
	Passenger string `json:"passenger"`
	TrainID   string `json:"train_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Date      string `json:"date"`
	Tickets   int    `json:"tickets"`
	FareCents int64  `json:"fare_cents"`
	CreatedAt string `json:"created_at"`
}

// OrderCancelledEvent is published after a refund completes.
type OrderCancelledEvent struct {
	OrderID     string `json:"order_id"`
	Passenger   string `json:"passenger"`
	TrainID     string `json:"train_id"`
	Date        string `json:"date"`
	Tickets     int    `json:"tickets"`
	RefundCents int64  `json:"refund_cents"`
	CancelledAt string `json:"cancelled_at"`
}
