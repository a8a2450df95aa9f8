// Package service contains the booking orchestrator and the session
// provider. The orchestrator is stateless: every call carries an explicit
// identity, so one instance serves any number of concurrent sessions.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/iliyamo/train-ticket-reservation/internal/model"
	"github.com/iliyamo/train-ticket-reservation/internal/queue"
)

// TrainStore is the registry surface the orchestrator needs. Implemented
// by repository.TrainRepo.
type TrainStore interface {
	Get(id string) (*model.Train, error)
	Put(t *model.Train)
	Delete(id string) bool
	All() []*model.Train
}

// OrderStore is the per-passenger history surface. Implemented by
// repository.OrderRepo.
type OrderStore interface {
	Append(o *model.Order) error
	ListByUser(username string) []model.Order
	Cancel(username, orderID string) (model.Order, error)
}

// BookingService coordinates train lookup, inventory mutation and order
// lifecycle as one logical transaction per call.
type BookingService struct {
	trains TrainStore
	orders OrderStore
	events queue.Publisher
	logger *slog.Logger
}

// NewBookingService wires the orchestrator over its stores and the audit
// publisher.
func NewBookingService(trains TrainStore, orders OrderStore, events queue.Publisher, logger *slog.Logger) *BookingService {
	return &BookingService{trains: trains, orders: orders, events: events, logger: logger}
}

// Book reserves count seats on every segment the passenger traverses and
// appends a PAID order to the identity's history. The reservation itself is
// atomic per (train, date); if the history append fails the reservation is
// rolled back so every PAID order keeps a matching reservation.
func (s *BookingService) Book(ctx context.Context, id Identity, trainID, start, end, date string, count int) (model.Order, error) {
	if id.Username == "" {
		return model.Order{}, ErrNoSession
	}
	if count <= 0 {
		return model.Order{}, ErrInvalidCount
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return model.Order{}, ErrInvalidDate
	}

	train, err := s.trains.Get(trainID)
	if err != nil {
		return model.Order{}, err
	}
	if err := train.Book(date, start, end, count); err != nil {
		return model.Order{}, err
	}

	fare := train.Fare(start, end) * int64(count)
	order := model.NewOrder(id.Username, trainID, start, end, date, train.DepartureAt(start), fare, count)
	if err := s.orders.Append(order); err != nil {
		// Give the seats back; a reservation without a PAID order must not
		// survive the call.
		train.Release(date, start, end, count)
		return model.Order{}, err
	}

	s.logger.Info("booking created",
		"order_id", order.ID, "username", id.Username,
		"train_id", trainID, "date", date, "tickets", count, "fare_cents", fare)
	if err := s.events.OrderCreated(ctx, queue.OrderCreatedEvent{
		OrderID:   order.ID,
		Passenger: order.Passenger,
		TrainID:   order.TrainID,
		Start:     order.Start,
		End:       order.End,
		Date:      order.Date,
		Tickets:   order.Tickets,
		FareCents: order.FareCents,
		CreatedAt: order.CreatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		s.logger.Warn("order created event not published", "order_id", order.ID, "error", err)
	}
	return *order, nil
}

// Refund cancels one of the identity's PAID orders and credits the seats
// back. The PAID -> CANCELLED flip is the atomic gate: it happens before
// the inventory credit, so of two concurrent refunds for the same order
// exactly one reaches the credit.
func (s *BookingService) Refund(ctx context.Context, id Identity, orderID string) (model.Order, error) {
	if id.Username == "" {
		return model.Order{}, ErrNoSession
	}
	order, err := s.orders.Cancel(id.Username, orderID)
	if err != nil {
		return model.Order{}, err
	}

	train, err := s.trains.Get(order.TrainID)
	if err != nil {
		// The order stays cancelled; losing the train between booking and
		// refund means there is no inventory left to credit.
		s.logger.Warn("refund for unknown train", "order_id", orderID, "train_id", order.TrainID)
	} else if !train.Release(order.Date, order.Start, order.End, order.Tickets) {
		// Documented no-op: a release with no inventory record for the date
		// signals a credit unmatched by any reservation.
		s.logger.Warn("release without inventory record",
			"order_id", orderID, "train_id", order.TrainID, "date", order.Date)
	}

	s.logger.Info("booking refunded", "order_id", orderID, "username", id.Username)
	if err := s.events.OrderCancelled(ctx, queue.OrderCancelledEvent{
		OrderID:     order.ID,
		Passenger:   order.Passenger,
		TrainID:     order.TrainID,
		Date:        order.Date,
		Tickets:     order.Tickets,
		RefundCents: order.FareCents,
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		s.logger.Warn("order cancelled event not published", "order_id", orderID, "error", err)
	}
	return order, nil
}

// Orders returns the identity's booking history, oldest first.
func (s *BookingService) Orders(id Identity) ([]model.Order, error) {
	if id.Username == "" {
		return nil, ErrNoSession
	}
	return s.orders.ListByUser(id.Username), nil
}

// Search returns every train that still has count seats between the two
// stations on the given date, sorted by train id.
func (s *BookingService) Search(start, end, date string, count int) ([]*model.Train, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}
	var out []*model.Train
	for _, t := range s.trains.All() {
		if t.HasSeats(date, start, end, count) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Availability reports whether the named train can carry count passengers
// between the two stations on the date. Invalid pairs report false.
func (s *BookingService) Availability(trainID, start, end, date string, count int) (bool, error) {
	train, err := s.trains.Get(trainID)
	if err != nil {
		return false, err
	}
	return train.HasSeats(date, start, end, count), nil
}

// Fare returns the per-ticket fare in cents between two stations on the
// named train; 0 when the pair is invalid.
func (s *BookingService) Fare(trainID, start, end string) (int64, error) {
	train, err := s.trains.Get(trainID)
	if err != nil {
		return 0, err
	}
	return train.Fare(start, end), nil
}

// Trains returns a snapshot of the registry.
func (s *BookingService) Trains() []*model.Train {
	return s.trains.All()
}

// AddTrain inserts a train into the registry. Admin only.
func (s *BookingService) AddTrain(id Identity, t *model.Train) error {
	if id.Username == "" {
		return ErrNoSession
	}
	if id.Role != model.RoleAdmin {
		return ErrForbidden
	}
	s.trains.Put(t)
	s.logger.Info("train added", "train_id", t.ID, "by", id.Username)
	return nil
}

// RemoveTrain deletes a train from the registry. Admin only; removing an
// unknown id is not an error, mirroring the registry's delete semantics.
func (s *BookingService) RemoveTrain(id Identity, trainID string) error {
	if id.Username == "" {
		return ErrNoSession
	}
	if id.Role != model.RoleAdmin {
		return ErrForbidden
	}
	if s.trains.Delete(trainID) {
		s.logger.Info("train removed", "train_id", trainID, "by", id.Username)
	}
	return nil
}
