package repository

import (
	"sync"

	"github.com/iliyamo/train-ticket-reservation/internal/model"
)

// OrderRepo keeps each passenger's order history: an append-only,
// order-preserving sequence. Orders are never deleted, only
// status-transitioned, and the PAID -> CANCELLED flip happens under the
// store lock so it doubles as the atomic gate against double refunds.
type OrderRepo struct {
	mu     sync.RWMutex
	byUser map[string][]*model.Order
}

// NewOrderRepo returns an empty order store.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{byUser: make(map[string][]*model.Order)}
}

// Append attaches an order to its passenger's history. The error return
// exists for the store contract; the in-memory implementation cannot fail.
func (r *OrderRepo) Append(o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[o.Passenger] = append(r.byUser[o.Passenger], o)
	return nil
}

// ListByUser returns copies of the passenger's orders in booking sequence.
func (r *OrderRepo) ListByUser(username string) []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	history := r.byUser[username]
	out := make([]model.Order, 0, len(history))
	for _, o := range history {
		out = append(out, *o)
	}
	return out
}

// Cancel flips the named order from PAID to CANCELLED and returns a snapshot
// of the cancelled order. It fails with ErrOrderNotFound when the passenger
// has no such order and ErrAlreadyFinalized when the order is no longer
// PAID. The check and the flip share one critical section: of two
// concurrent refunds for the same order exactly one wins.
func (r *OrderRepo) Cancel(username, orderID string) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.byUser[username] {
		if o.ID != orderID {
			continue
		}
		if o.Status.Finalized() {
			return model.Order{}, ErrAlreadyFinalized
		}
		o.Status = model.OrderCancelled
		return *o, nil
	}
	return model.Order{}, ErrOrderNotFound
}
