package repository

import (
	"sort"
	"sync"

	"github.com/iliyamo/train-ticket-reservation/internal/model"
)

// TrainRepo is the registry of trains keyed by id. Reads dominate after
// startup; admin add/delete inserts or removes a whole entry under the
// write lock, so concurrent readers never observe a half-applied train.
type TrainRepo struct {
	mu     sync.RWMutex
	trains map[string]*model.Train
}

// NewTrainRepo returns an empty registry.
func NewTrainRepo() *TrainRepo {
	return &TrainRepo{trains: make(map[string]*model.Train)}
}

// Put inserts or replaces a train.
func (r *TrainRepo) Put(t *model.Train) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trains[t.ID] = t
}

// Get returns the train with the given id or ErrTrainNotFound. The returned
// pointer is shared: the route is immutable and the inventory guards itself,
// so handing it out is safe.
func (r *TrainRepo) Get(id string) (*model.Train, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.trains[id]
	if !ok {
		return nil, ErrTrainNotFound
	}
	return t, nil
}

// Delete removes a train and reports whether it existed.
func (r *TrainRepo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.trains[id]
	delete(r.trains, id)
	return ok
}

// All returns a snapshot of every train, sorted by id for deterministic
// listings.
func (r *TrainRepo) All() []*model.Train {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Train, 0, len(r.trains))
	for _, t := range r.trains {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
