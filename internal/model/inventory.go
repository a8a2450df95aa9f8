package model

import "sync"

// Inventory tracks unsold seats per travel date and per segment for one
// train. A date's seat vector is materialized lazily on first reference,
// filled with the train's capacity. Every count stays within
// [0, capacity] at all times.
//
// Locking is one mutex per date, found or created under a short registry
// mutex, so bookings for different dates (or different trains) never
// serialize against each other while check-and-decrement on the same
// (train, date) is a single critical section.
type Inventory struct {
	capacity int
	segments int

	mu   sync.Mutex
	days map[string]*dayInventory
}

type dayInventory struct {
	mu    sync.Mutex
	seats []int
}

// NewInventory returns an empty inventory for a train with the given seat
// capacity and segment count.
func NewInventory(capacity, segments int) *Inventory {
	return &Inventory{
		capacity: capacity,
		segments: segments,
		days:     make(map[string]*dayInventory),
	}
}

// day returns the seat vector for a date, creating it at full capacity on
// first reference.
func (inv *Inventory) day(date string) *dayInventory {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	d, ok := inv.days[date]
	if !ok {
		seats := make([]int, inv.segments)
		for i := range seats {
			seats[i] = inv.capacity
		}
		d = &dayInventory{seats: seats}
		inv.days[date] = d
	}
	return d
}

// peek returns the seat vector for a date without materializing it.
func (inv *Inventory) peek(date string) *dayInventory {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.days[date]
}

// Available returns the number of seats bookable across every segment in
// [from, to), i.e. the minimum remaining count in the range.
func (inv *Inventory) Available(date string, from, to int) int {
	d := inv.day(date)
	d.mu.Lock()
	defer d.mu.Unlock()

	min := inv.capacity
	for i := from; i < to; i++ {
		if d.seats[i] < min {
			min = d.seats[i]
		}
	}
	return min
}

// Reserve atomically checks and decrements every segment in [from, to) by
// count. It returns false, leaving the inventory untouched, if any segment
// in the range has fewer than count seats left. No caller can observe a
// state between the check and the decrement.
func (inv *Inventory) Reserve(date string, from, to, count int) bool {
	d := inv.day(date)
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := from; i < to; i++ {
		if d.seats[i] < count {
			return false
		}
	}
	for i := from; i < to; i++ {
		d.seats[i] -= count
	}
	return true
}

// Release credits count seats back to every segment in [from, to), clamped
// at capacity. The clamp tolerates a release that does not match a prior
// reservation; it is deliberate, not an error. A date that was never
// materialized is left untouched and Release reports false so the caller
// can log the unmatched credit.
func (inv *Inventory) Release(date string, from, to, count int) bool {
	d := inv.peek(date)
	if d == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := from; i < to; i++ {
		d.seats[i] += count
		if d.seats[i] > inv.capacity {
			d.seats[i] = inv.capacity
		}
	}
	return true
}
