package model

import "errors"

// ErrInsufficientSeats is returned by Book when at least one segment in the
// requested range has fewer seats left than the requested count.
var ErrInsufficientSeats = errors.New("not enough seats available")

// Train couples one route with its per-date seat inventory. Trains are
// owned by the registry and mutated only through Book and Release, both of
// which are safe for concurrent callers.
type Train struct {
	ID    string // unique identifier, e.g. G101
	Type  string // label such as High-Speed or Normal
	Seats int    // capacity per segment

	route Route
	inv   *Inventory
}

// NewTrain builds a train over a validated route. It fails with ErrBadRoute
// when the route cannot carry bookings or capacity is not positive.
func NewTrain(id, trainType string, seats int, route Route) (*Train, error) {
	if err := route.Validate(); err != nil {
		return nil, err
	}
	if seats <= 0 {
		return nil, ErrBadRoute
	}
	return &Train{
		ID:    id,
		Type:  trainType,
		Seats: seats,
		route: route,
		inv:   NewInventory(seats, route.Segments()),
	}, nil
}

// Route returns the train's stop list. The route is immutable after
// construction; callers must not modify the returned slice.
func (t *Train) Route() Route { return t.route }

// HasSeats reports whether count seats are available on every segment
// between start and end on the given date. An unknown station or a
// non-forward pair reports false rather than an error.
func (t *Train) HasSeats(date, start, end string, count int) bool {
	from, to, err := t.route.SegmentRange(start, end)
	if err != nil {
		return false
	}
	return t.inv.Available(date, from, to) >= count
}

// Book reserves count seats on every segment between start and end for the
// given date. The availability check and the decrement run as one critical
// section per (train, date): two concurrent bookings racing for the last
// seat resolve to exactly one success.
func (t *Train) Book(date, start, end string, count int) error {
	from, to, err := t.route.SegmentRange(start, end)
	if err != nil {
		return err
	}
	if !t.inv.Reserve(date, from, to, count) {
		return ErrInsufficientSeats
	}
	return nil
}

// Release credits count seats back on every segment between start and end,
// clamped at capacity. It reports false when the date has no inventory
// record or the pair is invalid; either way the call is a no-op, never a
// failure, so refunds always complete.
func (t *Train) Release(date, start, end string, count int) bool {
	from, to, err := t.route.SegmentRange(start, end)
	if err != nil {
		return false
	}
	return t.inv.Release(date, from, to, count)
}

// Fare returns the fare in cents for one ticket between start and end, or 0
// when the pair is invalid. Callers that need to distinguish "free" from
// "invalid" must validate the pair separately.
func (t *Train) Fare(start, end string) int64 {
	from, to, err := t.route.SegmentRange(start, end)
	if err != nil {
		return 0
	}
	return t.route.FareBetween(from, to)
}

// DepartureAt returns the departure time at the named station, "" when the
// station is not served.
func (t *Train) DepartureAt(station string) string { return t.route.DepartureAt(station) }

// ArrivalAt returns the arrival time at the named station, "" when the
// station is not served.
func (t *Train) ArrivalAt(station string) string { return t.route.ArrivalAt(station) }
