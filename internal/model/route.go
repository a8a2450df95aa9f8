// Package model contains the reservation domain: routes of ordered stops,
// per-date per-segment seat inventory, trains, orders and users.
package model

import "errors"

// ErrStationNotFound is returned when a station name does not appear on a
// train's route. Station names are matched case-sensitively.
var ErrStationNotFound = errors.New("station not found on route")

// ErrInvalidRange is returned when both stations exist on the route but the
// requested pair is not strictly forward (same station, or backward travel).
var ErrInvalidRange = errors.New("stations are not in forward travel order")

// ErrBadRoute is returned by NewTrain when a route cannot carry bookings:
// fewer than two stops, or cumulative fares/distances that decrease along it.
var ErrBadRoute = errors.New("route is not bookable")

// Stop is a single scheduled station on a route. Fare and distance are
// cumulative from the origin, so the cost of any leg is a subtraction.
// Fares are integer cents to keep additivity exact.
type Stop struct {
	Station    string // station name, unique lookup key within a route
	Arrival    string // "HH:MM"
	Departure  string // "HH:MM"
	FareCents  int64  // cumulative fare from the origin
	DistanceKM int    // cumulative distance from the origin
}

// Route is the immutable ordered stop list of one train. The position of a
// stop is its identity: segment i connects stop i to stop i+1, so a route of
// n stops exposes n-1 bookable segments.
type Route []Stop

// Validate reports whether the route can carry bookings. A bookable route
// has at least two stops and non-decreasing cumulative fares and distances.
func (r Route) Validate() error {
	if len(r) < 2 {
		return ErrBadRoute
	}
	for i := range r {
		if r[i].FareCents < 0 || r[i].DistanceKM < 0 {
			return ErrBadRoute
		}
		if i > 0 && (r[i].FareCents < r[i-1].FareCents || r[i].DistanceKM < r[i-1].DistanceKM) {
			return ErrBadRoute
		}
	}
	return nil
}

// Segments returns the number of bookable segments.
func (r Route) Segments() int {
	if len(r) < 2 {
		return 0
	}
	return len(r) - 1
}

// IndexOf returns the position of the named station, or -1 when absent.
// Duplicate station names resolve to the first match.
func (r Route) IndexOf(station string) int {
	for i := range r {
		if r[i].Station == station {
			return i
		}
	}
	return -1
}

// SegmentRange resolves a station pair to the half-open segment interval
// [from, to) it traverses: every segment between the two stops, including
// both boundary segments, excluding anything beyond end. Only strictly
// forward pairs are valid.
func (r Route) SegmentRange(start, end string) (from, to int, err error) {
	from = r.IndexOf(start)
	to = r.IndexOf(end)
	if from < 0 || to < 0 {
		return 0, 0, ErrStationNotFound
	}
	if from >= to {
		return 0, 0, ErrInvalidRange
	}
	return from, to, nil
}

// FareBetween returns the fare for travelling from stop i to stop j as the
// difference of cumulative fares. The caller is responsible for i <= j.
func (r Route) FareBetween(i, j int) int64 {
	return r[j].FareCents - r[i].FareCents
}

// DepartureAt returns the departure time at the named station, or "" when
// the station is not on the route.
func (r Route) DepartureAt(station string) string {
	if i := r.IndexOf(station); i >= 0 {
		return r[i].Departure
	}
	return ""
}

// ArrivalAt returns the arrival time at the named station, or "" when the
// station is not on the route.
func (r Route) ArrivalAt(station string) string {
	if i := r.IndexOf(station); i >= 0 {
		return r[i].Arrival
	}
	return ""
}
