// Package repository holds the in-memory stores backing the reservation
// core: the train registry, the per-passenger order history and the
// credential store. Sentinel errors defined here let the service layer
// distinguish failure scenarios with errors.Is rather than string matching.
package repository

import "errors"

// ErrTrainNotFound is returned when no train with the requested id exists
// in the registry.
var ErrTrainNotFound = errors.New("train not found")

// ErrOrderNotFound is returned when the passenger's history holds no order
// with the requested id.
var ErrOrderNotFound = errors.New("order not found")

// ErrAlreadyFinalized is returned when a refund targets an order that is no
// longer PAID. It is the guard that makes a second refund of the same order
// fail without touching inventory.
var ErrAlreadyFinalized = errors.New("order already finalized")

// ErrUserExists is returned when registering a username that is taken.
var ErrUserExists = errors.New("username already exists")

// ErrUserNotFound is returned when looking up an unknown username.
var ErrUserNotFound = errors.New("user not found")
