package service

import "errors"

// Service-level failure conditions. Store-level conditions (train/order/user
// not found, already finalized, duplicate user) are surfaced unchanged from
// the repository package; everything is recoverable by the caller and
// matched with errors.Is.

// ErrNoSession is returned when an operation requiring an identity is
// called without one, or with a token that is invalid, expired or revoked.
var ErrNoSession = errors.New("no active session")

// ErrForbidden is returned when a non-admin identity attempts a registry
// mutation.
var ErrForbidden = errors.New("operation requires admin role")

// ErrInvalidCredentials is returned on login with a wrong username or
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidDate is returned when a travel date is not a calendar date in
// YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid travel date")

// ErrInvalidCount is returned when a ticket count is not positive.
var ErrInvalidCount = errors.New("ticket count must be positive")
