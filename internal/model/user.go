package model

import "time"

// Role tags a user as a passenger or an administrator. Role-specific data
// (the order history) lives in its own store keyed by username, so there is
// no user subclassing and no runtime type inspection anywhere.
type Role string

const (
	RolePassenger Role = "PASSENGER"
	RoleAdmin     Role = "ADMIN"
)

// User is one account in the credential store. Only the bcrypt hash of the
// password is kept.
type User struct {
	Username     string
	Name         string // real name
	IDCard       string // national id number
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
