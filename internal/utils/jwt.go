package utils // helpers for session token signing and credential hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrBadToken is returned when a session token cannot be parsed, was signed
// with the wrong method or secret, is expired, or lacks the expected claims.
var ErrBadToken = errors.New("invalid session token")

// SessionClaims is what a verified session token carries: the account it
// identifies, its role, and the session id that can be revoked on logout.
type SessionClaims struct {
	Username  string
	Role      string
	SessionID string
}

// NewSessionToken builds and signs an HS256 JWT identifying one login
// session. Claims: sub (username), role, sid (session id), exp and iat.
// The token is the opaque identity handle callers pass back on every
// operation that requires a session.
func NewSessionToken(secret, username, role, sessionID string, ttlMin int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"sid":  sessionID,
		"exp":  now.Add(time.Duration(ttlMin) * time.Minute).Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken validates a signed session token and extracts its
// claims. Expiry is enforced by the jwt library during Parse.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return SessionClaims{}, ErrBadToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrBadToken
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	sid, _ := claims["sid"].(string)
	if sub == "" || sid == "" {
		return SessionClaims{}, ErrBadToken
	}
	return SessionClaims{Username: sub, Role: role, SessionID: sid}, nil
}
