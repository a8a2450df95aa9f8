package repository

import (
	"sync"

	"github.com/iliyamo/train-ticket-reservation/internal/model"
)

// UserRepo is the flat credential store. It holds account records keyed by
// username; password verification itself lives in the auth service.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewUserRepo returns an empty credential store.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]model.User)}
}

// Create stores a new account. It fails with ErrUserExists when the
// username is taken; the check and insert share the write lock.
func (r *UserRepo) Create(u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Username]; ok {
		return ErrUserExists
	}
	r.users[u.Username] = u
	return nil
}

// Get returns the account for a username or ErrUserNotFound.
func (r *UserRepo) Get(username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}
