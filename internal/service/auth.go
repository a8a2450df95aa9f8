package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/train-ticket-reservation/internal/model"
	"github.com/iliyamo/train-ticket-reservation/internal/repository"
	"github.com/iliyamo/train-ticket-reservation/internal/utils"
)

// Identity is the resolved session handle threaded through every booking
// call. The zero value means "no session". Keeping identity a parameter
// instead of service state lets any number of sessions book concurrently
// without cross-talk.
type Identity struct {
	Username string
	Role     model.Role
}

// AuthService registers accounts and turns credentials into session tokens.
// A session is a signed JWT whose sid claim must also appear in the active
// set; logout removes the sid, revoking the token before its expiry.
//
// The active set lives in memory. When a Redis client is supplied the set
// is kept there instead, with a TTL matching the token, so multiple
// processes agree on which sessions are live.
type AuthService struct {
	users      *repository.UserRepo
	secret     string
	ttlMin     int
	bcryptCost int
	rdb        *redis.Client
	logger     *slog.Logger

	mu     sync.Mutex
	active map[string]struct{}
}

// NewAuthService wires an auth service over the credential store. rdb may
// be nil.
func NewAuthService(users *repository.UserRepo, secret string, ttlMin, bcryptCost int, rdb *redis.Client, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		secret:     secret,
		ttlMin:     ttlMin,
		bcryptCost: bcryptCost,
		rdb:        rdb,
		logger:     logger,
		active:     make(map[string]struct{}),
	}
}

// Register creates an account with the given role. Passwords are stored
// only as bcrypt hashes.
func (a *AuthService) Register(username, password, name, idCard string, role model.Role) error {
	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		return err
	}
	err = a.users.Create(model.User{
		Username:     username,
		Name:         name,
		IDCard:       idCard,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return err
	}
	a.logger.Info("user registered", "username", username, "role", role)
	return nil
}

// Login verifies credentials and returns a session token. Unknown username
// and wrong password both fail with ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := a.users.Get(username)
	if err != nil || !utils.VerifyPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	sid := uuid.NewString()
	token, err := utils.NewSessionToken(a.secret, u.Username, string(u.Role), sid, a.ttlMin)
	if err != nil {
		return "", err
	}
	a.storeSession(ctx, sid)
	a.logger.Info("login", "username", username)
	return token, nil
}

// Resolve validates a session token and returns the identity it names.
// Every failure mode (bad signature, expiry, revoked sid) collapses to
// ErrNoSession.
func (a *AuthService) Resolve(ctx context.Context, token string) (Identity, error) {
	claims, err := utils.ParseSessionToken(a.secret, token)
	if err != nil {
		return Identity{}, ErrNoSession
	}
	if !a.sessionLive(ctx, claims.SessionID) {
		return Identity{}, ErrNoSession
	}
	return Identity{Username: claims.Username, Role: model.Role(claims.Role)}, nil
}

// Logout revokes the token's session. An already invalid token is a no-op.
func (a *AuthService) Logout(ctx context.Context, token string) {
	claims, err := utils.ParseSessionToken(a.secret, token)
	if err != nil {
		return
	}
	a.dropSession(ctx, claims.SessionID)
	a.logger.Info("logout", "username", claims.Username)
}

func (a *AuthService) sessionKey(sid string) string { return "session:" + sid }

func (a *AuthService) storeSession(ctx context.Context, sid string) {
	if a.rdb != nil {
		ttl := time.Duration(a.ttlMin) * time.Minute
		if err := a.rdb.Set(ctx, a.sessionKey(sid), "1", ttl).Err(); err == nil {
			return
		}
		a.logger.Warn("redis session store unavailable, falling back to memory")
	}
	a.mu.Lock()
	a.active[sid] = struct{}{}
	a.mu.Unlock()
}

func (a *AuthService) sessionLive(ctx context.Context, sid string) bool {
	if a.rdb != nil {
		n, err := a.rdb.Exists(ctx, a.sessionKey(sid)).Result()
		if err == nil {
			if n > 0 {
				return true
			}
			// fall through: the session may have been stored in memory
			// while Redis was briefly unreachable.
		}
	}
	a.mu.Lock()
	_, ok := a.active[sid]
	a.mu.Unlock()
	return ok
}

func (a *AuthService) dropSession(ctx context.Context, sid string) {
	if a.rdb != nil {
		_ = a.rdb.Del(ctx, a.sessionKey(sid)).Err()
	}
	a.mu.Lock()
	delete(a.active, sid)
	a.mu.Unlock()
}
