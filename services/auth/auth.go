// Package auth issues and verifies admin portal tokens. Issued tokens
// are registered in a session store so they can be revoked before their
// JWT expiry.
package auth

import (
	"context"
	"errors"
	"time"

	"palmera/utils"

	"github.com/go-redis/redis/v8"
)

var (
	// ErrInvalidCredentials is returned for a wrong or missing admin key,
	// and when no admin key is configured at all.
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	// ErrSessionRevoked is returned for a well-formed admin token whose
	// session is no longer registered.
	ErrSessionRevoked = errors.New("admin session expired or revoked")
)

// SessionStore tracks active admin sessions by token hash.
type SessionStore interface {
	Save(ctx context.Context, tokenHash string, ttl time.Duration) error
	Exists(ctx context.Context, tokenHash string) (bool, error)
	Delete(ctx context.Context, tokenHash string) error
}

// AuthService is the admin portal login surface.
type AuthService interface {
	// Login exchanges the admin key for a bearer token.
	Login(ctx context.Context, email, key string) (string, error)
	Logout(ctx context.Context, token string) error
	// Verify checks the token signature, the admin role claim, and that
	// the session has not been revoked.
	Verify(ctx context.Context, token string) error
}

// DefaultAuthService is the production auth service.
type DefaultAuthService struct {
	AdminKey   string
	Sessions   SessionStore
	SessionTTL time.Duration
}

func (s *DefaultAuthService) ttl() time.Duration {
	if s.SessionTTL <= 0 {
		return 12 * time.Hour
	}
	return s.SessionTTL
}

func (s *DefaultAuthService) Login(ctx context.Context, email, key string) (string, error) {
	// Compare hashes so both sides have a fixed length.
	if s.AdminKey == "" || utils.HashToken(key) != utils.HashToken(s.AdminKey) {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken("admin", email, "admin", s.ttl())
	if err != nil {
		return "", err
	}
	if err := s.Sessions.Save(ctx, utils.HashToken(token), s.ttl()); err != nil {
		return "", err
	}
	return token, nil
}

func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, utils.HashToken(token))
}

func (s *DefaultAuthService) Verify(ctx context.Context, token string) error {
	role, err := utils.ExtractRoleFromToken(token)
	if err != nil {
		return err
	}
	if role != "admin" {
		return ErrInvalidCredentials
	}

	active, err := s.Sessions.Exists(ctx, utils.HashToken(token))
	if err != nil {
		return err
	}
	if !active {
		return ErrSessionRevoked
	}
	return nil
}

const sessionKeyPrefix = "admin_session:"

// RedisSessionStore keeps admin sessions in the shared cache database.
type RedisSessionStore struct {
	Client *redis.Client
}

func (r *RedisSessionStore) Save(ctx context.Context, tokenHash string, ttl time.Duration) error {
	return r.Client.Set(ctx, sessionKeyPrefix+tokenHash, "1", ttl).Err()
}

func (r *RedisSessionStore) Exists(ctx context.Context, tokenHash string) (bool, error) {
	n, err := r.Client.Exists(ctx, sessionKeyPrefix+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, tokenHash string) error {
	return r.Client.Del(ctx, sessionKeyPrefix+tokenHash).Err()
}
