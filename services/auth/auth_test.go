package auth

import (
	"context"
	"testing"
	"time"

	"palmera/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSessionStore struct {
	sessions map[string]bool
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]bool{}}
}

func (m *memSessionStore) Save(ctx context.Context, tokenHash string, ttl time.Duration) error {
	m.sessions[tokenHash] = true
	return nil
}

func (m *memSessionStore) Exists(ctx context.Context, tokenHash string) (bool, error) {
	return m.sessions[tokenHash], nil
}

func (m *memSessionStore) Delete(ctx context.Context, tokenHash string) error {
	delete(m.sessions, tokenHash)
	return nil
}

func newService() (*DefaultAuthService, *memSessionStore) {
	store := newMemSessionStore()
	svc := &DefaultAuthService{
		AdminKey:   "resort-master-key",
		Sessions:   store,
		SessionTTL: time.Hour,
	}
	return svc, store
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin@palmera.example", "resort-master-key")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	role, err := utils.ExtractRoleFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)

	assert.True(t, store.sessions[utils.HashToken(token)], "session registered by hash")
	assert.NoError(t, svc.Verify(ctx, token))
}

func TestLoginRejectsWrongKey(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Login(context.Background(), "admin@palmera.example", "guessed")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledWithoutConfiguredKey(t *testing.T) {
	svc, _ := newService()
	svc.AdminKey = ""
	_, err := svc.Login(context.Background(), "admin@palmera.example", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin@palmera.example", "resort-master-key")
	require.NoError(t, err)
	require.NoError(t, svc.Verify(ctx, token))

	require.NoError(t, svc.Logout(ctx, token))
	assert.ErrorIs(t, svc.Verify(ctx, token), ErrSessionRevoked)
}

func TestVerifyRejectsUnregisteredToken(t *testing.T) {
	svc, _ := newService()

	// A validly signed admin token that never went through Login.
	token, err := utils.GenerateToken("admin", "admin@palmera.example", "admin", time.Hour)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Verify(context.Background(), token), ErrSessionRevoked)
}

func TestVerifyRejectsNonAdminRole(t *testing.T) {
	svc, _ := newService()

	token, err := utils.GenerateToken("guest-1", "guest@example.com", "guest", time.Hour)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Verify(context.Background(), token), ErrInvalidCredentials)
}
