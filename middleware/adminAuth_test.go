package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"palmera/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSessions struct {
	active map[string]bool
}

func (m *memSessions) Save(ctx context.Context, hash string, ttl time.Duration) error {
	m.active[hash] = true
	return nil
}
func (m *memSessions) Exists(ctx context.Context, hash string) (bool, error) {
	return m.active[hash], nil
}
func (m *memSessions) Delete(ctx context.Context, hash string) error {
	delete(m.active, hash)
	return nil
}

func TestJWTAuthAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &auth.DefaultAuthService{
		AdminKey:   "resort-master-key",
		Sessions:   &memSessions{active: map[string]bool{}},
		SessionTTL: time.Hour,
	}

	router := gin.New()
	router.Use(JWTAuthAdminMiddleware(svc))
	router.GET("/admin-only", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, do(""))
	assert.Equal(t, http.StatusUnauthorized, do("Bearer not-a-token"))

	token, err := svc.Login(context.Background(), "admin@palmera.example", "resort-master-key")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, do("Bearer "+token))

	// A revoked session is rejected even though the JWT is still valid.
	require.NoError(t, svc.Logout(context.Background(), token))
	assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token))
}
