package middleware

import (
	"net/http"
	"strings"

	"palmera/services/auth"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards the admin portal endpoints. The auth
// service checks the signature, the admin role claim, and the session
// registry, so a logged-out token is rejected before its JWT expiry.
func JWTAuthAdminMiddleware(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if err := svc.Verify(c.Request.Context(), tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminToken", tokenString)
		c.Set("isAdmin", true)
		c.Next()
	}
}
