package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jamiifund/admin/internal/security"
	"jamiifund/admin/internal/session"
)

const claimsKey = "admin_claims"

// RequireAdmin guards the data routes under /api/admin. It verifies the
// session token and exposes its claims to handlers. Like the page gate it is
// store-free: account deactivation is only enforced by the session endpoint.
func RequireAdmin(secret string, cookies session.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookies.Read(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
			return
		}

		claims, err := security.VerifyToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(claimsKey, *claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified token claims RequireAdmin stored on the
// context.
func ClaimsFrom(c *gin.Context) (security.Claims, bool) {
	val, exists := c.Get(claimsKey)
	if !exists {
		return security.Claims{}, false
	}
	claims, ok := val.(security.Claims)
	return claims, ok
}
