package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jamiifund/admin/internal/security"
	"jamiifund/admin/internal/session"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

// Gate is the page-level session policy. It decides allow / redirect purely
// from the request path and the admin_token cookie: it never touches the
// credential store, so a deactivated admin keeps page access until their
// token expires (API calls reject them sooner via the session endpoint).
//
// Policy:
//   - /login with a valid token redirects to the dashboard.
//   - /dashboard and /admin/* require a valid token; a missing cookie
//     redirects to /login, an invalid one additionally gets scrubbed.
//   - every other path passes through untouched.
func Gate(secret string, cookies session.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if path == loginPath {
			if token, err := c.Cookie(cookies.Name); err == nil && token != "" {
				if _, err := security.VerifyToken(token, secret); err == nil {
					c.Redirect(http.StatusFound, dashboardPath)
					c.Abort()
					return
				}
			}
			c.Next()
			return
		}

		if path != dashboardPath && !strings.HasPrefix(path, "/admin") {
			c.Next()
			return
		}

		token, err := c.Cookie(cookies.Name)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if _, err := security.VerifyToken(token, secret); err != nil {
			// Stale or forged cookie: scrub it so the browser stops
			// resending it.
			cookies.Clear(c)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
