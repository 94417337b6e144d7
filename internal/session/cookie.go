package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CookieStore binds the session token to the admin_token cookie. It owns the
// cookie's security attributes so handlers and middleware cannot drift apart
// on them.
type CookieStore struct {
	Name   string
	MaxAge int
	Secure bool
}

func NewCookieStore(name string, maxAge int, secure bool) CookieStore {
	return CookieStore{Name: name, MaxAge: maxAge, Secure: secure}
}

// Set issues the token cookie on the response.
func (s CookieStore) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(s.Name, token, s.MaxAge, "/", "", s.Secure, true)
}

// Clear expires the cookie immediately. Idempotent.
func (s CookieStore) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}

// Read returns the token from the cookie, falling back to a Bearer
// Authorization header for non-browser clients.
func (s CookieStore) Read(c *gin.Context) string {
	if token, err := c.Cookie(s.Name); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
