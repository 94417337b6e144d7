package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jamiifund/admin/internal/security"
	"jamiifund/admin/internal/session"
)

const gateSecret = "gate-test-secret"

func gateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cookies := session.NewCookieStore("admin_token", 86400, false)

	router := gin.New()
	router.Use(Gate(gateSecret, cookies))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	router.GET("/login", ok)
	router.GET("/dashboard", ok)
	router.GET("/admin/campaigns", ok)
	router.GET("/about", ok)
	return router
}

func signedCookie(t *testing.T, secret string, ttl time.Duration) *http.Cookie {
	t.Helper()
	token, err := security.SignToken(security.Claims{Sub: "adm_1", Role: "admin"}, secret, ttl)
	require.NoError(t, err)
	return &http.Cookie{Name: "admin_token", Value: token}
}

func doGet(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGate_ProtectedWithoutCookieRedirectsToLogin(t *testing.T) {
	router := gateRouter(t)

	for _, path := range []string{"/dashboard", "/admin/campaigns"} {
		rec := doGet(router, path, nil)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
		assert.Empty(t, rec.Header().Values("Set-Cookie"), "no cookie to scrub on %s", path)
	}
}

func TestGate_ForeignSecretCookieRedirectsAndScrubs(t *testing.T) {
	router := gateRouter(t)

	rec := doGet(router, "/admin/campaigns", signedCookie(t, "a-different-secret", time.Hour))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	setCookie := strings.Join(rec.Header().Values("Set-Cookie"), "; ")
	assert.Contains(t, setCookie, "admin_token=")
	assert.Contains(t, setCookie, "Max-Age=0")
}

func TestGate_ExpiredCookieRedirectsAndScrubs(t *testing.T) {
	router := gateRouter(t)

	rec := doGet(router, "/dashboard", signedCookie(t, gateSecret, -time.Minute))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Contains(t, strings.Join(rec.Header().Values("Set-Cookie"), "; "), "Max-Age=0")
}

func TestGate_ValidCookiePassesProtectedPaths(t *testing.T) {
	router := gateRouter(t)

	rec := doGet(router, "/admin/campaigns", signedCookie(t, gateSecret, time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGate_LoginWithValidCookieBouncesToDashboard(t *testing.T) {
	router := gateRouter(t)

	rec := doGet(router, "/login", signedCookie(t, gateSecret, time.Hour))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestGate_LoginWithoutOrWithBadCookieContinues(t *testing.T) {
	router := gateRouter(t)

	rec := doGet(router, "/login", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(router, "/login", signedCookie(t, "a-different-secret", time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGate_UnmatchedPathsAreUntouched(t *testing.T) {
	router := gateRouter(t)

	rec := doGet(router, "/about", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
