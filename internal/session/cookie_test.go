package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func record(handler gin.HandlerFunc, mutate func(*http.Request)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCookieStore_SetAttributes(t *testing.T) {
	store := NewCookieStore("admin_token", 86400, false)

	rec := record(func(c *gin.Context) {
		store.Set(c, "tok123")
		c.Status(http.StatusOK)
	}, nil)

	header := strings.Join(rec.Header().Values("Set-Cookie"), "; ")
	assert.Contains(t, header, "admin_token=tok123")
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Max-Age=86400")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Strict")
	assert.NotContains(t, header, "Secure")
}

func TestCookieStore_SecureFlag(t *testing.T) {
	store := NewCookieStore("admin_token", 86400, true)

	rec := record(func(c *gin.Context) {
		store.Set(c, "tok123")
	}, nil)

	assert.Contains(t, strings.Join(rec.Header().Values("Set-Cookie"), "; "), "Secure")
}

func TestCookieStore_ClearExpiresImmediately(t *testing.T) {
	store := NewCookieStore("admin_token", 86400, false)

	rec := record(func(c *gin.Context) {
		store.Clear(c)
	}, nil)

	header := strings.Join(rec.Header().Values("Set-Cookie"), "; ")
	assert.Contains(t, header, "admin_token=")
	assert.Contains(t, header, "Max-Age=0")
}

func TestCookieStore_ReadPrefersCookie(t *testing.T) {
	store := NewCookieStore("admin_token", 86400, false)

	var got string
	record(func(c *gin.Context) {
		got = store.Read(c)
	}, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "admin_token", Value: "from-cookie"})
		req.Header.Set("Authorization", "Bearer from-header")
	})

	assert.Equal(t, "from-cookie", got)
}

func TestCookieStore_ReadBearerFallback(t *testing.T) {
	store := NewCookieStore("admin_token", 86400, false)

	var got string
	record(func(c *gin.Context) {
		got = store.Read(c)
	}, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer from-header")
	})

	assert.Equal(t, "from-header", got)
}

func TestCookieStore_ReadEmpty(t *testing.T) {
	store := NewCookieStore("admin_token", 86400, false)

	var got string
	record(func(c *gin.Context) {
		got = store.Read(c)
	}, nil)

	assert.Empty(t, got)
}
