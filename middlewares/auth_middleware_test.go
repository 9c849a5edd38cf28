package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "KS03",
		"role": "teacher",
		"name": "ภคพร",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return tok
}

func runAuth(t *testing.T, authHeader string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	handler := next
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return rec, handler(c)
}

func TestRequireAuthValidToken(t *testing.T) {
	tok := signTestToken(t, testSecret, time.Hour)
	rec, err := runAuth(t, "Bearer "+tok, RequireAuth(testSecret))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthSetsClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, time.Hour))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAuth(testSecret)(func(c echo.Context) error {
		assert.Equal(t, "KS03", c.Get("user_code"))
		assert.Equal(t, "teacher", c.Get("role"))
		assert.Equal(t, "ภคพร", c.Get("name"))
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
}

func TestRequireAuthRejects(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"ไม่มี header", ""},
		{"ไม่ใช่ bearer", "Basic abc"},
		{"token มั่ว", "Bearer not-a-jwt"},
		{"secret ไม่ตรง", "Bearer " + signTestToken(t, "other-secret", time.Hour)},
		{"token หมดอายุ", "Bearer " + signTestToken(t, testSecret, -time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runAuth(t, tc.header, RequireAuth(testSecret))
			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tok := signTestToken(t, testSecret, time.Hour) // role=teacher

	rec, err := runAuth(t, "Bearer "+tok, RequireAuth(testSecret), RequireRole("teacher", "admin"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err = runAuth(t, "Bearer "+tok, RequireAuth(testSecret), RequireRole("admin"))
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
