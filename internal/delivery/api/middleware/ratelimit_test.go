package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aiclub/config"
	domainerrors "aiclub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRateLimiter(t *testing.T) {
	limiter := LoginRateLimiter(&config.AuthConfig{LoginRatePerMinute: 1, LoginBurst: 2})
	handler := limiter(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	attempt := func(ip string) error {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = ip + ":4242"
		c, _ := newTestContext(req)

		return handler(c)
	}

	require.NoError(t, attempt("10.0.0.1"))
	require.NoError(t, attempt("10.0.0.1"))
	assert.ErrorIs(t, attempt("10.0.0.1"), domainerrors.ErrTooManyAttempts)

	// Other clients keep their own budget.
	require.NoError(t, attempt("10.0.0.2"))
}

func TestSessionRateLimiter(t *testing.T) {
	limiter := SessionRateLimiter(&config.SessionConfig{OpenPerMinute: 1, OpenBurst: 1})
	handler := limiter(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	open := func() error {
		req := httptest.NewRequest(http.MethodPost, "/auth/session", nil)
		req.RemoteAddr = "10.0.0.3:4242"
		c, _ := newTestContext(req)

		return handler(c)
	}

	require.NoError(t, open())
	assert.ErrorIs(t, open(), domainerrors.ErrTooManySessions)
}
