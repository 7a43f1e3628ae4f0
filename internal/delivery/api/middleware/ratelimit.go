package middleware

import (
	"time"

	"aiclub/config"
	domainerrors "aiclub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const limiterExpiry = 3 * time.Minute

// LoginRateLimiter throttles sign-in attempts per client IP.
func LoginRateLimiter(cfg *config.AuthConfig) echo.MiddlewareFunc {
	return ipRateLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst, domainerrors.ErrTooManyAttempts)
}

// SessionRateLimiter throttles anonymous session creation per client IP.
func SessionRateLimiter(cfg *config.SessionConfig) echo.MiddlewareFunc {
	return ipRateLimiter(cfg.OpenPerMinute, cfg.OpenBurst, domainerrors.ErrTooManySessions)
}

// ipRateLimiter keeps its own token buckets, so every route gets an independent budget.
func ipRateLimiter(perMinute, burst int, denied error) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / 60),
		Burst:     burst,
		ExpiresIn: limiterExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrForbidden
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return denied
		},
	})
}
