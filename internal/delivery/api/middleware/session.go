package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "aiclub/internal/delivery/context"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/policy"
	"aiclub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionCookieName carries the session token for browser clients.
const SessionCookieName = "aiclub_session"

const (
	keySessionManager = "session_manager"
	keySessionToken   = "session_token"
)

// SessionMiddleware attaches the caller's session and guards routes with it.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, logger: logger}
}

// Attach resolves the session token, when present, and stores the session on
// the context. Requests without a valid token continue as anonymous.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := SessionToken(c.Request())
		if token == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		manager, err := m.sessions.Resolve(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Ignoring session token", slog.Any("error", err))

			return next(c)
		}

		SetSession(c, manager, token)

		sessionID := manager.Session().ID
		ctx = deliverycontext.WithSessionID(ctx, sessionID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("session_id", sessionID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// Guard applies the route guard to API routes: a loading session yields 503,
// a denied one 401 or 403 with Location pointing at the fallback page.
func (m *SessionMiddleware) Guard(req policy.Requirement) echo.MiddlewareFunc {
	return m.guard(req, false)
}

// GuardPage applies the route guard to page routes, redirecting denied callers.
func (m *SessionMiddleware) GuardPage(req policy.Requirement) echo.MiddlewareFunc {
	return m.guard(req, true)
}

func (m *SessionMiddleware) guard(req policy.Requirement, page bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := CurrentSession(c)

			switch policy.Decide(session, req) {
			case policy.DecisionPending:
				return domainerrors.ErrSessionLoading
			case policy.DecisionRedirect:
				if page {
					return c.Redirect(http.StatusFound, policy.FallbackLocation)
				}
				c.Response().Header().Set(echo.HeaderLocation, policy.FallbackLocation)
				if session.Identity == nil {
					return domainerrors.ErrUnauthorized
				}

				return domainerrors.ErrPermissionDenied
			default:
				return next(c)
			}
		}
	}
}

// SessionToken reads the bearer token or, failing that, the session cookie.
func SessionToken(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// SetSession attaches a resolved session to the echo context.
func SetSession(c echo.Context, manager usecase.SessionManager, token string) {
	c.Set(keySessionManager, manager)
	c.Set(keySessionToken, token)
}

// GetSessionManager returns the session attached by Attach.
func GetSessionManager(c echo.Context) (usecase.SessionManager, bool) {
	manager, ok := c.Get(keySessionManager).(usecase.SessionManager)

	return manager, ok
}

// GetSessionToken returns the token the attached session was resolved from.
func GetSessionToken(c echo.Context) string {
	token, _ := c.Get(keySessionToken).(string)

	return token
}

// CurrentSession returns the caller's session, anonymous when none is attached.
func CurrentSession(c echo.Context) entity.Session {
	if manager, ok := GetSessionManager(c); ok {
		return manager.Session()
	}

	return entity.Session{}
}
