package handler

import (
	"log/slog"
	"net/http"
	"time"

	"aiclub/internal/delivery/api/middleware"
	"aiclub/internal/delivery/api/response"
	deliverycontext "aiclub/internal/delivery/context"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Logger   *slog.Logger
}

// AuthHandler exposes the session lifecycle and admin sign-in.
type AuthHandler struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// LoginRequest represents the request body for admin sign-in.
// Empty fields are reported by the session manager as a validation error.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OpenSessionResponse is returned when a session is opened.
type OpenSessionResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Session   entity.Session `json:"session"`
}

// OpenSession starts a new anonymous session and hands its token to the client
// both in the body and as a cookie.
func (h *AuthHandler) OpenSession(c echo.Context) error {
	out, err := h.sessions.Open(c.Request().Context())
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusCreated, OpenSessionResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		Session:   out.Session,
	})
}

// GetSession returns the caller's session state. Callers without a session
// are reported as anonymous.
func (h *AuthHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, middleware.CurrentSession(c))
}

// CloseSession releases the caller's session and clears the cookie.
func (h *AuthHandler) CloseSession(c echo.Context) error {
	token := middleware.GetSessionToken(c)
	if token == "" {
		return domainerrors.ErrSessionNotFound
	}

	if err := h.sessions.Release(c.Request().Context(), token); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusNoContent)
}

// Login signs the caller's session in. Only admins stay signed in.
func (h *AuthHandler) Login(c echo.Context) error {
	manager, ok := middleware.GetSessionManager(c)
	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	session, err := manager.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Login rejected", slog.Any("error", err))

		return err
	}

	return response.Success(c, http.StatusOK, session)
}

// Logout signs the caller's session out.
func (h *AuthHandler) Logout(c echo.Context) error {
	manager, ok := middleware.GetSessionManager(c)
	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	if err := manager.Logout(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, manager.Session())
}
