package handler

import (
	"log/slog"
	"net/http"

	"aiclub/internal/delivery/api/middleware"
	"aiclub/internal/delivery/api/response"
	deliverycontext "aiclub/internal/delivery/context"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the administration area.
type AdminHandler struct {
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(logger *slog.Logger) *AdminHandler {
	return &AdminHandler{logger: logger}
}

// DashboardResponse describes what the signed-in admin can manage.
type DashboardResponse struct {
	Session entity.Session `json:"session"`
	Kinds   []entity.Kind  `json:"kinds"`
}

// SetRoleRequest represents the request body for changing a user's role.
type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// Dashboard is the entry point of the administration area. It is only reached
// through the page guard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return response.Success(c, http.StatusOK, DashboardResponse{
		Session: middleware.CurrentSession(c),
		Kinds:   entity.Kinds(),
	})
}

// SetUserRole replaces the roles of a user with the requested one.
func (h *AdminHandler) SetUserRole(c echo.Context) error {
	manager, ok := middleware.GetSessionManager(c)
	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	var req SetRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	uid := c.Param("uid")
	if err := manager.SetUserRole(c.Request().Context(), uid, entity.Role(req.Role)); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("User role changed",
		slog.String("uid", uid),
		slog.String("role", req.Role),
		slog.String("by", manager.Session().UID()),
	)

	return c.NoContent(http.StatusNoContent)
}
