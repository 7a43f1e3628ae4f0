package handler

import (
	"log/slog"
	"net/http"

	"aiclub/config"
	"aiclub/internal/delivery/api/response"
	"aiclub/internal/domain/entity"
	"aiclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TeamHandlerParams holds dependencies for TeamHandler, injected by Fx.
type TeamHandlerParams struct {
	fx.In

	Teams  usecase.TeamUsecase
	Live   usecase.LiveUsecase
	Config *config.Config
	Logger *slog.Logger
}

// TeamHandler serves the team rosters.
type TeamHandler struct {
	teams  usecase.TeamUsecase
	live   usecase.LiveUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler
func NewTeamHandler(params TeamHandlerParams) *TeamHandler {
	return &TeamHandler{
		teams:  params.Teams,
		live:   params.Live,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// List returns every team ordered for display.
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.teams.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, teams)
}

// Stream pushes the team list as server-sent events.
func (h *TeamHandler) Stream(c echo.Context) error {
	order, err := parseOrder(c)
	if err != nil {
		return err
	}

	return streamCollection(c, h.live, entity.CollectionTeams, order, h.cfg.Live.Heartbeat, h.logger)
}
