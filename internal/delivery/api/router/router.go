// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"aiclub/config"
	"aiclub/internal/delivery/api/middleware"
	"aiclub/internal/delivery/api/router/handler"
	"aiclub/internal/domain/policy"
	"aiclub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ContentHandler    *handler.ContentHandler
	TeamHandler       *handler.TeamHandler
	ChatHandler       *handler.ChatHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
	Gatherer          prometheus.Gatherer
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	contentHandler    *handler.ContentHandler
	teamHandler       *handler.TeamHandler
	chatHandler       *handler.ChatHandler
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.SessionMiddleware
	gatherer          prometheus.Gatherer
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		contentHandler:    params.ContentHandler,
		teamHandler:       params.TeamHandler,
		chatHandler:       params.ChatHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
		gatherer:          params.Gatherer,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	admin := policy.Requirement{RequireAuth: true, RequireAdmin: true}

	// Every route sees the caller's session, anonymous when none is attached
	e.Use(r.sessionMiddleware.Attach)

	// Health and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/session", r.authHandler.OpenSession, middleware.SessionRateLimiter(r.config.Session))
		authGroup.GET("/session", r.authHandler.GetSession)
		authGroup.DELETE("/session", r.authHandler.CloseSession)
		authGroup.POST("/login", r.authHandler.Login, middleware.LoginRateLimiter(r.config.Auth))
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Admin page, redirected to the fallback location when denied
	e.GET("/admin", r.adminHandler.Dashboard, r.sessionMiddleware.GuardPage(admin))

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Public content routes
	contentGroup := apiV1.Group("/content")
	{
		contentGroup.GET("/:kind", r.contentHandler.List)
		contentGroup.GET("/:kind/stream", r.contentHandler.Stream)
		contentGroup.GET("/:kind/slug/:slug", r.contentHandler.GetBySlug)
		contentGroup.GET("/:kind/:id", r.contentHandler.Get)
	}
	apiV1.GET("/events/:id/qr", r.contentHandler.RegistrationQR)

	teamsGroup := apiV1.Group("/teams")
	{
		teamsGroup.GET("", r.teamHandler.List)
		teamsGroup.GET("/stream", r.teamHandler.Stream)
	}

	apiV1.POST("/chat", r.chatHandler.Chat)

	// Admin API routes
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.sessionMiddleware.Guard(admin))
	{
		adminGroup.POST("/content/:kind", r.contentHandler.Create)
		adminGroup.PUT("/content/:kind/:id", r.contentHandler.Update)
		adminGroup.DELETE("/content/:kind/:id", r.contentHandler.Delete)
		adminGroup.PUT("/users/:uid/role", r.adminHandler.SetUserRole)
	}
}
