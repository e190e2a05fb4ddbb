// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fuelflow/internal/delivery/http/middleware"
	"fuelflow/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ChatHandler   *handler.ChatHandler
	HealthHandler *handler.HealthHandler
	RequestID     *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	chatHandler   *handler.ChatHandler
	healthHandler *handler.HealthHandler
	requestID     *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		chatHandler:   params.ChatHandler,
		healthHandler: params.HealthHandler,
		requestID:     params.RequestID,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)

	// Health check endpoint
	e.GET("/health", r.healthHandler.Health)

	// The chat agent endpoint the frontend widget talks to
	e.POST("/chat", r.chatHandler.Chat)
}
