// Package router contains routing for the device gateway delivery.
package router

import (
	"clawdeck/internal/delivery/gateway/middleware"
	"clawdeck/internal/delivery/gateway/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HeartbeatHandler *handler.HeartbeatHandler
	APIKeyMiddleware *middleware.APIKeyMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	heartbeatHandler *handler.HeartbeatHandler
	apiKeyMiddleware *middleware.APIKeyMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		heartbeatHandler: params.HeartbeatHandler,
		apiKeyMiddleware: params.APIKeyMiddleware,
	}
}

// RegisterRoutes sets up the gateway routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	gatewayV1 := e.Group("/gateway/v1")
	gatewayV1.Use(r.apiKeyMiddleware.Authenticate)
	{
		gatewayV1.POST("/heartbeat", r.heartbeatHandler.ReportHeartbeat)
	}
}
