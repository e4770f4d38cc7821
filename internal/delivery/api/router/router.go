// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clawdeck/config"
	"clawdeck/internal/delivery/api/middleware"
	"clawdeck/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	SessionHandler  *handler.SessionHandler
	DeviceHandler   *handler.DeviceHandler
	SkillHandler    *handler.SkillHandler
	BillingHandler  *handler.BillingHandler
	SettingsHandler *handler.SettingsHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	sessionHandler  *handler.SessionHandler
	deviceHandler   *handler.DeviceHandler
	skillHandler    *handler.SkillHandler
	billingHandler  *handler.BillingHandler
	settingsHandler *handler.SettingsHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		sessionHandler:  params.SessionHandler,
		deviceHandler:   params.DeviceHandler,
		skillHandler:    params.SkillHandler,
		billingHandler:  params.BillingHandler,
		settingsHandler: params.SettingsHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/password-reset", r.userHandler.RequestPasswordReset)
		authGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Session bootstrap routes
	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.POST("/init", r.sessionHandler.InitSession)
		sessionGroup.POST("/reset", r.sessionHandler.ResetSession)
	}

	// Profile routes
	userGroup := apiV1.Group("/user")
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile)
	}

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.POST("", r.deviceHandler.AddDevice)
		devicesGroup.POST("/bulk-delete", r.deviceHandler.DeleteDevices)
		devicesGroup.GET("/export", r.deviceHandler.ExportDevices)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
		devicesGroup.PATCH("/:id", r.deviceHandler.UpdateDevice)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeleteDevice)
		devicesGroup.GET("/:id/config-logs", r.deviceHandler.GetConfigLogs)
		devicesGroup.GET("/:id/pairing-qr", r.deviceHandler.GetPairingQR)
	}

	// Marketplace and installed skill routes
	skillsGroup := apiV1.Group("/skills")
	{
		skillsGroup.GET("/market", r.skillHandler.ListMarketSkills)
		skillsGroup.GET("/market/:id", r.skillHandler.GetMarketSkill)
		skillsGroup.GET("/installed", r.skillHandler.ListInstalledSkills)
		skillsGroup.POST("/install", r.skillHandler.InstallSkill)
		skillsGroup.DELETE("/installed/:id", r.skillHandler.UninstallSkill)
		skillsGroup.PATCH("/installed/:id/toggle", r.skillHandler.ToggleSkill)
		skillsGroup.PATCH("/installed/:id/config", r.skillHandler.UpdateSkillConfig)
	}

	// Billing routes
	billingGroup := apiV1.Group("/billing")
	{
		billingGroup.GET("/overview", r.billingHandler.GetOverview)
		billingGroup.GET("/transactions", r.billingHandler.ListTransactions)
		billingGroup.GET("/transactions/export", r.billingHandler.ExportTransactions)
		billingGroup.GET("/bills", r.billingHandler.ListBills)
		billingGroup.GET("/plans", r.billingHandler.ListPlans)
		billingGroup.POST("/recharge", r.billingHandler.Recharge)
		billingGroup.POST("/plan", r.billingHandler.ChangePlan)
		billingGroup.GET("/alerts", r.billingHandler.GetAlertSetting)
		billingGroup.PUT("/alerts", r.billingHandler.SaveAlertSetting)
	}

	// Settings routes
	settingsGroup := apiV1.Group("/settings")
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PATCH("", r.settingsHandler.UpdateSettings)
		settingsGroup.GET("/api-keys", r.settingsHandler.ListAPIKeys)
		settingsGroup.POST("/api-keys", r.settingsHandler.CreateAPIKey)
		settingsGroup.DELETE("/api-keys/:id", r.settingsHandler.DeleteAPIKey)
		settingsGroup.GET("/login-history", r.settingsHandler.ListLoginHistory)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		// Test routes that require authentication
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
