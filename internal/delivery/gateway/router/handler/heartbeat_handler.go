// Package handler contains the HTTP handlers for the device gateway.
package handler

import (
	"log/slog"
	"net/http"

	"clawdeck/internal/delivery/api/response"
	"clawdeck/internal/delivery/gateway/middleware"
	"clawdeck/internal/domain/entity"
	"clawdeck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeartbeatHandlerParams holds dependencies for HeartbeatHandler, injected by Fx.
type HeartbeatHandlerParams struct {
	fx.In

	GatewayUC usecase.GatewayUsecase
	Logger    *slog.Logger
}

// HeartbeatHandler holds dependencies for device telemetry handlers
type HeartbeatHandler struct {
	gatewayUC usecase.GatewayUsecase
	logger    *slog.Logger
}

// NewHeartbeatHandler is the constructor for HeartbeatHandler
func NewHeartbeatHandler(params HeartbeatHandlerParams) *HeartbeatHandler {
	return &HeartbeatHandler{
		gatewayUC: params.GatewayUC,
		logger:    params.Logger,
	}
}

// HeartbeatRequest represents the telemetry payload a device reports
type HeartbeatRequest struct {
	MAC           string `json:"mac" validate:"required"`
	Status        string `json:"status" validate:"omitempty,oneof=online offline"`
	IP            string `json:"ip"`
	CPU           int    `json:"cpu" validate:"gte=0,lte=100"`
	Memory        int    `json:"memory" validate:"gte=0,lte=100"`
	Disk          int    `json:"disk" validate:"gte=0,lte=100"`
	UptimeSeconds int64  `json:"uptime_seconds" validate:"gte=0"`
}

// ReportHeartbeat records a telemetry report for the device identified by
// its MAC address
func (h *HeartbeatHandler) ReportHeartbeat(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_API_KEY", "API key owner not resolved")
	}

	var req HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid heartbeat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.gatewayUC.ReportHeartbeat(c.Request().Context(), userID, usecase.HeartbeatInput{
		MAC:           req.MAC,
		Status:        entity.DeviceStatus(req.Status),
		IP:            req.IP,
		CPU:           req.CPU,
		Memory:        req.Memory,
		Disk:          req.Disk,
		UptimeSeconds: req.UptimeSeconds,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"device_id":      device.ID,
		"status":         device.Status,
		"last_active_at": device.LastActiveAt,
	})
}
