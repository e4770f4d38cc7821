package handler

import (
	"log/slog"
	"net/http"
	"time"

	"clawdeck/internal/delivery/api/middleware"
	"clawdeck/internal/delivery/api/response"
	"clawdeck/internal/domain/entity"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// AddDeviceRequest represents the request body for binding a new device
type AddDeviceRequest struct {
	Name        string `json:"name" validate:"required"`
	MAC         string `json:"mac" validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// UpdateDeviceRequest represents the request body for a partial device update
type UpdateDeviceRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

// DeleteDevicesRequest represents the request body for a bulk delete
type DeleteDevicesRequest struct {
	DeviceIDs []uuid.UUID `json:"device_ids" validate:"required,min=1"`
}

// ListDevices handles retrieving all devices of the authenticated user
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// GetDevice handles retrieving a single device
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// AddDevice handles binding a new device to the user
func (h *DeviceHandler) AddDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.AddDevice(c.Request().Context(), userID, usecase.AddDeviceInput{
		Name:        req.Name,
		MAC:         req.MAC,
		Category:    entity.DeviceCategory(req.Category),
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// UpdateDevice handles a partial update of a device
func (h *DeviceHandler) UpdateDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req UpdateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	input := usecase.UpdateDeviceInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Category != nil {
		category := entity.DeviceCategory(*req.Category)
		input.Category = &category
	}

	device, err := h.deviceUC.UpdateDevice(c.Request().Context(), userID, deviceID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DeleteDevice handles unbinding a single device
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "設備已刪除"})
}

// DeleteDevices handles unbinding a batch of devices in one call
func (h *DeviceHandler) DeleteDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req DeleteDevicesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk delete input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.deviceUC.DeleteDevices(c.Request().Context(), userID, req.DeviceIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"requested": output.Requested,
		"deleted":   output.Deleted,
	})
}

// GetConfigLogs handles retrieving the configuration history of a device
func (h *DeviceHandler) GetConfigLogs(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	logs, err := h.deviceUC.GetConfigLogs(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

// ExportDevices streams the user's devices as a CSV attachment
func (h *DeviceHandler) ExportDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	data, err := h.deviceUC.ExportDevicesCSV(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filename := "devices-" + time.Now().Format("20060102") + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

// GetPairingQR returns the pairing QR code of a device as a PNG image
func (h *DeviceHandler) GetPairingQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	png, err := h.deviceUC.GeneratePairingQR(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
