package handler

import (
	"log/slog"
	"net/http"

	"clawdeck/internal/delivery/api/middleware"
	"clawdeck/internal/delivery/api/response"
	"clawdeck/internal/domain/entity"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

// SettingsHandler holds dependencies for preference and API key handlers
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// UpdateSettingsRequest represents the request body for a partial
// preferences update
type UpdateSettingsRequest struct {
	Language         *string                    `json:"language"`
	Timezone         *string                    `json:"timezone"`
	Theme            *string                    `json:"theme" validate:"omitempty,oneof=light dark system"`
	EmailNotif       *entity.EmailNotifications `json:"email_notif"`
	NotifFrequency   *string                    `json:"notif_frequency" validate:"omitempty,oneof=realtime daily weekly"`
	TwoFactorEnabled *bool                      `json:"two_factor_enabled"`
}

// CreateAPIKeyRequest represents the request body for a new API key
type CreateAPIKeyRequest struct {
	Name string `json:"name" validate:"required"`
}

// GetSettings handles retrieving the user's preferences
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	settings, err := h.settingsUC.GetSettings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateSettings handles a partial update of the user's preferences
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpdateSettingsInput{
		Language:         req.Language,
		Timezone:         req.Timezone,
		EmailNotif:       req.EmailNotif,
		TwoFactorEnabled: req.TwoFactorEnabled,
	}
	if req.Theme != nil {
		theme := entity.Theme(*req.Theme)
		input.Theme = &theme
	}
	if req.NotifFrequency != nil {
		frequency := entity.NotifyFrequency(*req.NotifFrequency)
		input.NotifFrequency = &frequency
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// CreateAPIKey handles generating a new API key. The key value appears in
// full only in this response.
func (h *SettingsHandler) CreateAPIKey(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid API key input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	key, err := h.settingsUC.CreateAPIKey(c.Request().Context(), userID, usecase.CreateAPIKeyInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, key)
}

// ListAPIKeys handles retrieving the user's API keys
func (h *SettingsHandler) ListAPIKeys(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	keys, err := h.settingsUC.ListAPIKeys(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, keys)
}

// DeleteAPIKey handles revoking an API key
func (h *SettingsHandler) DeleteAPIKey(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid API key ID")
	}

	if err := h.settingsUC.DeleteAPIKey(c.Request().Context(), userID, keyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "API 金鑰已刪除"})
}

// ListLoginHistory handles retrieving the user's login records
func (h *SettingsHandler) ListLoginHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	records, err := h.settingsUC.ListLoginHistory(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}
