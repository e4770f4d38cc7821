package handler

import (
	"log/slog"
	"net/http"

	"clawdeck/internal/delivery/api/middleware"
	"clawdeck/internal/delivery/api/response"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SkillHandlerParams holds dependencies for SkillHandler, injected by Fx.
type SkillHandlerParams struct {
	fx.In

	SkillUC usecase.SkillUsecase
	Logger  *slog.Logger
}

// SkillHandler holds dependencies for marketplace and installation handlers
type SkillHandler struct {
	skillUC usecase.SkillUsecase
	logger  *slog.Logger
}

// NewSkillHandler is the constructor for SkillHandler
func NewSkillHandler(params SkillHandlerParams) *SkillHandler {
	return &SkillHandler{
		skillUC: params.SkillUC,
		logger:  params.Logger,
	}
}

// InstallSkillRequest represents the request body for installing a skill
// on one or more devices
type InstallSkillRequest struct {
	SkillID   string      `json:"skill_id" validate:"required"`
	DeviceIDs []uuid.UUID `json:"device_ids" validate:"required,min=1"`
}

// ToggleSkillRequest represents the request body for enabling or disabling
// an installation
type ToggleSkillRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// UpdateSkillConfigRequest represents the request body for a partial
// configuration update
type UpdateSkillConfigRequest struct {
	Config map[string]any `json:"config" validate:"required"`
}

// ListMarketSkills handles retrieving the marketplace catalog
func (h *SkillHandler) ListMarketSkills(c echo.Context) error {
	skills, err := h.skillUC.ListMarketSkills(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skills)
}

// GetMarketSkill handles retrieving one catalog entry
func (h *SkillHandler) GetMarketSkill(c echo.Context) error {
	skillID := c.Param("id")
	if skillID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid skill ID")
	}

	skill, err := h.skillUC.GetMarketSkill(c.Request().Context(), skillID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skill)
}

// ListInstalledSkills handles retrieving all installations of the user
func (h *SkillHandler) ListInstalledSkills(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	skills, err := h.skillUC.ListInstalledSkills(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skills)
}

// InstallSkill handles installing a marketplace skill on the given devices
func (h *SkillHandler) InstallSkill(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req InstallSkillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid installation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.skillUC.InstallSkill(c.Request().Context(), userID, usecase.InstallSkillInput{
		SkillID:   req.SkillID,
		DeviceIDs: req.DeviceIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"requested": output.Requested,
		"installed": output.Installed,
		"skills":    output.Skills,
	})
}

// UninstallSkill handles removing one installation
func (h *SkillHandler) UninstallSkill(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	installedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid installation ID")
	}

	if err := h.skillUC.UninstallSkill(c.Request().Context(), userID, installedID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "技能已移除"})
}

// ToggleSkill handles enabling or disabling one installation
func (h *SkillHandler) ToggleSkill(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	installedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid installation ID")
	}

	var req ToggleSkillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	skill, err := h.skillUC.ToggleSkill(c.Request().Context(), userID, installedID, *req.Enabled)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skill)
}

// UpdateSkillConfig handles merging new configuration values into one
// installation
func (h *SkillHandler) UpdateSkillConfig(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	installedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid installation ID")
	}

	var req UpdateSkillConfigRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid configuration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	skill, err := h.skillUC.UpdateSkillConfig(c.Request().Context(), userID, installedID, usecase.UpdateSkillConfigInput{
		Config: req.Config,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skill)
}
