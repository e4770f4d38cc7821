// Package handler contains the HTTP handlers for the console API.
package handler

import (
	"log/slog"
	"net/http"

	"clawdeck/internal/delivery/api/middleware"
	"clawdeck/internal/delivery/api/response"
	"clawdeck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC      usecase.UserUsecase
	BootstrapUC usecase.BootstrapUsecase
	Logger      *slog.Logger
}

// UserHandler holds dependencies for account-related handlers
type UserHandler struct {
	userUc      usecase.UserUsecase
	bootstrapUc usecase.BootstrapUsecase
	logger      *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUc:      params.UserUC,
		bootstrapUc: params.BootstrapUC,
		logger:      params.Logger,
	}
}

type registerUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterUser handles the account registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUc.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output.User)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Device   string `json:"device"`
}

// Login handles the login request and records the login history entry.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device := req.Device
	if device == "" {
		device = c.Request().UserAgent()
	}

	output, err := h.userUc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.RealIP(),
		Device:   device,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"user":          output.User,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh rotates the session's refresh token and issues a new token pair.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUc.RefreshSession(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"user":          output.User,
	})
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestPasswordReset issues a reset token for the given email. The reply is
// the same whether or not the email is registered.
func (h *UserHandler) RequestPasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.userUc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "若該電子郵件已註冊，密碼重設信件將會寄出"})
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Logout revokes the session and discards the user's cached snapshots.
func (h *UserHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.userUc.Logout(c.Request().Context(), userID, req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "已登出"})
}

// GetProfile returns the authenticated user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name *string `json:"name"`
}

// UpdateProfile applies a partial update to the user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.userUc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
