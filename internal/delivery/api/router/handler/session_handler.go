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

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	BootstrapUC usecase.BootstrapUsecase
	Logger      *slog.Logger
}

// SessionHandler holds dependencies for session bootstrap handlers
type SessionHandler struct {
	bootstrapUC usecase.BootstrapUsecase
	logger      *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		bootstrapUC: params.BootstrapUC,
		logger:      params.Logger,
	}
}

// InitSession seeds first-time users and returns every domain snapshot in
// one payload. Repeat calls within a session are served from cache.
func (h *SessionHandler) InitSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.bootstrapUC.InitSession(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ResetSession drops the session marker and cached snapshots so the next
// InitSession runs in full again.
func (h *SessionHandler) ResetSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	h.bootstrapUC.ResetSession(userID)

	return response.Success(c, http.StatusOK, map[string]string{"message": "工作階段已重設"})
}
