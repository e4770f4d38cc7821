// Package middleware contains the gateway-specific Echo middleware.
package middleware

import (
	"log/slog"

	"clawdeck/internal/delivery/api/response"
	"clawdeck/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const contextKeyUserID = "userID"

// HeaderAPIKey carries the gateway credential issued from the console.
const HeaderAPIKey = "X-API-Key"

// APIKeyMiddleware authenticates gateway requests with console-issued API
// keys and exposes the key owner to handlers.
type APIKeyMiddleware struct {
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// NewAPIKeyMiddleware is the constructor for APIKeyMiddleware.
func NewAPIKeyMiddleware(settingsRepo repository.SettingsRepository, logger *slog.Logger) *APIKeyMiddleware {
	return &APIKeyMiddleware{settingsRepo: settingsRepo, logger: logger}
}

// Authenticate resolves the API key to its owner and stores the user ID on
// the request context. The last-used stamp is updated best effort.
func (m *APIKeyMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawKey := c.Request().Header.Get(HeaderAPIKey)
		if rawKey == "" {
			return response.Unauthorized(c, "MISSING_API_KEY", "X-API-Key header is missing")
		}

		key, err := m.settingsRepo.FindAPIKeyByKey(c.Request().Context(), rawKey)
		if err != nil {
			if errors.Is(err, repository.ErrAPIKeyNotFound) {
				return response.Unauthorized(c, "INVALID_API_KEY", "Unknown API key")
			}

			m.logger.Error("Failed to resolve API key", slog.Any("error", err))

			return response.InternalServerError(c, "INTERNAL_ERROR", "Failed to resolve API key")
		}

		if err := m.settingsRepo.TouchAPIKey(c.Request().Context(), key.ID); err != nil {
			m.logger.Warn("Failed to touch API key", slog.Any("keyID", key.ID), slog.Any("error", err))
		}

		c.Set(contextKeyUserID, key.UserID)

		return next(c)
	}
}

// GetUserID returns the API key owner set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}
