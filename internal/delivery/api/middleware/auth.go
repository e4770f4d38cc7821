package middleware

import (
	"strings"

	"clawdeck/internal/delivery/api/response"
	"clawdeck/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contextKeyUserID = "userID"

// AuthMiddleware validates JWT access tokens and exposes the caller's
// identity to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the user ID on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != "access" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Refresh tokens cannot be used for API access")
		}

		c.Set(contextKeyUserID, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}
