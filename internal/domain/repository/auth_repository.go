// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrTokenNotFound is returned when a refresh token is not found.
	ErrTokenNotFound = errors.New("refresh token not found")
)

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method (email/password credential).
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, hash string) error

	// CountRefreshTokensByUserID returns the number of live sessions a user has.
	CountRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteRefreshTokensByUserID removes all refresh tokens for a specific user.
	// This is useful for "logout from all devices" functionality.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// CreatePasswordResetToken persists a new password reset token.
	CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error

	// DeletePasswordResetTokensByUserID revokes every outstanding reset token
	// of a user, so at most one reset token is live at a time.
	DeletePasswordResetTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
