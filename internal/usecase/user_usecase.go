// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client address, recorded in the login history.
	Device   string // Client descriptor, e.g. "Chrome / macOS".
}

// UpdateProfileInput carries the mutable profile fields. Nil means unchanged.
type UpdateProfileInput struct {
	Name *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// RefreshSession rotates a session: the presented refresh token is revoked
	// and a new token pair is issued in its place.
	RefreshSession(ctx context.Context, refreshToken string) (*LoginOutput, error)
	// Logout revokes the session behind refreshToken and discards the user's
	// in-memory snapshots.
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
	// RequestPasswordReset issues a single-use reset token for the account
	// behind email. Unknown addresses return nil so the endpoint does not
	// reveal which emails are registered.
	RequestPasswordReset(ctx context.Context, email string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
}
