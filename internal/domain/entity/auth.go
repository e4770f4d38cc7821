package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only authentication provider the console supports.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this authentication record.
	UserID         uuid.UUID // Links this credential to the User it belongs to.
	Provider       string    // The authentication provider, currently always "email".
	ProviderUserID string    // The login identifier at the provider; the email address itself.
	PasswordHash   string    // bcrypt-hashed password.
	CreatedAt      time.Time // Timestamp of when this credential was created.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created (i.e. when the user logged in).
}

// PasswordResetToken is a short-lived, single-use credential issued when a
// user asks to reset their password. Only the hash is stored; a user has at
// most one live token because issuing a new one revokes the previous.
type PasswordResetToken struct {
	ID        uuid.UUID // The unique ID for this reset token record.
	UserID    uuid.UUID // Links the token to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw reset token.
	ExpiresAt time.Time // When this reset token becomes invalid.
	CreatedAt time.Time // When the reset was requested.
}
