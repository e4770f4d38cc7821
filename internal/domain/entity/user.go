package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. All console data except the skill
// marketplace catalog hangs off a User.
type User struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`      // Primary contact email, used as the login identifier.
	Name      string    `json:"name"`       // Display name.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
