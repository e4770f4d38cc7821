package usecase

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateSettingsInput carries the mutable preference fields. Nil means
// unchanged; only the provided fields are written.
type UpdateSettingsInput struct {
	Language         *string
	Timezone         *string
	Theme            *entity.Theme
	EmailNotif       *entity.EmailNotifications
	NotifFrequency   *entity.NotifyFrequency
	TwoFactorEnabled *bool
}

// CreateAPIKeyInput defines a new API key request.
type CreateAPIKeyInput struct {
	Name string
}

// SettingsUsecase defines the interface for user preference, API key and
// login history use cases.
type SettingsUsecase interface {
	// GetSettings fetches the user's preferences, replacing the in-memory
	// snapshot with the result.
	GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// UpdateSettings applies a partial update to the user's preferences.
	UpdateSettings(ctx context.Context, userID uuid.UUID, input UpdateSettingsInput) (*entity.UserSettings, error)

	// CreateAPIKey generates and stores a new API key. The key value is
	// returned in full only from this call.
	CreateAPIKey(ctx context.Context, userID uuid.UUID, input CreateAPIKeyInput) (*entity.APIKey, error)

	// ListAPIKeys returns the user's API keys.
	ListAPIKeys(ctx context.Context, userID uuid.UUID) ([]*entity.APIKey, error)

	// DeleteAPIKey revokes an API key.
	DeleteAPIKey(ctx context.Context, userID uuid.UUID, keyID uuid.UUID) error

	// ListLoginHistory returns the user's login records, newest first.
	ListLoginHistory(ctx context.Context, userID uuid.UUID) ([]*entity.LoginRecord, error)
}
