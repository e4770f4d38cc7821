// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for settings persistence.
var (
	// ErrSettingsNotFound is returned when a user has no settings record yet.
	ErrSettingsNotFound = errors.New("user settings not found")
	// ErrAPIKeyNotFound is returned when an API key is not found.
	ErrAPIKeyNotFound = errors.New("api key not found")
)

// SettingsRepository defines the interface for user preference, API key and
// login history database operations.
type SettingsRepository interface {
	// FindUserSettings retrieves the settings singleton of a user.
	FindUserSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// CreateUserSettings persists the settings singleton for a user.
	CreateUserSettings(ctx context.Context, settings *entity.UserSettings) error

	// UpdateUserSettingsFields applies a partial update to the settings
	// singleton. Only the columns named in fields are written.
	UpdateUserSettingsFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error

	// CreateAPIKey persists a new API key.
	CreateAPIKey(ctx context.Context, key *entity.APIKey) error

	// FindAPIKeysByUser retrieves all API keys of a user, newest first.
	FindAPIKeysByUser(ctx context.Context, userID uuid.UUID) ([]*entity.APIKey, error)

	// FindAPIKeyByID retrieves a single API key by its unique ID.
	FindAPIKeyByID(ctx context.Context, id uuid.UUID) (*entity.APIKey, error)

	// FindAPIKeyByKey retrieves an API key by its raw key value.
	FindAPIKeyByKey(ctx context.Context, key string) (*entity.APIKey, error)

	// TouchAPIKey stamps the last-used time of an API key.
	TouchAPIKey(ctx context.Context, id uuid.UUID) error

	// DeleteAPIKey removes an API key by its ID.
	DeleteAPIKey(ctx context.Context, id uuid.UUID) error

	// CreateLoginRecord appends a login history entry.
	CreateLoginRecord(ctx context.Context, record *entity.LoginRecord) error

	// ClearCurrentLoginRecords drops the current-session flag from every login
	// record of a user. Called before a new login record is written so only
	// the newest entry carries the flag.
	ClearCurrentLoginRecords(ctx context.Context, userID uuid.UUID) error

	// FindLoginRecordsByUser retrieves the login history of a user, newest first.
	FindLoginRecordsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LoginRecord, error)
}
