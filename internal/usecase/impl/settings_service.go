package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	deliverycontext "clawdeck/internal/delivery/context"
	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// apiKeyPrefix marks every generated API key.
const apiKeyPrefix = "cd_"

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	snapshots    *Snapshots
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for settingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	Snapshots    *Snapshots
	Logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		snapshots:    params.Snapshots,
		logger:       params.Logger,
	}
}

func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSettings fetches the user's preferences and replaces the snapshot with
// the result.
func (srv *settingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := srv.settingsRepo.FindUserSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find user settings")
	}

	srv.snapshots.Settings.Set(userID, settings)

	return settings, nil
}

// UpdateSettings applies a partial update to the user's preferences. Only
// fields present in the input are written.
func (srv *settingsService) UpdateSettings(ctx context.Context, userID uuid.UUID, input usecase.UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := srv.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Language != nil {
		fields["language"] = *input.Language
		settings.Language = *input.Language
	}
	if input.Timezone != nil {
		fields["timezone"] = *input.Timezone
		settings.Timezone = *input.Timezone
	}
	if input.Theme != nil {
		fields["theme"] = string(*input.Theme)
		settings.Theme = *input.Theme
	}
	if input.NotifFrequency != nil {
		fields["notif_frequency"] = string(*input.NotifFrequency)
		settings.NotifFrequency = *input.NotifFrequency
	}
	if input.TwoFactorEnabled != nil {
		fields["two_factor_enabled"] = *input.TwoFactorEnabled
		settings.TwoFactorEnabled = *input.TwoFactorEnabled
	}
	if input.EmailNotif != nil {
		raw, err := json.Marshal(input.EmailNotif)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode email notifications")
		}
		fields["email_notif"] = raw
		settings.EmailNotif = *input.EmailNotif
	}

	if len(fields) == 0 {
		return settings, nil
	}

	if err := srv.settingsRepo.UpdateUserSettingsFields(ctx, userID, fields); err != nil {
		srv.log(ctx).Error("Failed to update settings", slog.Any("userID", userID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to update user settings")
	}

	settings.UpdatedAt = time.Now()
	srv.snapshots.Settings.Set(userID, settings)

	return settings, nil
}

// CreateAPIKey generates and stores a new API key. The raw key is returned
// in full only from this call.
func (srv *settingsService) CreateAPIKey(ctx context.Context, userID uuid.UUID, input usecase.CreateAPIKeyInput) (*entity.APIKey, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("api key name is required")
	}

	raw, err := generateAPIKey()
	if err != nil {
		srv.log(ctx).Error("Failed to generate api key", slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to generate api key")
	}

	key := &entity.APIKey{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		Key:       raw,
		CreatedAt: time.Now(),
	}
	if err := srv.settingsRepo.CreateAPIKey(ctx, key); err != nil {
		return nil, errors.Wrap(err, "failed to create api key")
	}

	srv.snapshots.APIKeys.Put(userID, key)
	srv.log(ctx).Info("API key created", slog.Any("userID", userID), slog.Any("keyID", key.ID))

	return key, nil
}

// ListAPIKeys returns the user's API keys.
func (srv *settingsService) ListAPIKeys(ctx context.Context, userID uuid.UUID) ([]*entity.APIKey, error) {
	generation := srv.snapshots.APIKeys.Begin(userID)

	keys, err := srv.settingsRepo.FindAPIKeysByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list api keys")
	}

	srv.snapshots.APIKeys.Replace(userID, generation, keys)

	return keys, nil
}

// DeleteAPIKey revokes an API key the user owns.
func (srv *settingsService) DeleteAPIKey(ctx context.Context, userID uuid.UUID, keyID uuid.UUID) error {
	key, err := srv.settingsRepo.FindAPIKeyByID(ctx, keyID)
	if err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return domainerrors.ErrAPIKeyNotFound
		}

		return errors.Wrap(err, "failed to find api key")
	}
	if key.UserID != userID {
		srv.log(ctx).Warn("API key ownership violation", slog.Any("userID", userID), slog.Any("keyID", keyID))
		return domainerrors.ErrAPIKeyNotFound
	}

	if err := srv.settingsRepo.DeleteAPIKey(ctx, keyID); err != nil {
		return errors.Wrap(err, "failed to delete api key")
	}

	srv.snapshots.APIKeys.Remove(userID, keyID.String())
	srv.log(ctx).Info("API key deleted", slog.Any("keyID", keyID))

	return nil
}

// ListLoginHistory returns the user's login records, newest first.
func (srv *settingsService) ListLoginHistory(ctx context.Context, userID uuid.UUID) ([]*entity.LoginRecord, error) {
	records, err := srv.settingsRepo.FindLoginRecordsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list login records")
	}

	return records, nil
}

// generateAPIKey produces a prefixed random key.
func generateAPIKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return apiKeyPrefix + hex.EncodeToString(buf), nil
}
