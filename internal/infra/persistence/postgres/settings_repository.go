// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// FindUserSettings retrieves the settings singleton of a user.
func (repo *settingsRepository) FindUserSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	var settingsM model.UserSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find user settings")
	}

	return toUserSettingsDomain(&settingsM)
}

// CreateUserSettings persists the settings singleton for a user.
func (repo *settingsRepository) CreateUserSettings(ctx context.Context, settings *entity.UserSettings) error {
	settingsM, err := fromUserSettingsDomain(settings)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(settingsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user settings already exist")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// UpdateUserSettingsFields applies a partial update to the settings singleton.
func (repo *settingsRepository) UpdateUserSettingsFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserSettingsModel{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user settings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSettingsNotFound
	}

	return nil
}

// CreateAPIKey persists a new API key.
func (repo *settingsRepository) CreateAPIKey(ctx context.Context, key *entity.APIKey) error {
	keyM := fromAPIKeyDomain(key)

	if err := repo.db.WithContext(ctx).Create(keyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("api key value collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create api key")
	}

	key.ID = keyM.ID
	key.CreatedAt = keyM.CreatedAt

	return nil
}

// FindAPIKeysByUser retrieves all API keys of a user, newest first.
func (repo *settingsRepository) FindAPIKeysByUser(ctx context.Context, userID uuid.UUID) ([]*entity.APIKey, error) {
	var keyModels []*model.APIKeyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&keyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find api keys")
	}

	keys := make([]*entity.APIKey, 0, len(keyModels))
	for _, keyM := range keyModels {
		keys = append(keys, toAPIKeyDomain(keyM))
	}

	return keys, nil
}

// FindAPIKeyByID retrieves a single API key by its unique ID.
func (repo *settingsRepository) FindAPIKeyByID(ctx context.Context, id uuid.UUID) (*entity.APIKey, error) {
	var keyM model.APIKeyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find api key")
	}

	return toAPIKeyDomain(&keyM), nil
}

// FindAPIKeyByKey retrieves an API key by its raw key value.
func (repo *settingsRepository) FindAPIKeyByKey(ctx context.Context, key string) (*entity.APIKey, error) {
	var keyM model.APIKeyModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find api key by value")
	}

	return toAPIKeyDomain(&keyM), nil
}

// TouchAPIKey stamps the last-used time of an API key.
func (repo *settingsRepository) TouchAPIKey(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.APIKeyModel{}).
		Where("id = ?", id).
		Update("last_used", gorm.Expr("NOW()"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch api key")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAPIKeyNotFound
	}

	return nil
}

// DeleteAPIKey removes an API key by its ID.
func (repo *settingsRepository) DeleteAPIKey(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.APIKeyModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete api key")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAPIKeyNotFound
	}

	return nil
}

// CreateLoginRecord appends a login history entry.
func (repo *settingsRepository) CreateLoginRecord(ctx context.Context, record *entity.LoginRecord) error {
	recordM := fromLoginRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create login record")
	}

	record.ID = recordM.ID
	record.LoggedAt = recordM.CreatedAt

	return nil
}

// ClearCurrentLoginRecords drops the current-session flag from every login
// record of a user.
func (repo *settingsRepository) ClearCurrentLoginRecords(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.LoginRecordModel{}).
		Where("user_id = ? AND current", userID).
		Update("current", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear current login records")
	}

	return nil
}

// FindLoginRecordsByUser retrieves the login history of a user, newest first.
func (repo *settingsRepository) FindLoginRecordsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LoginRecord, error) {
	var recordModels []*model.LoginRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find login records")
	}

	records := make([]*entity.LoginRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toLoginRecordDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

func toUserSettingsDomain(data *model.UserSettingsModel) (*entity.UserSettings, error) {
	if data == nil {
		return nil, nil
	}

	settings := &entity.UserSettings{
		UserID:           data.UserID,
		Language:         data.Language,
		Timezone:         data.Timezone,
		Theme:            entity.Theme(data.Theme),
		NotifFrequency:   entity.NotifyFrequency(data.NotifFrequency),
		TwoFactorEnabled: data.TwoFactorEnabled,
		UpdatedAt:        data.UpdatedAt,
	}

	if err := decodeJSONColumn(data.EmailNotif, &settings.EmailNotif); err != nil {
		return nil, errors.Wrap(err, "failed to decode email notification settings")
	}

	return settings, nil
}

func fromUserSettingsDomain(data *entity.UserSettings) (*model.UserSettingsModel, error) {
	if data == nil {
		return nil, nil
	}

	emailNotif, err := encodeJSONColumn(data.EmailNotif)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode email notification settings")
	}

	return &model.UserSettingsModel{
		UserID:           data.UserID,
		Language:         data.Language,
		Timezone:         data.Timezone,
		Theme:            string(data.Theme),
		EmailNotif:       emailNotif,
		NotifFrequency:   string(data.NotifFrequency),
		TwoFactorEnabled: data.TwoFactorEnabled,
	}, nil
}

func toAPIKeyDomain(data *model.APIKeyModel) *entity.APIKey {
	if data == nil {
		return nil
	}

	return &entity.APIKey{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Key:       data.Key,
		CreatedAt: data.CreatedAt,
		LastUsed:  data.LastUsed,
	}
}

func fromAPIKeyDomain(data *entity.APIKey) *model.APIKeyModel {
	if data == nil {
		return nil
	}

	return &model.APIKeyModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Name:     data.Name,
		Key:      data.Key,
		LastUsed: data.LastUsed,
	}
}

func toLoginRecordDomain(data *model.LoginRecordModel) *entity.LoginRecord {
	if data == nil {
		return nil
	}

	return &entity.LoginRecord{
		ID:       data.ID,
		UserID:   data.UserID,
		IP:       data.IP,
		Device:   data.Device,
		Location: data.Location,
		Current:  data.Current,
		LoggedAt: data.CreatedAt,
	}
}

func fromLoginRecordDomain(data *entity.LoginRecord) *model.LoginRecordModel {
	if data == nil {
		return nil
	}

	return &model.LoginRecordModel{
		ID:       data.ID,
		UserID:   data.UserID,
		IP:       data.IP,
		Device:   data.Device,
		Location: data.Location,
		Current:  data.Current,
	}
}
