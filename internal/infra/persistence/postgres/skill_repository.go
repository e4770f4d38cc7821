// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// skillRepository implements the repository.SkillRepository interface.
type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository is the constructor for skillRepository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &skillRepository{db: db}
}

// FindMarketSkills retrieves the full marketplace catalog ordered by catalog ID.
func (repo *skillRepository) FindMarketSkills(ctx context.Context) ([]*entity.MarketSkill, error) {
	var skillModels []*model.MarketSkillModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&skillModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find market skills")
	}

	skills := make([]*entity.MarketSkill, 0, len(skillModels))
	for _, skillM := range skillModels {
		skill, err := toMarketSkillDomain(skillM)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	return skills, nil
}

// FindMarketSkillByID retrieves a single marketplace skill by its catalog ID.
func (repo *skillRepository) FindMarketSkillByID(ctx context.Context, id string) (*entity.MarketSkill, error) {
	var skillM model.MarketSkillModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&skillM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMarketSkillNotFound
		}

		return nil, errors.Wrap(err, "failed to find market skill")
	}

	return toMarketSkillDomain(&skillM)
}

// UpsertMarketSkills inserts or refreshes catalog entries.
func (repo *skillRepository) UpsertMarketSkills(ctx context.Context, skills []*entity.MarketSkill) error {
	if len(skills) == 0 {
		return nil
	}

	skillModels := make([]*model.MarketSkillModel, 0, len(skills))
	for _, skill := range skills {
		skillM, err := fromMarketSkillDomain(skill)
		if err != nil {
			return err
		}
		skillModels = append(skillModels, skillM)
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&skillModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert market skills")
	}

	return nil
}

// CreateInstalledSkill persists a new installation record.
func (repo *skillRepository) CreateInstalledSkill(ctx context.Context, skill *entity.InstalledSkill) error {
	skillM, err := fromInstalledSkillDomain(skill)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(skillM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The (user, skill, device) pair already has an installation.
			return domainerrors.ErrConflict.WrapMessage("skill already installed on device")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid skill or device reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create installed skill")
	}

	skill.ID = skillM.ID
	skill.InstalledAt = skillM.CreatedAt

	return nil
}

// FindInstalledSkillByID retrieves an installation record by its unique ID.
func (repo *skillRepository) FindInstalledSkillByID(ctx context.Context, id uuid.UUID) (*entity.InstalledSkill, error) {
	var skillM model.InstalledSkillModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&skillM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInstalledSkillNotFound
		}

		return nil, errors.Wrap(err, "failed to find installed skill")
	}

	return toInstalledSkillDomain(&skillM)
}

// FindInstalledSkillsByUser retrieves all installation records for a user.
func (repo *skillRepository) FindInstalledSkillsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InstalledSkill, error) {
	var skillModels []*model.InstalledSkillModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&skillModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find installed skills by user")
	}

	skills := make([]*entity.InstalledSkill, 0, len(skillModels))
	for _, skillM := range skillModels {
		skill, err := toInstalledSkillDomain(skillM)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	return skills, nil
}

// FindInstalledSkill retrieves the installation record for a (skill, device) pair.
func (repo *skillRepository) FindInstalledSkill(ctx context.Context, userID uuid.UUID, skillID string, deviceID uuid.UUID) (*entity.InstalledSkill, error) {
	var skillM model.InstalledSkillModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ? AND device_id = ?", userID, skillID, deviceID).
		First(&skillM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInstalledSkillNotFound
		}

		return nil, errors.Wrap(err, "failed to find installed skill")
	}

	return toInstalledSkillDomain(&skillM)
}

// UpdateInstalledSkillFields applies a partial update to an installation record.
func (repo *skillRepository) UpdateInstalledSkillFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InstalledSkillModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update installed skill")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInstalledSkillNotFound
	}

	return nil
}

// DeleteInstalledSkill removes an installation record by its ID.
func (repo *skillRepository) DeleteInstalledSkill(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InstalledSkillModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete installed skill")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInstalledSkillNotFound
	}

	return nil
}

// DeleteInstalledSkillsByDevices removes all installation records bound to the given devices.
func (repo *skillRepository) DeleteInstalledSkillsByDevices(ctx context.Context, deviceIDs []uuid.UUID) error {
	if len(deviceIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("device_id IN ?", deviceIDs).
		Delete(&model.InstalledSkillModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete installed skills by devices")
	}

	return nil
}

// CountInstalledSkillsByUser returns the number of installation records a user has.
func (repo *skillRepository) CountInstalledSkillsByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.InstalledSkillModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count installed skills")
	}

	return int(count), nil
}

// --- Mapper Functions ---

func toMarketSkillDomain(data *model.MarketSkillModel) (*entity.MarketSkill, error) {
	if data == nil {
		return nil, nil
	}

	skill := &entity.MarketSkill{
		ID:              data.ID,
		Name:            data.Name,
		Icon:            data.Icon,
		Category:        data.Category,
		Description:     data.Description,
		LongDescription: data.LongDescription,
		Version:         data.Version,
		Developer:       data.Developer,
		PublishedAt:     data.PublishedAt,
		Rating:          data.Rating,
		RatingCount:     data.RatingCount,
		Installs:        data.Installs,
	}

	if err := decodeJSONColumn(data.Requirements, &skill.Requirements); err != nil {
		return nil, errors.Wrap(err, "failed to decode skill requirements")
	}
	if err := decodeJSONColumn(data.Features, &skill.Features); err != nil {
		return nil, errors.Wrap(err, "failed to decode skill features")
	}
	if err := decodeJSONColumn(data.Reviews, &skill.Reviews); err != nil {
		return nil, errors.Wrap(err, "failed to decode skill reviews")
	}
	if err := decodeJSONColumn(data.ConfigSchema, &skill.ConfigSchema); err != nil {
		return nil, errors.Wrap(err, "failed to decode skill config schema")
	}

	return skill, nil
}

func fromMarketSkillDomain(data *entity.MarketSkill) (*model.MarketSkillModel, error) {
	if data == nil {
		return nil, nil
	}

	requirements, err := encodeJSONColumn(data.Requirements)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode skill requirements")
	}
	features, err := encodeJSONColumn(data.Features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode skill features")
	}
	reviews, err := encodeJSONColumn(data.Reviews)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode skill reviews")
	}
	configSchema, err := encodeJSONColumn(data.ConfigSchema)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode skill config schema")
	}

	return &model.MarketSkillModel{
		ID:              data.ID,
		Name:            data.Name,
		Icon:            data.Icon,
		Category:        data.Category,
		Description:     data.Description,
		LongDescription: data.LongDescription,
		Version:         data.Version,
		Developer:       data.Developer,
		PublishedAt:     data.PublishedAt,
		Rating:          data.Rating,
		RatingCount:     data.RatingCount,
		Installs:        data.Installs,
		Requirements:    requirements,
		Features:        features,
		Reviews:         reviews,
		ConfigSchema:    configSchema,
	}, nil
}

func toInstalledSkillDomain(data *model.InstalledSkillModel) (*entity.InstalledSkill, error) {
	if data == nil {
		return nil, nil
	}

	skill := &entity.InstalledSkill{
		ID:          data.ID,
		UserID:      data.UserID,
		SkillID:     data.SkillID,
		DeviceID:    data.DeviceID,
		SkillName:   data.SkillName,
		Enabled:     data.Enabled,
		Version:     data.Version,
		InstalledAt: data.CreatedAt,
	}

	if err := decodeJSONColumn(data.Config, &skill.Config); err != nil {
		return nil, errors.Wrap(err, "failed to decode skill config")
	}
	if err := decodeJSONColumn(data.ConfigSchema, &skill.ConfigSchema); err != nil {
		return nil, errors.Wrap(err, "failed to decode skill config schema")
	}

	return skill, nil
}

func fromInstalledSkillDomain(data *entity.InstalledSkill) (*model.InstalledSkillModel, error) {
	if data == nil {
		return nil, nil
	}

	config, err := encodeJSONColumn(data.Config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode skill config")
	}
	configSchema, err := encodeJSONColumn(data.ConfigSchema)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode skill config schema")
	}

	return &model.InstalledSkillModel{
		ID:           data.ID,
		UserID:       data.UserID,
		SkillID:      data.SkillID,
		DeviceID:     data.DeviceID,
		SkillName:    data.SkillName,
		Enabled:      data.Enabled,
		Version:      data.Version,
		Config:       config,
		ConfigSchema: configSchema,
	}, nil
}

// decodeJSONColumn unmarshals a jsonb column into dst, treating an empty
// column as the zero value.
func decodeJSONColumn(raw datatypes.JSON, dst any) error {
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, dst)
}

// encodeJSONColumn marshals src into a jsonb column value.
func encodeJSONColumn(src any) (datatypes.JSON, error) {
	raw, err := json.Marshal(src)
	if err != nil {
		return nil, err
	}

	return datatypes.JSON(raw), nil
}
