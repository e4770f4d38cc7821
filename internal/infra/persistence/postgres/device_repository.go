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
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// CreateDevice persists a new device for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM, err := fromDeviceDomain(device)
	if err != nil {
		return errors.Wrap(err, "failed to encode device")
	}

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDeviceMAC
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM)
}

// FindDevicesByUser retrieves all devices for a specific user, newest first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		device, err := toDeviceDomain(deviceM)
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}

	return devices, nil
}

// FindDeviceByMAC retrieves a user's device by its MAC address.
func (repo *deviceRepository) FindDeviceByMAC(ctx context.Context, userID uuid.UUID, mac string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND mac = ?", userID, mac).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by MAC")
	}

	return toDeviceDomain(&deviceM)
}

// UpdateDeviceFields applies a partial update to a device.
func (repo *deviceRepository) UpdateDeviceFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDeviceMAC
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevices removes a batch of devices by their IDs (soft delete).
func (repo *deviceRepository) DeleteDevices(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.DeviceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete devices")
	}

	return nil
}

// CountDevicesByUser returns the number of devices a user owns.
func (repo *deviceRepository) CountDevicesByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count devices")
	}

	return int(count), nil
}

// AppendConfigLog records a configuration change for a device.
func (repo *deviceRepository) AppendConfigLog(ctx context.Context, log *entity.ConfigLogEntry) error {
	logM := &model.ConfigLogModel{
		DeviceID: log.DeviceID,
		Summary:  log.Summary,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append config log")
	}

	log.ID = logM.ID
	log.ChangedAt = logM.CreatedAt

	return nil
}

// FindConfigLogsByDevice retrieves the configuration change history of a device, newest first.
func (repo *deviceRepository) FindConfigLogsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.ConfigLogEntry, error) {
	var logModels []*model.ConfigLogModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find config logs")
	}

	logs := make([]*entity.ConfigLogEntry, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, &entity.ConfigLogEntry{
			ID:        logM.ID,
			DeviceID:  logM.DeviceID,
			Summary:   logM.Summary,
			ChangedAt: logM.CreatedAt,
		})
	}

	return logs, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) (*entity.Device, error) {
	if data == nil {
		return nil, nil
	}

	var skills []entity.SkillSummary
	if len(data.Skills) > 0 {
		if err := json.Unmarshal(data.Skills, &skills); err != nil {
			return nil, errors.Wrap(err, "failed to decode device skills")
		}
	}

	return &entity.Device{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		MAC:          data.MAC,
		Status:       entity.DeviceStatus(data.Status),
		Category:     entity.DeviceCategory(data.Category),
		Description:  data.Description,
		IP:           data.IP,
		CPU:          data.CPU,
		Memory:       data.Memory,
		Disk:         data.Disk,
		Skills:       skills,
		LastActiveAt: data.LastActiveAt,
		CreatedAt:    data.CreatedAt,
	}, nil
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel for persistence.
func fromDeviceDomain(data *entity.Device) (*model.DeviceModel, error) {
	if data == nil {
		return nil, nil
	}

	skills := data.Skills
	if skills == nil {
		skills = []entity.SkillSummary{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode device skills")
	}

	return &model.DeviceModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		MAC:          data.MAC,
		Status:       string(data.Status),
		Category:     string(data.Category),
		Description:  data.Description,
		IP:           data.IP,
		CPU:          data.CPU,
		Memory:       data.Memory,
		Disk:         data.Disk,
		Skills:       datatypes.JSON(skillsJSON),
		LastActiveAt: data.LastActiveAt,
	}, nil
}
