package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "clawdeck/internal/delivery/context"
	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/domain/service"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// skillService implements the SkillUsecase interface.
type skillService struct {
	txManager      repository.TransactionManager
	skillRepo      repository.SkillRepository
	deviceRepo     repository.DeviceRepository
	eventPublisher service.EventPublisher
	snapshots      *Snapshots
	logger         *slog.Logger
}

// SkillServiceParams holds dependencies for skillService, injected by Fx.
type SkillServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SkillRepo      repository.SkillRepository
	DeviceRepo     repository.DeviceRepository
	EventPublisher service.EventPublisher
	Snapshots      *Snapshots
	Logger         *slog.Logger
}

// NewSkillService is the constructor for skillService.
func NewSkillService(params SkillServiceParams) usecase.SkillUsecase {
	return &skillService{
		txManager:      params.TxManager,
		skillRepo:      params.SkillRepo,
		deviceRepo:     params.DeviceRepo,
		eventPublisher: params.EventPublisher,
		snapshots:      params.Snapshots,
		logger:         params.Logger,
	}
}

func (srv *skillService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMarketSkills returns the marketplace catalog. The catalog is shared
// across users and served from the snapshot once loaded.
func (srv *skillService) ListMarketSkills(ctx context.Context) ([]*entity.MarketSkill, error) {
	if srv.snapshots.MarketSkills.Loaded(catalogOwner) {
		return srv.snapshots.MarketSkills.List(catalogOwner), nil
	}

	generation := srv.snapshots.MarketSkills.Begin(catalogOwner)

	skills, err := srv.skillRepo.FindMarketSkills(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load skill catalog", slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to load skill catalog")
	}

	srv.snapshots.MarketSkills.Replace(catalogOwner, generation, skills)

	return skills, nil
}

// GetMarketSkill returns a single catalog entry with its full detail.
func (srv *skillService) GetMarketSkill(ctx context.Context, skillID string) (*entity.MarketSkill, error) {
	if skill, ok := srv.snapshots.MarketSkills.Get(catalogOwner, skillID); ok {
		return skill, nil
	}

	skill, err := srv.skillRepo.FindMarketSkillByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrMarketSkillNotFound) {
			return nil, domainerrors.ErrSkillNotFound
		}

		return nil, errors.Wrap(err, "failed to find market skill")
	}

	return skill, nil
}

// ListInstalledSkills fetches the user's installations and replaces the
// snapshot with the result.
func (srv *skillService) ListInstalledSkills(ctx context.Context, userID uuid.UUID) ([]*entity.InstalledSkill, error) {
	generation := srv.snapshots.InstalledSkills.Begin(userID)

	installs, err := srv.skillRepo.FindInstalledSkillsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list installed skills", slog.Any("userID", userID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to list installed skills")
	}

	srv.snapshots.InstalledSkills.Replace(userID, generation, installs)

	return installs, nil
}

// InstallSkill installs a marketplace skill on the given devices. Devices
// that already run the skill are skipped, so repeating a request never
// creates duplicates.
func (srv *skillService) InstallSkill(ctx context.Context, userID uuid.UUID, input usecase.InstallSkillInput) (*usecase.InstallSkillOutput, error) {
	srv.log(ctx).Info("Installing skill", slog.Any("userID", userID), slog.String("skillID", input.SkillID))

	if len(input.DeviceIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one device is required")
	}

	marketSkill, err := srv.GetMarketSkill(ctx, input.SkillID)
	if err != nil {
		return nil, err
	}

	deviceIDs := dedupeUUIDs(input.DeviceIDs)
	created := make([]*entity.InstalledSkill, 0, len(deviceIDs))
	affectedDevices := make([]*entity.Device, 0, len(deviceIDs))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()
		skillRepo := repoFactory.NewSkillRepository()

		for _, deviceID := range deviceIDs {
			// 1. Every target device must exist and belong to the caller.
			device, err := deviceRepo.FindDeviceByID(ctx, deviceID)
			if err != nil {
				if errors.Is(err, repository.ErrDeviceNotFound) {
					return domainerrors.ErrDeviceNotFound
				}

				return errors.Wrap(err, "failed to find device")
			}
			if device.UserID != userID {
				return domainerrors.ErrDeviceNotFound
			}

			// 2. Skip devices that already run this skill.
			_, err = skillRepo.FindInstalledSkill(ctx, userID, input.SkillID, deviceID)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrInstalledSkillNotFound) {
				return errors.Wrap(err, "failed to find installed skill")
			}

			// 3. Create the installation with the catalog's config defaults.
			install := &entity.InstalledSkill{
				ID:           uuid.New(),
				UserID:       userID,
				SkillID:      marketSkill.ID,
				DeviceID:     deviceID,
				SkillName:    marketSkill.Name,
				Enabled:      true,
				Version:      marketSkill.Version,
				Config:       defaultConfig(marketSkill.ConfigSchema),
				ConfigSchema: marketSkill.ConfigSchema,
				InstalledAt:  time.Now(),
			}
			if err := skillRepo.CreateInstalledSkill(ctx, install); err != nil {
				return errors.Wrap(err, "failed to create installed skill")
			}

			created = append(created, install)
			affectedDevices = append(affectedDevices, device)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to install skill", slog.String("skillID", input.SkillID), slog.Any("error", err))
		return nil, err
	}

	for i, install := range created {
		srv.snapshots.InstalledSkills.Put(userID, install)
		srv.publishSkillChanged(ctx, affectedDevices[i])
	}
	srv.log(ctx).Debug("Skill installed",
		slog.String("skillID", input.SkillID),
		slog.Int("requested", len(deviceIDs)),
		slog.Int("installed", len(created)))

	return &usecase.InstallSkillOutput{
		Requested: len(deviceIDs),
		Installed: len(created),
		Skills:    created,
	}, nil
}

// UninstallSkill removes one installation record.
func (srv *skillService) UninstallSkill(ctx context.Context, userID uuid.UUID, installedID uuid.UUID) error {
	install, err := srv.findOwnedInstall(ctx, userID, installedID)
	if err != nil {
		return err
	}

	if err := srv.skillRepo.DeleteInstalledSkill(ctx, installedID); err != nil {
		srv.log(ctx).Error("Failed to uninstall skill", slog.Any("installedID", installedID), slog.Any("error", err))
		return errors.Wrap(err, "failed to delete installed skill")
	}

	srv.snapshots.InstalledSkills.Remove(userID, installedID.String())
	srv.publishSkillChangedByID(ctx, userID, install.DeviceID)
	srv.log(ctx).Info("Skill uninstalled", slog.Any("installedID", installedID))

	return nil
}

// ToggleSkill enables or disables one installation.
func (srv *skillService) ToggleSkill(ctx context.Context, userID uuid.UUID, installedID uuid.UUID, enabled bool) (*entity.InstalledSkill, error) {
	install, err := srv.findOwnedInstall(ctx, userID, installedID)
	if err != nil {
		return nil, err
	}

	if install.Enabled != enabled {
		if err := srv.skillRepo.UpdateInstalledSkillFields(ctx, installedID, map[string]any{"enabled": enabled}); err != nil {
			return nil, errors.Wrap(err, "failed to update installed skill")
		}
		install.Enabled = enabled
		srv.snapshots.InstalledSkills.Put(userID, install)
		srv.publishSkillChangedByID(ctx, userID, install.DeviceID)
	}

	return install, nil
}

// UpdateSkillConfig merges new configuration values into one installation.
func (srv *skillService) UpdateSkillConfig(ctx context.Context, userID uuid.UUID, installedID uuid.UUID, input usecase.UpdateSkillConfigInput) (*entity.InstalledSkill, error) {
	install, err := srv.findOwnedInstall(ctx, userID, installedID)
	if err != nil {
		return nil, err
	}

	if len(input.Config) == 0 {
		return install, nil
	}

	merged := make(map[string]any, len(install.Config)+len(input.Config))
	for key, value := range install.Config {
		merged[key] = value
	}
	for key, value := range input.Config {
		merged[key] = value
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode skill config")
	}
	if err := srv.skillRepo.UpdateInstalledSkillFields(ctx, installedID, map[string]any{"config": raw}); err != nil {
		srv.log(ctx).Error("Failed to update skill config", slog.Any("installedID", installedID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to update installed skill")
	}

	install.Config = merged
	srv.snapshots.InstalledSkills.Put(userID, install)

	return install, nil
}

// findOwnedInstall loads an installation and verifies ownership.
func (srv *skillService) findOwnedInstall(ctx context.Context, userID, installedID uuid.UUID) (*entity.InstalledSkill, error) {
	install, err := srv.skillRepo.FindInstalledSkillByID(ctx, installedID)
	if err != nil {
		if errors.Is(err, repository.ErrInstalledSkillNotFound) {
			return nil, domainerrors.ErrSkillNotInstalled
		}

		return nil, errors.Wrap(err, "failed to find installed skill")
	}
	if install.UserID != userID {
		srv.log(ctx).Warn("Installed skill ownership violation", slog.Any("userID", userID), slog.Any("installedID", installedID))
		return nil, domainerrors.ErrSkillNotInstalled
	}

	return install, nil
}

func (srv *skillService) publishSkillChanged(ctx context.Context, device *entity.Device) {
	if srv.eventPublisher == nil || device == nil {
		return
	}

	event := &service.DeviceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  service.DeviceEventSkillChanged,
		UserID:     device.UserID.String(),
		DeviceID:   device.ID.String(),
		DeviceName: device.Name,
		OccurredAt: time.Now(),
	}
	if err := srv.eventPublisher.PublishDeviceEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish device event", slog.Any("error", err))
	}
}

// publishSkillChangedByID resolves the device from the snapshot, falling
// back to a bare event when it is not cached.
func (srv *skillService) publishSkillChangedByID(ctx context.Context, userID, deviceID uuid.UUID) {
	if device, ok := srv.snapshots.Devices.Get(userID, deviceID.String()); ok {
		srv.publishSkillChanged(ctx, device)
		return
	}

	srv.publishSkillChanged(ctx, &entity.Device{ID: deviceID, UserID: userID})
}

// defaultConfig builds the initial config values from a schema.
func defaultConfig(schema []entity.ConfigField) map[string]any {
	config := make(map[string]any, len(schema))
	for _, field := range schema {
		if field.DefaultValue != nil {
			config[field.Key] = field.DefaultValue
		}
	}

	return config
}
