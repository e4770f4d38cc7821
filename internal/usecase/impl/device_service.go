package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
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

// macPattern matches an uppercase six-group colon-separated MAC address.
var macPattern = regexp.MustCompile(`^([0-9A-F]{2}:){5}[0-9A-F]{2}$`)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager      repository.TransactionManager
	deviceRepo     repository.DeviceRepository
	skillRepo      repository.SkillRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	snapshots      *Snapshots
	logger         *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DeviceRepo     repository.DeviceRepository
	SkillRepo      repository.SkillRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Snapshots      *Snapshots
	Logger         *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:      params.TxManager,
		deviceRepo:     params.DeviceRepo,
		skillRepo:      params.SkillRepo,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		snapshots:      params.Snapshots,
		logger:         params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDevices fetches the user's devices and replaces the snapshot with the
// result. A fetch that finishes after a newer one is discarded.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	generation := srv.snapshots.Devices.Begin(userID)

	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list devices", slog.Any("userID", userID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to list devices")
	}

	installs, err := srv.skillRepo.FindInstalledSkillsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list installed skills")
	}
	attachSkillSummaries(devices, installs)

	srv.snapshots.Devices.Replace(userID, generation, devices)

	return devices, nil
}

// GetDevice returns one device with its config history attached. The base
// record is served from the snapshot when loaded, from storage otherwise.
func (srv *deviceService) GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, ok := srv.snapshots.Devices.Get(userID, deviceID.String())
	if ok {
		// The snapshot entry is shared across requests; attach the config
		// history to a private copy.
		copied := *device
		device = &copied
	} else {
		var err error
		device, err = srv.findOwnedDevice(ctx, userID, deviceID)
		if err != nil {
			return nil, err
		}

		installs, err := srv.skillRepo.FindInstalledSkillsByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list installed skills")
		}
		attachSkillSummaries([]*entity.Device{device}, installs)
	}

	logs, err := srv.deviceRepo.FindConfigLogsByDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config history")
	}

	device.ConfigHistory = make([]entity.ConfigLogEntry, 0, len(logs))
	for _, log := range logs {
		device.ConfigHistory = append(device.ConfigHistory, *log)
	}

	return device, nil
}

// AddDevice validates and binds a new device to the user.
func (srv *deviceService) AddDevice(ctx context.Context, userID uuid.UUID, input usecase.AddDeviceInput) (*entity.Device, error) {
	srv.log(ctx).Info("Adding device", slog.Any("userID", userID), slog.String("mac", input.MAC))

	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("device name is required")
	}

	mac := strings.ToUpper(strings.TrimSpace(input.MAC))
	if !macPattern.MatchString(mac) {
		srv.log(ctx).Warn("Rejected device MAC", slog.String("mac", input.MAC))
		return nil, domainerrors.ErrDeviceMACInvalid
	}

	category := input.Category
	if category == "" {
		category = entity.DeviceCategoryPersonal
	}

	now := time.Now()
	device := &entity.Device{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         input.Name,
		MAC:          mac,
		Status:       entity.DeviceStatusOffline,
		Category:     category,
		Description:  input.Description,
		CreatedAt:    now,
		LastActiveAt: now,
		Skills:       []entity.SkillSummary{},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		if err := deviceRepo.CreateDevice(ctx, device); err != nil {
			if errors.Is(err, repository.ErrDuplicateDeviceMAC) {
				return domainerrors.ErrDeviceMACConflict
			}

			return errors.Wrap(err, "failed to create device")
		}

		log := &entity.ConfigLogEntry{
			ID:        uuid.New(),
			DeviceID:  device.ID,
			Summary:   "設備已綁定",
			ChangedAt: now,
		}

		return errors.Wrap(deviceRepo.AppendConfigLog(ctx, log), "failed to append config log")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add device", slog.Any("userID", userID), slog.Any("error", err))
		return nil, err
	}

	srv.snapshots.Devices.Put(userID, device)
	srv.publishEvent(ctx, service.DeviceEventRegistered, device)
	srv.log(ctx).Debug("Device added", slog.Any("deviceID", device.ID))

	return device, nil
}

// UpdateDevice applies a partial update to a device the user owns.
func (srv *deviceService) UpdateDevice(ctx context.Context, userID, deviceID uuid.UUID, input usecase.UpdateDeviceInput) (*entity.Device, error) {
	device, err := srv.findOwnedDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	changed := []string{}
	if input.Name != nil && *input.Name != device.Name {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("device name is required")
		}
		fields["name"] = *input.Name
		device.Name = *input.Name
		changed = append(changed, "名稱")
	}
	if input.Category != nil && *input.Category != device.Category {
		fields["category"] = string(*input.Category)
		device.Category = *input.Category
		changed = append(changed, "分類")
	}
	if input.Description != nil && *input.Description != device.Description {
		fields["description"] = *input.Description
		device.Description = *input.Description
		changed = append(changed, "描述")
	}

	if len(fields) == 0 {
		return device, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		if err := deviceRepo.UpdateDeviceFields(ctx, deviceID, fields); err != nil {
			return errors.Wrap(err, "failed to update device")
		}

		log := &entity.ConfigLogEntry{
			ID:        uuid.New(),
			DeviceID:  deviceID,
			Summary:   fmt.Sprintf("更新設備資料：%s", strings.Join(changed, "、")),
			ChangedAt: time.Now(),
		}

		return errors.Wrap(deviceRepo.AppendConfigLog(ctx, log), "failed to append config log")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update device", slog.Any("deviceID", deviceID), slog.Any("error", err))
		return nil, err
	}

	srv.snapshots.Devices.Put(userID, device)
	srv.publishEvent(ctx, service.DeviceEventUpdated, device)

	return device, nil
}

// DeleteDevice unbinds a single device together with its installed skills.
func (srv *deviceService) DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := srv.findOwnedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewSkillRepository().DeleteInstalledSkillsByDevices(ctx, []uuid.UUID{deviceID}); err != nil {
			return errors.Wrap(err, "failed to delete installed skills")
		}

		return errors.Wrap(repoFactory.NewDeviceRepository().DeleteDevice(ctx, deviceID), "failed to delete device")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete device", slog.Any("deviceID", deviceID), slog.Any("error", err))
		return err
	}

	srv.snapshots.Devices.Remove(userID, deviceID.String())
	srv.removeInstallSnapshots(userID, []uuid.UUID{deviceID})
	srv.publishEvent(ctx, service.DeviceEventRemoved, device)
	srv.log(ctx).Info("Device deleted", slog.Any("deviceID", deviceID))

	return nil
}

// DeleteDevices unbinds a batch of devices. IDs the user does not own are
// skipped and only counted as requested.
func (srv *deviceService) DeleteDevices(ctx context.Context, userID uuid.UUID, deviceIDs []uuid.UUID) (*usecase.DeleteDevicesOutput, error) {
	requested := dedupeUUIDs(deviceIDs)

	owned, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}
	ownedSet := make(map[uuid.UUID]*entity.Device, len(owned))
	for _, device := range owned {
		ownedSet[device.ID] = device
	}

	toDelete := make([]uuid.UUID, 0, len(requested))
	for _, id := range requested {
		if _, ok := ownedSet[id]; ok {
			toDelete = append(toDelete, id)
		}
	}

	output := &usecase.DeleteDevicesOutput{Requested: len(requested), Deleted: len(toDelete)}
	if len(toDelete) == 0 {
		return output, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewSkillRepository().DeleteInstalledSkillsByDevices(ctx, toDelete); err != nil {
			return errors.Wrap(err, "failed to delete installed skills")
		}

		return errors.Wrap(repoFactory.NewDeviceRepository().DeleteDevices(ctx, toDelete), "failed to delete devices")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete devices", slog.Any("userID", userID), slog.Any("error", err))
		return nil, err
	}

	keys := make([]string, 0, len(toDelete))
	for _, id := range toDelete {
		keys = append(keys, id.String())
	}
	srv.snapshots.Devices.RemoveMany(userID, keys)
	srv.removeInstallSnapshots(userID, toDelete)

	for _, id := range toDelete {
		srv.publishEvent(ctx, service.DeviceEventRemoved, ownedSet[id])
	}
	srv.log(ctx).Info("Devices deleted", slog.Any("userID", userID), slog.Int("deleted", output.Deleted))

	return output, nil
}

// GetConfigLogs returns the configuration change history of a device.
func (srv *deviceService) GetConfigLogs(ctx context.Context, userID, deviceID uuid.UUID) ([]*entity.ConfigLogEntry, error) {
	if _, err := srv.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return nil, err
	}

	logs, err := srv.deviceRepo.FindConfigLogsByDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config history")
	}

	return logs, nil
}

// ExportDevicesCSV renders the user's devices as a CSV document.
func (srv *deviceService) ExportDevicesCSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"名稱", "MAC 位址", "狀態", "分類", "IP", "CPU (%)", "記憶體 (%)", "磁碟 (%)", "註冊時間", "最後活動"}
	if err := writer.Write(header); err != nil {
		return nil, errors.Wrap(err, "failed to write csv header")
	}

	for _, device := range devices {
		row := []string{
			device.Name,
			device.MAC,
			string(device.Status),
			string(device.Category),
			device.IP,
			strconv.Itoa(device.CPU),
			strconv.Itoa(device.Memory),
			strconv.Itoa(device.Disk),
			device.CreatedAt.Format(time.RFC3339),
			device.LastActiveAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrap(err, "failed to write csv row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush csv")
	}

	return buf.Bytes(), nil
}

// GeneratePairingQR produces the QR code used to pair a device with the
// mobile app.
func (srv *deviceService) GeneratePairingQR(ctx context.Context, userID, deviceID uuid.UUID) ([]byte, error) {
	if _, err := srv.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GeneratePairingQR(deviceID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate pairing QR", slog.Any("deviceID", deviceID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to generate pairing qr")
	}

	return png, nil
}

// findOwnedDevice loads a device from storage and verifies ownership.
// A device that belongs to someone else is reported as not found.
func (srv *deviceService) findOwnedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}
	if device.UserID != userID {
		srv.log(ctx).Warn("Device ownership violation", slog.Any("userID", userID), slog.Any("deviceID", deviceID))
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}

// removeInstallSnapshots drops snapshot entries of installs that lived on
// the given devices.
func (srv *deviceService) removeInstallSnapshots(userID uuid.UUID, deviceIDs []uuid.UUID) {
	deviceSet := make(map[uuid.UUID]struct{}, len(deviceIDs))
	for _, id := range deviceIDs {
		deviceSet[id] = struct{}{}
	}

	var keys []string
	for _, install := range srv.snapshots.InstalledSkills.List(userID) {
		if _, ok := deviceSet[install.DeviceID]; ok {
			keys = append(keys, install.ID.String())
		}
	}
	srv.snapshots.InstalledSkills.RemoveMany(userID, keys)
}

// publishEvent emits a device lifecycle event. Publishing is best effort.
func (srv *deviceService) publishEvent(ctx context.Context, eventType string, device *entity.Device) {
	if srv.eventPublisher == nil {
		return
	}

	event := &service.DeviceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		UserID:     device.UserID.String(),
		DeviceID:   device.ID.String(),
		DeviceName: device.Name,
		OccurredAt: time.Now(),
	}
	if err := srv.eventPublisher.PublishDeviceEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish device event", slog.String("eventType", eventType), slog.Any("error", err))
	}
}

// attachSkillSummaries projects installed skills onto their devices.
func attachSkillSummaries(devices []*entity.Device, installs []*entity.InstalledSkill) {
	byDevice := make(map[uuid.UUID][]entity.SkillSummary)
	for _, install := range installs {
		byDevice[install.DeviceID] = append(byDevice[install.DeviceID], entity.SkillSummary{
			Name:    install.SkillName,
			Version: install.Version,
		})
	}

	for _, device := range devices {
		summaries := byDevice[device.ID]
		if summaries == nil {
			summaries = []entity.SkillSummary{}
		}
		device.Skills = summaries
	}
}

// dedupeUUIDs drops duplicate IDs while preserving order.
func dedupeUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
