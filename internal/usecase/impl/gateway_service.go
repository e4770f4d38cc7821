package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "clawdeck/internal/delivery/context"
	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/domain/service"
	"clawdeck/internal/usecase"
	"clawdeck/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gatewayService implements the GatewayUsecase interface.
type gatewayService struct {
	deviceRepo     repository.DeviceRepository
	eventPublisher service.EventPublisher
	snapshots      *Snapshots
	logger         *slog.Logger
}

// GatewayServiceParams holds dependencies for gatewayService, injected by Fx.
type GatewayServiceParams struct {
	fx.In

	DeviceRepo     repository.DeviceRepository
	EventPublisher service.EventPublisher
	Snapshots      *Snapshots
	Logger         *slog.Logger
}

// NewGatewayService is the constructor for gatewayService.
func NewGatewayService(params GatewayServiceParams) usecase.GatewayUsecase {
	return &gatewayService{
		deviceRepo:     params.DeviceRepo,
		eventPublisher: params.EventPublisher,
		snapshots:      params.Snapshots,
		logger:         params.Logger,
	}
}

func (srv *gatewayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReportHeartbeat records a telemetry report for a device identified by its
// MAC address and publishes an online/offline transition event when the
// connectivity state flips.
func (srv *gatewayService) ReportHeartbeat(ctx context.Context, userID uuid.UUID, input usecase.HeartbeatInput) (*entity.Device, error) {
	mac := strings.ToUpper(strings.TrimSpace(input.MAC))
	if !macPattern.MatchString(mac) {
		srv.log(ctx).Warn("Rejected heartbeat MAC", slog.String("mac", input.MAC))
		return nil, domainerrors.ErrDeviceMACInvalid
	}

	status := input.Status
	if status == "" {
		status = entity.DeviceStatusOnline
	}
	if status != entity.DeviceStatusOnline && status != entity.DeviceStatusOffline {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown device status")
	}
	if !validPercentage(input.CPU) || !validPercentage(input.Memory) || !validPercentage(input.Disk) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("utilization values must be between 0 and 100")
	}

	device, err := srv.deviceRepo.FindDeviceByMAC(ctx, userID, mac)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by MAC")
	}

	now := time.Now()
	previousStatus := device.Status

	fields := map[string]any{
		"status":         string(status),
		"cpu":            input.CPU,
		"memory":         input.Memory,
		"disk":           input.Disk,
		"last_active_at": now,
	}
	if input.IP != "" {
		fields["ip"] = input.IP
		device.IP = input.IP
	}

	if err := srv.deviceRepo.UpdateDeviceFields(ctx, device.ID, fields); err != nil {
		srv.log(ctx).Error("Failed to record heartbeat", slog.Any("deviceID", device.ID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to record heartbeat")
	}

	device.Status = status
	device.CPU = input.CPU
	device.Memory = input.Memory
	device.Disk = input.Disk
	device.LastActiveAt = now

	srv.snapshots.Devices.Put(userID, device)

	if previousStatus != status {
		eventType := service.DeviceEventOnline
		if status == entity.DeviceStatusOffline {
			eventType = service.DeviceEventOffline
		}
		srv.publishTransition(ctx, eventType, device)
	}

	srv.log(ctx).Debug("Heartbeat recorded",
		slog.Any("deviceID", device.ID),
		slog.String("status", string(status)),
		slog.String("uptime", util.FormatDuration(time.Duration(input.UptimeSeconds)*time.Second)))

	return device, nil
}

// publishTransition emits an online/offline event. Publishing is best effort.
func (srv *gatewayService) publishTransition(ctx context.Context, eventType string, device *entity.Device) {
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

func validPercentage(v int) bool {
	return v >= 0 && v <= 100
}
