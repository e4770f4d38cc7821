package impl

import (
	"context"
	"testing"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/domain/service"
	mockRepo "clawdeck/internal/mocks/repository"
	mockSvc "clawdeck/internal/mocks/service"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// gatewayServiceFixtures holds all test dependencies for gateway service tests.
type gatewayServiceFixtures struct {
	service        usecase.GatewayUsecase
	deviceRepo     *mockRepo.MockDeviceRepository
	eventPublisher *mockSvc.MockEventPublisher
	snapshots      *Snapshots
}

func createTestGatewayService(t *testing.T) gatewayServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	snapshots := NewSnapshots()

	service := NewGatewayService(GatewayServiceParams{
		DeviceRepo:     deviceRepo,
		EventPublisher: eventPublisher,
		Snapshots:      snapshots,
		Logger:         newDiscardLogger(),
	})

	return gatewayServiceFixtures{
		service:        service,
		deviceRepo:     deviceRepo,
		eventPublisher: eventPublisher,
		snapshots:      snapshots,
	}
}

func TestGatewayService_ReportHeartbeat_UpdatesTelemetry(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "客廳助手",
		MAC:    "AA:BB:CC:DD:EE:10",
		Status: entity.DeviceStatusOnline,
		IP:     "192.168.1.20",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByMAC(ctx, userID, "AA:BB:CC:DD:EE:10").
		Return(device, nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceFields(ctx, device.ID, mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == "online" &&
				fields["cpu"] == 37 &&
				fields["memory"] == 55 &&
				fields["disk"] == 61 &&
				fields["ip"] == "192.168.1.33"
		})).
		Return(nil)

	updated, err := fx.service.ReportHeartbeat(ctx, userID, usecase.HeartbeatInput{
		MAC:    "aa:bb:cc:dd:ee:10",
		Status: entity.DeviceStatusOnline,
		IP:     "192.168.1.33",
		CPU:    37,
		Memory: 55,
		Disk:   61,
	})

	require.NoError(t, err)
	assert.Equal(t, 37, updated.CPU)
	assert.Equal(t, "192.168.1.33", updated.IP)
	assert.False(t, updated.LastActiveAt.IsZero())

	// The snapshot now carries the reported telemetry.
	cached, ok := fx.snapshots.Devices.Get(userID, device.ID.String())
	require.True(t, ok)
	assert.Equal(t, 55, cached.Memory)
}

func TestGatewayService_ReportHeartbeat_PublishesTransition(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "臥室助手",
		MAC:    "AA:BB:CC:DD:EE:11",
		Status: entity.DeviceStatusOffline,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByMAC(ctx, userID, "AA:BB:CC:DD:EE:11").
		Return(device, nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceFields(ctx, device.ID, mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishDeviceEvent(ctx, mock.MatchedBy(func(event *service.DeviceEvent) bool {
			return event.EventType == service.DeviceEventOnline && event.DeviceID == device.ID.String()
		})).
		Return(nil)

	_, err := fx.service.ReportHeartbeat(ctx, userID, usecase.HeartbeatInput{
		MAC:    "AA:BB:CC:DD:EE:11",
		Status: entity.DeviceStatusOnline,
	})

	require.NoError(t, err)
}

func TestGatewayService_ReportHeartbeat_NoEventWithoutTransition(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{
		ID:     uuid.New(),
		UserID: userID,
		MAC:    "AA:BB:CC:DD:EE:12",
		Status: entity.DeviceStatusOnline,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByMAC(ctx, userID, "AA:BB:CC:DD:EE:12").
		Return(device, nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceFields(ctx, device.ID, mock.AnythingOfType("map[string]interface {}")).
		Return(nil)

	_, err := fx.service.ReportHeartbeat(ctx, userID, usecase.HeartbeatInput{
		MAC:    "AA:BB:CC:DD:EE:12",
		Status: entity.DeviceStatusOnline,
	})

	require.NoError(t, err)
	fx.eventPublisher.AssertNotCalled(t, "PublishDeviceEvent", mock.Anything, mock.Anything)
}

func TestGatewayService_ReportHeartbeat_UnknownMAC(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByMAC(ctx, userID, "AA:BB:CC:DD:EE:99").
		Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.ReportHeartbeat(ctx, userID, usecase.HeartbeatInput{
		MAC:    "AA:BB:CC:DD:EE:99",
		Status: entity.DeviceStatusOnline,
	})

	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestGatewayService_ReportHeartbeat_InvalidInput(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	userID := uuid.New()

	_, err := fx.service.ReportHeartbeat(ctx, userID, usecase.HeartbeatInput{MAC: "not-a-mac"})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceMACInvalid)

	_, err = fx.service.ReportHeartbeat(ctx, userID, usecase.HeartbeatInput{
		MAC:    "AA:BB:CC:DD:EE:10",
		Status: entity.DeviceStatusOnline,
		CPU:    150,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
