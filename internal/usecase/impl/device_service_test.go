package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

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

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service        usecase.DeviceUsecase
	txManager      *mockRepo.MockTransactionManager
	deviceRepo     *mockRepo.MockDeviceRepository
	skillRepo      *mockRepo.MockSkillRepository
	qrcodeService  *mockSvc.MockQRCodeService
	eventPublisher *mockSvc.MockEventPublisher
	snapshots      *Snapshots
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	skillRepo := mockRepo.NewMockSkillRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	snapshots := NewSnapshots()

	service := NewDeviceService(DeviceServiceParams{
		TxManager:      txManager,
		DeviceRepo:     deviceRepo,
		SkillRepo:      skillRepo,
		QRCodeService:  qrcodeService,
		EventPublisher: eventPublisher,
		Snapshots:      snapshots,
		Logger:         newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:        service,
		txManager:      txManager,
		deviceRepo:     deviceRepo,
		skillRepo:      skillRepo,
		qrcodeService:  qrcodeService,
		eventPublisher: eventPublisher,
		snapshots:      snapshots,
	}
}

func TestDeviceService_ListDevices_AttachesSkillSummaries(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceA := &entity.Device{ID: uuid.New(), UserID: userID, Name: "客廳助手"}
	deviceB := &entity.Device{ID: uuid.New(), UserID: userID, Name: "臥室助手"}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.Device{deviceA, deviceB}, nil)
	fx.skillRepo.EXPECT().
		FindInstalledSkillsByUser(ctx, userID).
		Return([]*entity.InstalledSkill{
			{ID: uuid.New(), UserID: userID, DeviceID: deviceA.ID, SkillName: "天氣查詢", Version: "v1.3"},
			{ID: uuid.New(), UserID: userID, DeviceID: deviceA.ID, SkillName: "音樂播放", Version: "v2.0"},
		}, nil)

	devices, err := fx.service.ListDevices(ctx, userID)

	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Len(t, devices[0].Skills, 2)
	assert.Equal(t, "天氣查詢", devices[0].Skills[0].Name)
	assert.Empty(t, devices[1].Skills)
	assert.True(t, fx.snapshots.Devices.Loaded(userID))
}

func TestDeviceService_ListDevices_ReplacesSnapshot(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	stale := &entity.Device{ID: uuid.New(), UserID: userID, Name: "舊設備"}
	fresh := &entity.Device{ID: uuid.New(), UserID: userID, Name: "新設備"}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.Device{stale}, nil).Once()
	fx.skillRepo.EXPECT().FindInstalledSkillsByUser(ctx, userID).Return(nil, nil).Times(2)
	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.Device{fresh}, nil).Once()

	_, err := fx.service.ListDevices(ctx, userID)
	require.NoError(t, err)

	devices, err := fx.service.ListDevices(ctx, userID)
	require.NoError(t, err)

	// The second fetch replaces, not merges.
	require.Len(t, devices, 1)
	assert.Equal(t, fresh.ID, devices[0].ID)
	_, ok := fx.snapshots.Devices.Get(userID, stale.ID.String())
	assert.False(t, ok)
}

func TestDeviceService_GetDevice_DoesNotMutateSnapshotEntry(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{ID: uuid.New(), UserID: userID, Name: "客廳助手"}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.Device{device}, nil)
	fx.skillRepo.EXPECT().FindInstalledSkillsByUser(ctx, userID).Return(nil, nil)
	fx.deviceRepo.EXPECT().
		FindConfigLogsByDevice(ctx, device.ID).
		Return([]*entity.ConfigLogEntry{
			{ID: uuid.New(), DeviceID: device.ID, Summary: "設備已綁定", ChangedAt: time.Now()},
		}, nil)

	_, err := fx.service.ListDevices(ctx, userID)
	require.NoError(t, err)

	loaded, err := fx.service.GetDevice(ctx, userID, device.ID)
	require.NoError(t, err)
	require.Len(t, loaded.ConfigHistory, 1)

	// The returned device is a copy; the shared snapshot entry stays as the
	// fetch left it.
	cached, ok := fx.snapshots.Devices.Get(userID, device.ID.String())
	require.True(t, ok)
	assert.Empty(t, cached.ConfigHistory)
	assert.NotSame(t, cached, loaded)
}

func TestDeviceService_AddDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.AddDeviceInput{
		Name:     "書房助手",
		MAC:      "aa:bb:cc:dd:ee:10",
		Category: entity.DeviceCategoryPersonal,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockDeviceRepo.EXPECT().
				CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
				Run(func(ctx context.Context, device *entity.Device) {
					assert.Equal(t, "AA:BB:CC:DD:EE:10", device.MAC)
					assert.Equal(t, entity.DeviceStatusOffline, device.Status)
				}).
				Return(nil)
			mockDeviceRepo.EXPECT().
				AppendConfigLog(ctx, mock.AnythingOfType("*entity.ConfigLogEntry")).
				Return(nil)

			return fn(mockFactory)
		})
	fx.eventPublisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Run(func(ctx context.Context, event *service.DeviceEvent) {
			assert.Equal(t, service.DeviceEventRegistered, event.EventType)
		}).
		Return(nil)

	device, err := fx.service.AddDevice(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "AA:BB:CC:DD:EE:10", device.MAC)
	assert.Equal(t, userID, device.UserID)
}

func TestDeviceService_AddDevice_InvalidMAC(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Five groups instead of six; rejected before any write is attempted.
	_, err := fx.service.AddDevice(ctx, userID, usecase.AddDeviceInput{
		Name: "書房助手",
		MAC:  "AA:BB:CC:DD:EE",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDeviceMACInvalid)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	assert.Equal(t, 0, fx.snapshots.Devices.Len(userID))
}

func TestDeviceService_UpdateDevice_PartialFields(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{ID: deviceID, UserID: userID, Name: "客廳助手", Description: "原本的描述"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockDeviceRepo.EXPECT().
				UpdateDeviceFields(ctx, deviceID, mock.AnythingOfType("map[string]interface {}")).
				Run(func(ctx context.Context, id uuid.UUID, fields map[string]any) {
					assert.Equal(t, "門廊助手", fields["name"])
					assert.NotContains(t, fields, "description")
					assert.NotContains(t, fields, "category")
				}).
				Return(nil)
			mockDeviceRepo.EXPECT().
				AppendConfigLog(ctx, mock.AnythingOfType("*entity.ConfigLogEntry")).
				Return(nil)

			return fn(mockFactory)
		})
	fx.eventPublisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(nil)

	device, err := fx.service.UpdateDevice(ctx, userID, deviceID, usecase.UpdateDeviceInput{Name: strPtr("門廊助手")})

	require.NoError(t, err)
	assert.Equal(t, "門廊助手", device.Name)
	assert.Equal(t, "原本的描述", device.Description)
}

func TestDeviceService_UpdateDevice_NoChanges(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{ID: deviceID, UserID: userID, Name: "客廳助手"}, nil)

	device, err := fx.service.UpdateDevice(ctx, userID, deviceID, usecase.UpdateDeviceInput{Name: strPtr("客廳助手")})

	require.NoError(t, err)
	assert.Equal(t, "客廳助手", device.Name)
}

func TestDeviceService_DeleteDevices_SkipsUnknownIDs(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	owned := &entity.Device{ID: uuid.New(), UserID: userID, Name: "客廳助手"}
	unknown := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.Device{owned}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockSkillRepo := mockRepo.NewMockSkillRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewSkillRepository().Return(mockSkillRepo)

			mockSkillRepo.EXPECT().
				DeleteInstalledSkillsByDevices(ctx, []uuid.UUID{owned.ID}).
				Return(nil)
			mockDeviceRepo.EXPECT().
				DeleteDevices(ctx, []uuid.UUID{owned.ID}).
				Return(nil)

			return fn(mockFactory)
		})
	fx.eventPublisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(nil)

	// The owned ID twice plus an unknown one: two requested, one deleted.
	output, err := fx.service.DeleteDevices(ctx, userID, []uuid.UUID{owned.ID, owned.ID, unknown})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Requested)
	assert.Equal(t, 1, output.Deleted)
}

func TestDeviceService_DeleteDevices_NothingOwned(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)

	output, err := fx.service.DeleteDevices(ctx, userID, []uuid.UUID{uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Requested)
	assert.Equal(t, 0, output.Deleted)
}

func TestDeviceService_ExportDevicesCSV(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.Device{
			{ID: uuid.New(), UserID: userID, Name: "客廳助手", MAC: "AA:BB:CC:DD:EE:01", Status: entity.DeviceStatusOnline, Category: entity.DeviceCategoryPersonal, IP: "192.168.1.101", CPU: 32, Memory: 58, Disk: 41, CreatedAt: now, LastActiveAt: now},
			{ID: uuid.New(), UserID: userID, Name: "臥室助手", MAC: "AA:BB:CC:DD:EE:04", Status: entity.DeviceStatusOffline, Category: entity.DeviceCategoryPersonal, CreatedAt: now, LastActiveAt: now},
		}, nil)

	raw, err := fx.service.ExportDevicesCSV(ctx, userID)

	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "名稱", records[0][0])
	assert.Equal(t, "客廳助手", records[1][0])
	assert.Equal(t, "AA:BB:CC:DD:EE:04", records[2][1])
}

func TestDeviceService_GeneratePairingQR(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
	fx.qrcodeService.EXPECT().
		GeneratePairingQR(deviceID).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.GeneratePairingQR(ctx, userID, deviceID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestDeviceService_GetDevice_FromSnapshot(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{ID: uuid.New(), UserID: userID, Name: "客廳助手"}

	generation := fx.snapshots.Devices.Begin(userID)
	fx.snapshots.Devices.Replace(userID, generation, []*entity.Device{device})

	fx.deviceRepo.EXPECT().
		FindConfigLogsByDevice(ctx, device.ID).
		Return([]*entity.ConfigLogEntry{
			{ID: uuid.New(), DeviceID: device.ID, Summary: "啟用靜音模式", ChangedAt: time.Now()},
		}, nil)

	got, err := fx.service.GetDevice(ctx, userID, device.ID)

	require.NoError(t, err)
	assert.Equal(t, device.ID, got.ID)
	require.Len(t, got.ConfigHistory, 1)
	assert.Equal(t, "啟用靜音模式", got.ConfigHistory[0].Summary)
}
