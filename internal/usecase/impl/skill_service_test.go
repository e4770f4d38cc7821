package impl

import (
	"context"
	"testing"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	mockRepo "clawdeck/internal/mocks/repository"
	mockSvc "clawdeck/internal/mocks/service"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// skillServiceFixtures holds all test dependencies for skill service tests.
type skillServiceFixtures struct {
	service        usecase.SkillUsecase
	txManager      *mockRepo.MockTransactionManager
	skillRepo      *mockRepo.MockSkillRepository
	deviceRepo     *mockRepo.MockDeviceRepository
	eventPublisher *mockSvc.MockEventPublisher
	snapshots      *Snapshots
}

func createTestSkillService(t *testing.T) skillServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	skillRepo := mockRepo.NewMockSkillRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	snapshots := NewSnapshots()

	service := NewSkillService(SkillServiceParams{
		TxManager:      txManager,
		SkillRepo:      skillRepo,
		DeviceRepo:     deviceRepo,
		EventPublisher: eventPublisher,
		Snapshots:      snapshots,
		Logger:         newDiscardLogger(),
	})

	return skillServiceFixtures{
		service:        service,
		txManager:      txManager,
		skillRepo:      skillRepo,
		deviceRepo:     deviceRepo,
		eventPublisher: eventPublisher,
		snapshots:      snapshots,
	}
}

func TestSkillService_ListMarketSkills_CachesCatalog(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	catalog := []*entity.MarketSkill{
		{ID: "s1", Name: "天氣查詢", Version: "v1.3"},
		{ID: "s2", Name: "音樂播放", Version: "v2.0"},
	}

	fx.skillRepo.EXPECT().FindMarketSkills(ctx).Return(catalog, nil).Once()

	first, err := fx.service.ListMarketSkills(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// The second call is served from the snapshot without another fetch.
	second, err := fx.service.ListMarketSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestSkillService_GetMarketSkill_NotFound(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()

	fx.skillRepo.EXPECT().
		FindMarketSkillByID(ctx, "missing").
		Return(nil, repository.ErrMarketSkillNotFound)

	_, err := fx.service.GetMarketSkill(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrSkillNotFound)
}

func TestSkillService_InstallSkill_SkipsAlreadyInstalled(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceA := uuid.New()
	deviceB := uuid.New()
	catalog := &entity.MarketSkill{
		ID: "s1", Name: "天氣查詢", Version: "v1.3",
		ConfigSchema: []entity.ConfigField{
			{Key: "city", Label: "預設城市", Type: entity.ConfigFieldText, DefaultValue: "台北"},
		},
	}

	fx.skillRepo.EXPECT().FindMarketSkillByID(ctx, "s1").Return(catalog, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockSkillRepo := mockRepo.NewMockSkillRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewSkillRepository().Return(mockSkillRepo)

			mockDeviceRepo.EXPECT().
				FindDeviceByID(ctx, deviceA).
				Return(&entity.Device{ID: deviceA, UserID: userID}, nil)
			mockDeviceRepo.EXPECT().
				FindDeviceByID(ctx, deviceB).
				Return(&entity.Device{ID: deviceB, UserID: userID}, nil)

			// Device A already runs the skill, device B does not.
			mockSkillRepo.EXPECT().
				FindInstalledSkill(ctx, userID, "s1", deviceA).
				Return(&entity.InstalledSkill{ID: uuid.New()}, nil)
			mockSkillRepo.EXPECT().
				FindInstalledSkill(ctx, userID, "s1", deviceB).
				Return(nil, repository.ErrInstalledSkillNotFound)

			mockSkillRepo.EXPECT().
				CreateInstalledSkill(ctx, mock.AnythingOfType("*entity.InstalledSkill")).
				Run(func(ctx context.Context, install *entity.InstalledSkill) {
					assert.Equal(t, deviceB, install.DeviceID)
					assert.True(t, install.Enabled)
					assert.Equal(t, "v1.3", install.Version)
					assert.Equal(t, "台北", install.Config["city"])
				}).
				Return(nil)

			return fn(mockFactory)
		})
	fx.eventPublisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(nil)

	output, err := fx.service.InstallSkill(ctx, userID, usecase.InstallSkillInput{
		SkillID:   "s1",
		DeviceIDs: []uuid.UUID{deviceA, deviceB},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Requested)
	assert.Equal(t, 1, output.Installed)
	require.Len(t, output.Skills, 1)
	assert.Equal(t, deviceB, output.Skills[0].DeviceID)
}

func TestSkillService_InstallSkill_NoDevices(t *testing.T) {
	fx := createTestSkillService(t)

	_, err := fx.service.InstallSkill(context.Background(), uuid.New(), usecase.InstallSkillInput{
		SkillID: "s1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSkillService_InstallSkill_ForeignDevice(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.skillRepo.EXPECT().
		FindMarketSkillByID(ctx, "s1").
		Return(&entity.MarketSkill{ID: "s1", Name: "天氣查詢", Version: "v1.3"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewSkillRepository().Return(mockRepo.NewMockSkillRepository(t))

			mockDeviceRepo.EXPECT().
				FindDeviceByID(ctx, deviceID).
				Return(&entity.Device{ID: deviceID, UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.InstallSkill(ctx, userID, usecase.InstallSkillInput{
		SkillID:   "s1",
		DeviceIDs: []uuid.UUID{deviceID},
	})

	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestSkillService_UninstallSkill_Success(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	userID := uuid.New()
	installedID := uuid.New()
	install := &entity.InstalledSkill{ID: installedID, UserID: userID, DeviceID: uuid.New(), SkillName: "天氣查詢"}

	fx.snapshots.InstalledSkills.Put(userID, install)

	fx.skillRepo.EXPECT().FindInstalledSkillByID(ctx, installedID).Return(install, nil)
	fx.skillRepo.EXPECT().DeleteInstalledSkill(ctx, installedID).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(nil)

	err := fx.service.UninstallSkill(ctx, userID, installedID)

	require.NoError(t, err)
	_, ok := fx.snapshots.InstalledSkills.Get(userID, installedID.String())
	assert.False(t, ok)
}

func TestSkillService_UninstallSkill_NotOwned(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	installedID := uuid.New()

	fx.skillRepo.EXPECT().
		FindInstalledSkillByID(ctx, installedID).
		Return(&entity.InstalledSkill{ID: installedID, UserID: uuid.New()}, nil)

	err := fx.service.UninstallSkill(ctx, uuid.New(), installedID)

	assert.ErrorIs(t, err, domainerrors.ErrSkillNotInstalled)
}

func TestSkillService_ToggleSkill_Disables(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	userID := uuid.New()
	installedID := uuid.New()

	fx.skillRepo.EXPECT().
		FindInstalledSkillByID(ctx, installedID).
		Return(&entity.InstalledSkill{ID: installedID, UserID: userID, DeviceID: uuid.New(), Enabled: true}, nil)
	fx.skillRepo.EXPECT().
		UpdateInstalledSkillFields(ctx, installedID, map[string]any{"enabled": false}).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(nil)

	install, err := fx.service.ToggleSkill(ctx, userID, installedID, false)

	require.NoError(t, err)
	assert.False(t, install.Enabled)
}

func TestSkillService_ToggleSkill_AlreadyInState(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	userID := uuid.New()
	installedID := uuid.New()

	fx.skillRepo.EXPECT().
		FindInstalledSkillByID(ctx, installedID).
		Return(&entity.InstalledSkill{ID: installedID, UserID: userID, Enabled: true}, nil)

	// Toggling to the current state touches nothing.
	install, err := fx.service.ToggleSkill(ctx, userID, installedID, true)

	require.NoError(t, err)
	assert.True(t, install.Enabled)
}

func TestSkillService_UpdateSkillConfig_MergesValues(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	userID := uuid.New()
	installedID := uuid.New()

	fx.skillRepo.EXPECT().
		FindInstalledSkillByID(ctx, installedID).
		Return(&entity.InstalledSkill{
			ID:     installedID,
			UserID: userID,
			Config: map[string]any{"city": "台北", "interval": 60},
		}, nil)
	fx.skillRepo.EXPECT().
		UpdateInstalledSkillFields(ctx, installedID, mock.AnythingOfType("map[string]interface {}")).
		Return(nil)

	install, err := fx.service.UpdateSkillConfig(ctx, userID, installedID, usecase.UpdateSkillConfigInput{
		Config: map[string]any{"city": "高雄"},
	})

	require.NoError(t, err)
	assert.Equal(t, "高雄", install.Config["city"])
	assert.Equal(t, 60, install.Config["interval"])
}
