package impl

import (
	"context"
	"testing"

	"clawdeck/internal/domain/entity"
	"clawdeck/internal/domain/repository"
	mockRepo "clawdeck/internal/mocks/repository"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seedServiceFixtures holds all test dependencies for seed service tests.
type seedServiceFixtures struct {
	service      usecase.SeedUsecase
	txManager    *mockRepo.MockTransactionManager
	settingsRepo *mockRepo.MockSettingsRepository
}

func createTestSeedService(t *testing.T) seedServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)

	service := NewSeedService(SeedServiceParams{
		TxManager:    txManager,
		SettingsRepo: settingsRepo,
		Logger:       newDiscardLogger(),
	})

	return seedServiceFixtures{
		service:      service,
		txManager:    txManager,
		settingsRepo: settingsRepo,
	}
}

func TestSeedService_EnsureSeeded_AlreadySeeded(t *testing.T) {
	fx := createTestSeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	// The marker row exists, so no transaction runs at all.
	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, userID).
		Return(&entity.UserSettings{UserID: userID}, nil)

	seeded, err := fx.service.EnsureSeeded(ctx, userID)

	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestSeedService_EnsureSeeded_FirstLogin(t *testing.T) {
	fx := createTestSeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, userID).
		Return(nil, repository.ErrSettingsNotFound)

	var markerWritten bool
	var devicesCreated int
	var installsCreated int

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
			mockBillingRepo := mockRepo.NewMockBillingRepository(t)
			mockSkillRepo := mockRepo.NewMockSkillRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewSettingsRepository().Return(mockSettingsRepo)
			mockFactory.EXPECT().NewBillingRepository().Return(mockBillingRepo)
			mockFactory.EXPECT().NewSkillRepository().Return(mockSkillRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockSettingsRepo.EXPECT().
				FindUserSettings(ctx, userID).
				Return(nil, repository.ErrSettingsNotFound)

			mockBillingRepo.EXPECT().
				UpsertPlans(ctx, mock.AnythingOfType("[]*entity.Plan")).
				Run(func(ctx context.Context, plans []*entity.Plan) {
					assert.Len(t, plans, 4)
				}).
				Return(nil)
			mockSkillRepo.EXPECT().
				UpsertMarketSkills(ctx, mock.AnythingOfType("[]*entity.MarketSkill")).
				Run(func(ctx context.Context, skills []*entity.MarketSkill) {
					assert.Len(t, skills, 12)
				}).
				Return(nil)

			mockDeviceRepo.EXPECT().
				CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
				Run(func(ctx context.Context, device *entity.Device) {
					devicesCreated++
					assert.Equal(t, userID, device.UserID)
				}).
				Return(nil)
			mockDeviceRepo.EXPECT().
				AppendConfigLog(ctx, mock.AnythingOfType("*entity.ConfigLogEntry")).
				Return(nil)
			mockSkillRepo.EXPECT().
				CreateInstalledSkill(ctx, mock.AnythingOfType("*entity.InstalledSkill")).
				Run(func(ctx context.Context, install *entity.InstalledSkill) {
					installsCreated++
					assert.True(t, install.Enabled)
				}).
				Return(nil)

			mockBillingRepo.EXPECT().
				CreateBillingAccount(ctx, mock.AnythingOfType("*entity.BillingAccount")).
				Run(func(ctx context.Context, account *entity.BillingAccount) {
					assert.InDelta(t, 128.50, account.Balance, 0.001)
					assert.Equal(t, "p2", account.CurrentPlan)
				}).
				Return(nil)
			mockBillingRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
				Return(nil).
				Times(5)
			mockBillingRepo.EXPECT().
				CreateBill(ctx, mock.AnythingOfType("*entity.Bill")).
				Return(nil).
				Times(4)
			mockBillingRepo.EXPECT().
				SaveAlertSetting(ctx, mock.AnythingOfType("*entity.AlertSetting")).
				Return(nil)

			mockSettingsRepo.EXPECT().
				CreateUserSettings(ctx, mock.AnythingOfType("*entity.UserSettings")).
				Run(func(ctx context.Context, settings *entity.UserSettings) {
					markerWritten = true
					assert.Equal(t, "zh-TW", settings.Language)
					assert.Equal(t, "Asia/Taipei", settings.Timezone)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	seeded, err := fx.service.EnsureSeeded(ctx, userID)

	require.NoError(t, err)
	assert.True(t, seeded)
	assert.True(t, markerWritten)
	assert.Equal(t, 4, devicesCreated)
	assert.Equal(t, 10, installsCreated)
}

func TestSeedService_EnsureSeeded_ConcurrentLoginWon(t *testing.T) {
	fx := createTestSeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, userID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().NewSettingsRepository().Return(mockSettingsRepo)

			// The marker appeared between the fast path and the transaction.
			mockSettingsRepo.EXPECT().
				FindUserSettings(ctx, userID).
				Return(&entity.UserSettings{UserID: userID}, nil)

			return fn(mockFactory)
		})

	seeded, err := fx.service.EnsureSeeded(ctx, userID)

	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestSeedService_EnsureSeeded_DeviceFailureAborts(t *testing.T) {
	fx := createTestSeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, userID).
		Return(nil, repository.ErrSettingsNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
			mockBillingRepo := mockRepo.NewMockBillingRepository(t)
			mockSkillRepo := mockRepo.NewMockSkillRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewSettingsRepository().Return(mockSettingsRepo)
			mockFactory.EXPECT().NewBillingRepository().Return(mockBillingRepo)
			mockFactory.EXPECT().NewSkillRepository().Return(mockSkillRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockSettingsRepo.EXPECT().
				FindUserSettings(ctx, userID).
				Return(nil, repository.ErrSettingsNotFound)
			mockBillingRepo.EXPECT().
				UpsertPlans(ctx, mock.AnythingOfType("[]*entity.Plan")).
				Return(nil)
			mockSkillRepo.EXPECT().
				UpsertMarketSkills(ctx, mock.AnythingOfType("[]*entity.MarketSkill")).
				Return(nil)
			mockDeviceRepo.EXPECT().
				CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
				Return(assert.AnError).
				Once()

			// The marker must not be written when anything before it failed.
			return fn(mockFactory)
		})

	seeded, err := fx.service.EnsureSeeded(ctx, userID)

	require.Error(t, err)
	assert.False(t, seeded)
}
