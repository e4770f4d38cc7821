package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"clawdeck/internal/domain/entity"
	mockUsecase "clawdeck/internal/mocks/usecase"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bootstrapServiceFixtures holds all test dependencies for bootstrap service tests.
type bootstrapServiceFixtures struct {
	service         usecase.BootstrapUsecase
	seedUsecase     *mockUsecase.MockSeedUsecase
	deviceUsecase   *mockUsecase.MockDeviceUsecase
	skillUsecase    *mockUsecase.MockSkillUsecase
	billingUsecase  *mockUsecase.MockBillingUsecase
	settingsUsecase *mockUsecase.MockSettingsUsecase
	snapshots       *Snapshots
}

func createTestBootstrapService(t *testing.T) bootstrapServiceFixtures {
	seedUsecase := mockUsecase.NewMockSeedUsecase(t)
	deviceUsecase := mockUsecase.NewMockDeviceUsecase(t)
	skillUsecase := mockUsecase.NewMockSkillUsecase(t)
	billingUsecase := mockUsecase.NewMockBillingUsecase(t)
	settingsUsecase := mockUsecase.NewMockSettingsUsecase(t)
	snapshots := NewSnapshots()

	service := NewBootstrapService(BootstrapServiceParams{
		SeedUsecase:     seedUsecase,
		DeviceUsecase:   deviceUsecase,
		SkillUsecase:    skillUsecase,
		BillingUsecase:  billingUsecase,
		SettingsUsecase: settingsUsecase,
		Snapshots:       snapshots,
		Logger:          newDiscardLogger(),
	})

	return bootstrapServiceFixtures{
		service:         service,
		seedUsecase:     seedUsecase,
		deviceUsecase:   deviceUsecase,
		skillUsecase:    skillUsecase,
		billingUsecase:  billingUsecase,
		settingsUsecase: settingsUsecase,
		snapshots:       snapshots,
	}
}

func (fx bootstrapServiceFixtures) expectFullInit(userID uuid.UUID, seeded bool) {
	fx.seedUsecase.EXPECT().
		EnsureSeeded(mock.Anything, userID).
		Return(seeded, nil).
		Once()
	fx.deviceUsecase.EXPECT().
		ListDevices(mock.Anything, userID).
		Return([]*entity.Device{{ID: uuid.New(), UserID: userID, Name: "客廳助手"}}, nil).
		Once()
	fx.skillUsecase.EXPECT().
		ListInstalledSkills(mock.Anything, userID).
		Return([]*entity.InstalledSkill{{ID: uuid.New(), UserID: userID, SkillName: "天氣查詢"}}, nil).
		Once()
	fx.billingUsecase.EXPECT().
		GetOverview(mock.Anything, userID).
		Return(&usecase.BillingOverview{
			Account: &entity.BillingAccount{UserID: userID, Balance: 128.50, CurrentPlan: "p2"},
			Plans:   []*entity.Plan{{ID: "p2", Name: "基礎版"}},
		}, nil).
		Once()
	fx.billingUsecase.EXPECT().
		ListTransactions(mock.Anything, userID).
		Return([]*entity.Transaction{{ID: uuid.New(), UserID: userID}}, nil).
		Once()
	fx.billingUsecase.EXPECT().
		ListBills(mock.Anything, userID).
		Return([]*entity.Bill{{ID: uuid.New(), UserID: userID, Month: "2026-02"}}, nil).
		Once()
	fx.settingsUsecase.EXPECT().
		GetSettings(mock.Anything, userID).
		Return(&entity.UserSettings{UserID: userID, Language: "zh-TW"}, nil).
		Once()
}

func TestBootstrapService_InitSession_LoadsEverything(t *testing.T) {
	fx := createTestBootstrapService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectFullInit(userID, true)

	output, err := fx.service.InitSession(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.Seeded)
	assert.Len(t, output.Devices, 1)
	assert.Len(t, output.InstalledSkills, 1)
	assert.InDelta(t, 128.50, output.Account.Balance, 0.001)
	assert.Len(t, output.Plans, 1)
	assert.Len(t, output.Transactions, 1)
	assert.Len(t, output.Bills, 1)
	assert.Equal(t, "zh-TW", output.Settings.Language)
}

func TestBootstrapService_InitSession_SecondCallIsCached(t *testing.T) {
	fx := createTestBootstrapService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Every fetch is expected exactly once.
	fx.seedUsecase.EXPECT().EnsureSeeded(mock.Anything, userID).Return(false, nil).Once()
	fx.deviceUsecase.EXPECT().ListDevices(mock.Anything, userID).Return(nil, nil).Once()
	fx.skillUsecase.EXPECT().ListInstalledSkills(mock.Anything, userID).Return(nil, nil).Once()
	fx.billingUsecase.EXPECT().
		GetOverview(mock.Anything, userID).
		Return(&usecase.BillingOverview{Account: &entity.BillingAccount{UserID: userID}}, nil).
		Once()
	fx.billingUsecase.EXPECT().ListTransactions(mock.Anything, userID).Return(nil, nil).Once()
	fx.billingUsecase.EXPECT().ListBills(mock.Anything, userID).Return(nil, nil).Once()
	fx.settingsUsecase.EXPECT().
		GetSettings(mock.Anything, userID).
		Return(&entity.UserSettings{UserID: userID}, nil).
		Once()

	first, err := fx.service.InitSession(ctx, userID)
	require.NoError(t, err)

	second, err := fx.service.InitSession(ctx, userID)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestBootstrapService_InitSession_ConcurrentCallsShareOneRun(t *testing.T) {
	fx := createTestBootstrapService(t)

	ctx := context.Background()
	userID := uuid.New()

	var seedCalls atomic.Int32
	fx.seedUsecase.EXPECT().
		EnsureSeeded(mock.Anything, userID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (bool, error) {
			seedCalls.Add(1)
			return false, nil
		})
	fx.deviceUsecase.EXPECT().ListDevices(mock.Anything, userID).Return(nil, nil)
	fx.skillUsecase.EXPECT().ListInstalledSkills(mock.Anything, userID).Return(nil, nil)
	fx.billingUsecase.EXPECT().
		GetOverview(mock.Anything, userID).
		Return(&usecase.BillingOverview{Account: &entity.BillingAccount{UserID: userID}}, nil)
	fx.billingUsecase.EXPECT().ListTransactions(mock.Anything, userID).Return(nil, nil)
	fx.billingUsecase.EXPECT().ListBills(mock.Anything, userID).Return(nil, nil)
	fx.settingsUsecase.EXPECT().
		GetSettings(mock.Anything, userID).
		Return(&entity.UserSettings{UserID: userID}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.InitSession(ctx, userID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), seedCalls.Load())
}

func TestBootstrapService_InitSession_FetchFailure(t *testing.T) {
	fx := createTestBootstrapService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.seedUsecase.EXPECT().EnsureSeeded(mock.Anything, userID).Return(false, nil)
	fx.deviceUsecase.EXPECT().ListDevices(mock.Anything, userID).Return(nil, assert.AnError)
	fx.skillUsecase.EXPECT().ListInstalledSkills(mock.Anything, userID).Return(nil, nil).Maybe()
	fx.billingUsecase.EXPECT().
		GetOverview(mock.Anything, userID).
		Return(&usecase.BillingOverview{Account: &entity.BillingAccount{UserID: userID}}, nil).
		Maybe()
	fx.billingUsecase.EXPECT().ListTransactions(mock.Anything, userID).Return(nil, nil).Maybe()
	fx.billingUsecase.EXPECT().ListBills(mock.Anything, userID).Return(nil, nil).Maybe()
	fx.settingsUsecase.EXPECT().GetSettings(mock.Anything, userID).Return(nil, nil).Maybe()

	_, err := fx.service.InitSession(ctx, userID)

	require.Error(t, err)

	// A failed run leaves no cached session behind.
	_, ok := fx.snapshots.Sessions.Get(userID)
	assert.False(t, ok)
}

func TestBootstrapService_ResetSession_ForcesFullReload(t *testing.T) {
	fx := createTestBootstrapService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectFullInit(userID, true)

	_, err := fx.service.InitSession(ctx, userID)
	require.NoError(t, err)
	_, ok := fx.snapshots.Sessions.Get(userID)
	require.True(t, ok)

	fx.service.ResetSession(userID)

	_, ok = fx.snapshots.Sessions.Get(userID)
	assert.False(t, ok)

	// The next init runs in full again.
	fx.expectFullInit(userID, false)
	output, err := fx.service.InitSession(ctx, userID)
	require.NoError(t, err)
	assert.False(t, output.Seeded)
}
