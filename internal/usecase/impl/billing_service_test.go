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
	mockRepo "clawdeck/internal/mocks/repository"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// billingServiceFixtures holds all test dependencies for billing service tests.
type billingServiceFixtures struct {
	service     usecase.BillingUsecase
	txManager   *mockRepo.MockTransactionManager
	billingRepo *mockRepo.MockBillingRepository
	snapshots   *Snapshots
}

func createTestBillingService(t *testing.T) billingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	billingRepo := mockRepo.NewMockBillingRepository(t)
	snapshots := NewSnapshots()

	service := NewBillingService(BillingServiceParams{
		TxManager:   txManager,
		BillingRepo: billingRepo,
		Snapshots:   snapshots,
		Logger:      newDiscardLogger(),
	})

	return billingServiceFixtures{
		service:     service,
		txManager:   txManager,
		billingRepo: billingRepo,
		snapshots:   snapshots,
	}
}

func TestBillingService_GetOverview_Success(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.billingRepo.EXPECT().
		FindBillingAccount(ctx, userID).
		Return(&entity.BillingAccount{UserID: userID, Balance: 128.50, CurrentPlan: "p2"}, nil)
	fx.billingRepo.EXPECT().
		FindPlans(ctx).
		Return([]*entity.Plan{{ID: "p1", Name: "免費方案"}, {ID: "p2", Name: "標準方案", Price: 19.90}}, nil)

	overview, err := fx.service.GetOverview(ctx, userID)

	require.NoError(t, err)
	assert.InDelta(t, 128.50, overview.Account.Balance, 0.001)
	assert.Len(t, overview.Plans, 2)
}

func TestBillingService_GetOverview_NoAccount(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.billingRepo.EXPECT().
		FindBillingAccount(ctx, userID).
		Return(nil, repository.ErrBillingAccountNotFound)

	_, err := fx.service.GetOverview(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrBillingAccountNotFound)
}

func TestBillingService_Recharge_Success(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBillingRepo := mockRepo.NewMockBillingRepository(t)

			mockFactory.EXPECT().NewBillingRepository().Return(mockBillingRepo)

			mockBillingRepo.EXPECT().
				FindBillingAccountForUpdate(ctx, userID).
				Return(&entity.BillingAccount{UserID: userID, Balance: 128.50, CurrentPlan: "p2"}, nil)
			mockBillingRepo.EXPECT().
				UpdateBillingAccount(ctx, mock.AnythingOfType("*entity.BillingAccount")).
				Run(func(ctx context.Context, account *entity.BillingAccount) {
					assert.InDelta(t, 178.50, account.Balance, 0.001)
				}).
				Return(nil)
			mockBillingRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
				Run(func(ctx context.Context, tx *entity.Transaction) {
					assert.Equal(t, entity.TransactionTypeRecharge, tx.Type)
					assert.InDelta(t, 50.0, tx.Amount, 0.001)
					// The ledger entry carries the same balance as the account.
					assert.InDelta(t, 178.50, tx.Balance, 0.001)
					assert.Equal(t, entity.TransactionStatusSuccess, tx.Status)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	account, err := fx.service.Recharge(ctx, userID, usecase.RechargeInput{Amount: 50})

	require.NoError(t, err)
	assert.InDelta(t, 178.50, account.Balance, 0.001)

	cached, ok := fx.snapshots.Accounts.Get(userID)
	require.True(t, ok)
	assert.InDelta(t, 178.50, cached.Balance, 0.001)
	assert.Len(t, fx.snapshots.Transactions.List(userID), 1)
}

func TestBillingService_Recharge_InvalidAmount(t *testing.T) {
	fx := createTestBillingService(t)

	for _, amount := range []float64{0, -10} {
		_, err := fx.service.Recharge(context.Background(), uuid.New(), usecase.RechargeInput{Amount: amount})
		assert.ErrorIs(t, err, domainerrors.ErrRechargeAmountInvalid)
	}
}

func TestBillingService_Recharge_SequentialSnapshotsIncrease(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	balance := 100.0
	ledger := []float64{}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBillingRepo := mockRepo.NewMockBillingRepository(t)

			mockFactory.EXPECT().NewBillingRepository().Return(mockBillingRepo)

			mockBillingRepo.EXPECT().
				FindBillingAccountForUpdate(ctx, userID).
				RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.BillingAccount, error) {
					return &entity.BillingAccount{UserID: id, Balance: balance, CurrentPlan: "p2"}, nil
				})
			mockBillingRepo.EXPECT().
				UpdateBillingAccount(ctx, mock.AnythingOfType("*entity.BillingAccount")).
				RunAndReturn(func(ctx context.Context, account *entity.BillingAccount) error {
					balance = account.Balance
					return nil
				})
			mockBillingRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
				RunAndReturn(func(ctx context.Context, tx *entity.Transaction) error {
					ledger = append(ledger, tx.Balance)
					return nil
				})

			return fn(mockFactory)
		}).
		Times(2)

	first, err := fx.service.Recharge(ctx, userID, usecase.RechargeInput{Amount: 50})
	require.NoError(t, err)
	second, err := fx.service.Recharge(ctx, userID, usecase.RechargeInput{Amount: 100})
	require.NoError(t, err)

	assert.InDelta(t, 150.0, first.Balance, 0.001)
	assert.InDelta(t, 250.0, second.Balance, 0.001)

	// Each ledger entry carries the balance of its own recharge, strictly
	// increasing by the recharged amounts.
	require.Len(t, ledger, 2)
	assert.InDelta(t, 150.0, ledger[0], 0.001)
	assert.InDelta(t, 250.0, ledger[1], 0.001)
	assert.Len(t, fx.snapshots.Transactions.List(userID), 2)
}

func TestBillingService_ChangePlan_Success(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.billingRepo.EXPECT().
		FindPlanByID(ctx, "p3").
		Return(&entity.Plan{ID: "p3", Name: "專業方案", Price: 49.90}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBillingRepo := mockRepo.NewMockBillingRepository(t)

			mockFactory.EXPECT().NewBillingRepository().Return(mockBillingRepo)

			mockBillingRepo.EXPECT().
				FindBillingAccountForUpdate(ctx, userID).
				Return(&entity.BillingAccount{UserID: userID, Balance: 128.50, CurrentPlan: "p2"}, nil)
			mockBillingRepo.EXPECT().
				UpdateBillingAccount(ctx, mock.AnythingOfType("*entity.BillingAccount")).
				Run(func(ctx context.Context, account *entity.BillingAccount) {
					assert.Equal(t, "p3", account.CurrentPlan)
					assert.InDelta(t, 78.60, account.Balance, 0.001)
				}).
				Return(nil)
			mockBillingRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
				Run(func(ctx context.Context, tx *entity.Transaction) {
					assert.InDelta(t, -49.90, tx.Amount, 0.001)
					assert.InDelta(t, 78.60, tx.Balance, 0.001)
				}).
				Return(nil)

			return fn(mockFactory)
		})
	fx.billingRepo.EXPECT().
		FindAlertSetting(ctx, userID).
		Return(&entity.AlertSetting{UserID: userID, BalanceThreshold: 20}, nil)

	account, err := fx.service.ChangePlan(ctx, userID, "p3")

	require.NoError(t, err)
	assert.Equal(t, "p3", account.CurrentPlan)
}

func TestBillingService_ChangePlan_SamePlan(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.billingRepo.EXPECT().
		FindPlanByID(ctx, "p2").
		Return(&entity.Plan{ID: "p2", Name: "標準方案", Price: 19.90}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBillingRepo := mockRepo.NewMockBillingRepository(t)

			mockFactory.EXPECT().NewBillingRepository().Return(mockBillingRepo)

			// The current plan already matches, nothing is written.
			mockBillingRepo.EXPECT().
				FindBillingAccountForUpdate(ctx, userID).
				Return(&entity.BillingAccount{UserID: userID, Balance: 128.50, CurrentPlan: "p2"}, nil)

			return fn(mockFactory)
		})
	fx.billingRepo.EXPECT().
		FindAlertSetting(ctx, userID).
		Return(&entity.AlertSetting{UserID: userID, BalanceThreshold: 20}, nil)

	account, err := fx.service.ChangePlan(ctx, userID, "p2")

	require.NoError(t, err)
	assert.InDelta(t, 128.50, account.Balance, 0.001)
}

func TestBillingService_ChangePlan_InsufficientBalance(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.billingRepo.EXPECT().
		FindPlanByID(ctx, "p3").
		Return(&entity.Plan{ID: "p3", Name: "專業方案", Price: 49.90}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBillingRepo := mockRepo.NewMockBillingRepository(t)

			mockFactory.EXPECT().NewBillingRepository().Return(mockBillingRepo)

			mockBillingRepo.EXPECT().
				FindBillingAccountForUpdate(ctx, userID).
				Return(&entity.BillingAccount{UserID: userID, Balance: 10, CurrentPlan: "p1"}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.ChangePlan(ctx, userID, "p3")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBillingService_ChangePlan_UnknownPlan(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()

	fx.billingRepo.EXPECT().
		FindPlanByID(ctx, "p99").
		Return(nil, repository.ErrPlanNotFound)

	_, err := fx.service.ChangePlan(ctx, uuid.New(), "p99")

	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}

func TestBillingService_GetAlertSetting_DefaultsWhenMissing(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.billingRepo.EXPECT().
		FindAlertSetting(ctx, userID).
		Return(nil, repository.ErrAlertSettingNotFound)

	setting, err := fx.service.GetAlertSetting(ctx, userID)

	require.NoError(t, err)
	assert.InDelta(t, 100.0, setting.BalanceThreshold, 0.001)
	assert.True(t, setting.NotifyEmail)
	assert.True(t, setting.NotifyInApp)
	assert.False(t, setting.NotifySMS)
}

func TestBillingService_SaveAlertSetting_Success(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.billingRepo.EXPECT().
		SaveAlertSetting(ctx, mock.AnythingOfType("*entity.AlertSetting")).
		Run(func(ctx context.Context, setting *entity.AlertSetting) {
			assert.Equal(t, userID, setting.UserID)
			assert.InDelta(t, 50.0, setting.BalanceThreshold, 0.001)
		}).
		Return(nil)

	setting, err := fx.service.SaveAlertSetting(ctx, userID, usecase.AlertSettingInput{
		BalanceThreshold: 50,
		UsageThreshold:   90,
		NotifyEmail:      true,
	})

	require.NoError(t, err)
	cached, ok := fx.snapshots.AlertSettings.Get(userID)
	require.True(t, ok)
	assert.Equal(t, setting, cached)
}

func TestBillingService_ExportTransactionsCSV(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.billingRepo.EXPECT().
		FindTransactionsByUser(ctx, userID).
		Return([]*entity.Transaction{
			{ID: uuid.New(), UserID: userID, Type: entity.TransactionTypeRecharge, Description: "帳戶儲值", Amount: 50, Balance: 178.50, Status: entity.TransactionStatusSuccess, OccurredAt: time.Now()},
		}, nil)

	raw, err := fx.service.ExportTransactionsCSV(ctx, userID)

	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "時間", records[0][0])
	assert.Equal(t, "帳戶儲值", records[1][2])
	assert.Equal(t, "178.50", records[1][4])
}

func TestBillingService_ListBills_ReplacesSnapshot(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.billingRepo.EXPECT().
		FindBillsByUser(ctx, userID).
		Return([]*entity.Bill{
			{ID: uuid.New(), UserID: userID, Month: "2026-02", Total: 18.00, Status: entity.BillStatusUnpaid},
			{ID: uuid.New(), UserID: userID, Month: "2026-01", Total: 42.85, Status: entity.BillStatusPaid},
		}, nil)

	bills, err := fx.service.ListBills(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, bills, 2)
	assert.Len(t, fx.snapshots.Bills.List(userID), 2)
}
