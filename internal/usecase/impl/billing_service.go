package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "clawdeck/internal/delivery/context"
	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// billingService implements the BillingUsecase interface.
type billingService struct {
	txManager   repository.TransactionManager
	billingRepo repository.BillingRepository
	snapshots   *Snapshots
	logger      *slog.Logger
}

// BillingServiceParams holds dependencies for billingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BillingRepo repository.BillingRepository
	Snapshots   *Snapshots
	Logger      *slog.Logger
}

// NewBillingService is the constructor for billingService.
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	return &billingService{
		txManager:   params.TxManager,
		billingRepo: params.BillingRepo,
		snapshots:   params.Snapshots,
		logger:      params.Logger,
	}
}

func (srv *billingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOverview returns the user's billing account together with the plan
// catalog.
func (srv *billingService) GetOverview(ctx context.Context, userID uuid.UUID) (*usecase.BillingOverview, error) {
	account, err := srv.loadAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	plans, err := srv.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.BillingOverview{Account: account, Plans: plans}, nil
}

// ListTransactions fetches the user's ledger and replaces the snapshot with
// the result.
func (srv *billingService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	generation := srv.snapshots.Transactions.Begin(userID)

	transactions, err := srv.billingRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list transactions", slog.Any("userID", userID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	srv.snapshots.Transactions.Replace(userID, generation, transactions)

	return transactions, nil
}

// ListBills returns the user's monthly statements, newest first.
func (srv *billingService) ListBills(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error) {
	generation := srv.snapshots.Bills.Begin(userID)

	bills, err := srv.billingRepo.FindBillsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list bills", slog.Any("userID", userID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to list bills")
	}

	srv.snapshots.Bills.Replace(userID, generation, bills)

	return bills, nil
}

// ListPlans returns the subscription plan catalog. The catalog is shared
// across users and served from the snapshot once loaded.
func (srv *billingService) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	if srv.snapshots.Plans.Loaded(catalogOwner) {
		return srv.snapshots.Plans.List(catalogOwner), nil
	}

	generation := srv.snapshots.Plans.Begin(catalogOwner)

	plans, err := srv.billingRepo.FindPlans(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load plan catalog", slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to load plan catalog")
	}

	srv.snapshots.Plans.Replace(catalogOwner, generation, plans)

	return plans, nil
}

// Recharge credits the user's balance. The new balance is computed once and
// shared by the account update and the ledger snapshot, so the two can never
// drift apart.
func (srv *billingService) Recharge(ctx context.Context, userID uuid.UUID, input usecase.RechargeInput) (*entity.BillingAccount, error) {
	srv.log(ctx).Info("Recharging account", slog.Any("userID", userID), slog.Float64("amount", input.Amount))

	if input.Amount <= 0 {
		return nil, domainerrors.ErrRechargeAmountInvalid
	}

	var account *entity.BillingAccount
	var transaction *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		billingRepo := repoFactory.NewBillingRepository()

		// 1. Load the account inside the transaction, holding a row lock so
		// concurrent recharges serialize on the balance.
		current, err := billingRepo.FindBillingAccountForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrBillingAccountNotFound) {
				return domainerrors.ErrBillingAccountNotFound
			}

			return errors.Wrap(err, "failed to find billing account")
		}

		// 2. Compute the new balance exactly once.
		newBalance := current.Balance + input.Amount

		current.Balance = newBalance
		current.UpdatedAt = time.Now()
		if err := billingRepo.UpdateBillingAccount(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update billing account")
		}

		// 3. Append the ledger entry carrying the same balance snapshot.
		entry := &entity.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        entity.TransactionTypeRecharge,
			Description: "帳戶儲值",
			Amount:      input.Amount,
			Balance:     newBalance,
			Status:      entity.TransactionStatusSuccess,
			OccurredAt:  time.Now(),
		}
		if err := billingRepo.CreateTransaction(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to create transaction")
		}

		account = current
		transaction = entry

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to recharge account", slog.Any("userID", userID), slog.Any("error", err))
		return nil, err
	}

	srv.snapshots.Accounts.Set(userID, account)
	srv.snapshots.Transactions.Put(userID, transaction)
	srv.log(ctx).Debug("Account recharged", slog.Any("userID", userID), slog.Float64("balance", account.Balance))

	return account, nil
}

// ChangePlan switches the user's subscription plan and charges the plan
// price against the balance.
func (srv *billingService) ChangePlan(ctx context.Context, userID uuid.UUID, planID string) (*entity.BillingAccount, error) {
	srv.log(ctx).Info("Changing plan", slog.Any("userID", userID), slog.String("planID", planID))

	plan, err := srv.billingRepo.FindPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	var account *entity.BillingAccount
	var transaction *entity.Transaction
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		billingRepo := repoFactory.NewBillingRepository()

		current, err := billingRepo.FindBillingAccountForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrBillingAccountNotFound) {
				return domainerrors.ErrBillingAccountNotFound
			}

			return errors.Wrap(err, "failed to find billing account")
		}
		if current.CurrentPlan == plan.ID {
			account = current
			return nil
		}
		if plan.Price > current.Balance {
			return domainerrors.ErrValidationFailed.WrapMessage("insufficient balance for plan change")
		}

		newBalance := current.Balance - plan.Price

		current.Balance = newBalance
		current.CurrentPlan = plan.ID
		current.UpdatedAt = time.Now()
		if err := billingRepo.UpdateBillingAccount(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update billing account")
		}

		if plan.Price > 0 {
			entry := &entity.Transaction{
				ID:          uuid.New(),
				UserID:      userID,
				Type:        entity.TransactionTypeSkillSub,
				Description: fmt.Sprintf("變更方案：%s", plan.Name),
				Amount:      -plan.Price,
				Balance:     newBalance,
				Status:      entity.TransactionStatusSuccess,
				OccurredAt:  time.Now(),
			}
			if err := billingRepo.CreateTransaction(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to create transaction")
			}
			transaction = entry
		}

		account = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change plan", slog.Any("userID", userID), slog.Any("error", err))
		return nil, err
	}

	srv.snapshots.Accounts.Set(userID, account)
	if transaction != nil {
		srv.snapshots.Transactions.Put(userID, transaction)
	}
	srv.maybeWarnLowBalance(ctx, userID, account.Balance)

	return account, nil
}

// GetAlertSetting returns the user's alert thresholds.
func (srv *billingService) GetAlertSetting(ctx context.Context, userID uuid.UUID) (*entity.AlertSetting, error) {
	setting, err := srv.billingRepo.FindAlertSetting(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertSettingNotFound) {
			// Users without a stored setting get the defaults.
			return defaultAlertSetting(userID), nil
		}

		return nil, errors.Wrap(err, "failed to find alert setting")
	}

	srv.snapshots.AlertSettings.Set(userID, setting)

	return setting, nil
}

// SaveAlertSetting replaces the user's alert thresholds.
func (srv *billingService) SaveAlertSetting(ctx context.Context, userID uuid.UUID, input usecase.AlertSettingInput) (*entity.AlertSetting, error) {
	setting := &entity.AlertSetting{
		UserID:           userID,
		BalanceThreshold: input.BalanceThreshold,
		UsageThreshold:   input.UsageThreshold,
		NotifyEmail:      input.NotifyEmail,
		NotifySMS:        input.NotifySMS,
		NotifyInApp:      input.NotifyInApp,
	}

	if err := srv.billingRepo.SaveAlertSetting(ctx, setting); err != nil {
		srv.log(ctx).Error("Failed to save alert setting", slog.Any("userID", userID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to save alert setting")
	}

	srv.snapshots.AlertSettings.Set(userID, setting)

	return setting, nil
}

// ExportTransactionsCSV renders the user's ledger as a CSV document.
func (srv *billingService) ExportTransactionsCSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	transactions, err := srv.billingRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"時間", "類型", "說明", "金額", "餘額", "狀態"}
	if err := writer.Write(header); err != nil {
		return nil, errors.Wrap(err, "failed to write csv header")
	}

	for _, tx := range transactions {
		row := []string{
			tx.OccurredAt.Format(time.RFC3339),
			string(tx.Type),
			tx.Description,
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			strconv.FormatFloat(tx.Balance, 'f', 2, 64),
			string(tx.Status),
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

// loadAccount reads the billing account and mirrors it into the snapshot.
func (srv *billingService) loadAccount(ctx context.Context, userID uuid.UUID) (*entity.BillingAccount, error) {
	account, err := srv.billingRepo.FindBillingAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBillingAccountNotFound) {
			return nil, domainerrors.ErrBillingAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find billing account")
	}

	srv.snapshots.Accounts.Set(userID, account)

	return account, nil
}

// maybeWarnLowBalance flags accounts that dropped under the alert threshold.
func (srv *billingService) maybeWarnLowBalance(ctx context.Context, userID uuid.UUID, balance float64) {
	setting, ok := srv.snapshots.AlertSettings.Get(userID)
	if !ok {
		stored, err := srv.billingRepo.FindAlertSetting(ctx, userID)
		if err != nil {
			return
		}
		setting = stored
	}

	if balance < setting.BalanceThreshold {
		srv.log(ctx).Warn("Balance below alert threshold",
			slog.Any("userID", userID),
			slog.Float64("balance", balance),
			slog.Float64("threshold", setting.BalanceThreshold))
	}
}

// defaultAlertSetting is the implicit setting before the user saves one.
func defaultAlertSetting(userID uuid.UUID) *entity.AlertSetting {
	return &entity.AlertSetting{
		UserID:           userID,
		BalanceThreshold: 100,
		UsageThreshold:   80,
		NotifyEmail:      true,
		NotifyInApp:      true,
	}
}
