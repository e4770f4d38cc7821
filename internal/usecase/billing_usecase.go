package usecase

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
)

// RechargeInput defines a balance top-up request.
type RechargeInput struct {
	Amount float64
}

// AlertSettingInput carries the full alert setting document; saving
// replaces the previous values.
type AlertSettingInput struct {
	BalanceThreshold float64
	UsageThreshold   int
	NotifyEmail      bool
	NotifySMS        bool
	NotifyInApp      bool
}

// BillingOverview aggregates the user's billing account with the plan catalog.
type BillingOverview struct {
	Account *entity.BillingAccount
	Plans   []*entity.Plan
}

// BillingUsecase defines the interface for balance, ledger and
// subscription plan use cases.
type BillingUsecase interface {
	// GetOverview returns the user's billing account and the plan catalog.
	GetOverview(ctx context.Context, userID uuid.UUID) (*BillingOverview, error)

	// ListTransactions fetches the user's ledger from storage and replaces
	// the in-memory snapshot with the result.
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// ListBills returns the user's monthly statements.
	ListBills(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error)

	// ListPlans returns the subscription plan catalog.
	ListPlans(ctx context.Context) ([]*entity.Plan, error)

	// Recharge credits the user's balance and appends the matching ledger
	// entry in one transaction.
	Recharge(ctx context.Context, userID uuid.UUID, input RechargeInput) (*entity.BillingAccount, error)

	// ChangePlan switches the user's subscription plan.
	ChangePlan(ctx context.Context, userID uuid.UUID, planID string) (*entity.BillingAccount, error)

	// GetAlertSetting returns the user's alert thresholds.
	GetAlertSetting(ctx context.Context, userID uuid.UUID) (*entity.AlertSetting, error)

	// SaveAlertSetting replaces the user's alert thresholds.
	SaveAlertSetting(ctx context.Context, userID uuid.UUID, input AlertSettingInput) (*entity.AlertSetting, error)

	// ExportTransactionsCSV renders the user's ledger as a CSV document.
	ExportTransactionsCSV(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
