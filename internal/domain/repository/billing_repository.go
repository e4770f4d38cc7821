// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for billing persistence.
var (
	// ErrBillingAccountNotFound is returned when a billing account is not found.
	ErrBillingAccountNotFound = errors.New("billing account not found")
	// ErrPlanNotFound is returned when a subscription plan is not found.
	ErrPlanNotFound = errors.New("subscription plan not found")
	// ErrAlertSettingNotFound is returned when an alert setting record is not found.
	ErrAlertSettingNotFound = errors.New("alert setting not found")
)

// BillingRepository defines the interface for billing-related database operations.
type BillingRepository interface {
	// FindBillingAccount retrieves the billing account singleton of a user.
	FindBillingAccount(ctx context.Context, userID uuid.UUID) (*entity.BillingAccount, error)

	// FindBillingAccountForUpdate retrieves the billing account singleton of a
	// user and locks the row until the surrounding transaction ends. Callers
	// must run inside a TransactionManager transaction; concurrent
	// read-modify-write sequences on the balance serialize on this lock.
	FindBillingAccountForUpdate(ctx context.Context, userID uuid.UUID) (*entity.BillingAccount, error)

	// CreateBillingAccount persists a new billing account for a user.
	CreateBillingAccount(ctx context.Context, account *entity.BillingAccount) error

	// UpdateBillingAccount modifies an existing billing account.
	UpdateBillingAccount(ctx context.Context, account *entity.BillingAccount) error

	// CreateTransaction appends a ledger entry. Transactions are never
	// updated or deleted afterwards.
	CreateTransaction(ctx context.Context, tx *entity.Transaction) error

	// FindTransactionsByUser retrieves the full transaction ledger of a user,
	// newest first.
	FindTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// CreateBill persists a monthly statement.
	CreateBill(ctx context.Context, bill *entity.Bill) error

	// FindBillsByUser retrieves all monthly statements of a user, newest first.
	FindBillsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error)

	// FindPlans retrieves the subscription plan catalog.
	FindPlans(ctx context.Context) ([]*entity.Plan, error)

	// FindPlanByID retrieves a single subscription plan by its catalog ID.
	FindPlanByID(ctx context.Context, id string) (*entity.Plan, error)

	// UpsertPlans inserts or refreshes the plan catalog. Used when loading the
	// built-in catalog at startup.
	UpsertPlans(ctx context.Context, plans []*entity.Plan) error

	// FindAlertSetting retrieves the alert setting singleton of a user.
	FindAlertSetting(ctx context.Context, userID uuid.UUID) (*entity.AlertSetting, error)

	// SaveAlertSetting creates or replaces the alert setting singleton of a user.
	SaveAlertSetting(ctx context.Context, setting *entity.AlertSetting) error
}
