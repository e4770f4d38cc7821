package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a billing transaction.
type TransactionType string

const (
	TransactionTypeAPICall  TransactionType = "api_call"
	TransactionTypeSkillSub TransactionType = "skill_sub"
	TransactionTypeRecharge TransactionType = "recharge"
	TransactionTypeOther    TransactionType = "other"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// Transaction is a single billing ledger entry. Immutable once created
// except for its status; never deleted.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Type        TransactionType   `json:"type"`
	Description string            `json:"description"`
	Amount      float64           `json:"amount"`              // Signed; positive is a credit.
	Balance     float64           `json:"balance"`             // Account balance snapshot after this transaction.
	DeviceID    *uuid.UUID        `json:"device_id,omitempty"` // Optional associated device.
	Status      TransactionStatus `json:"status"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

// BillStatus is the payment state of a monthly bill.
type BillStatus string

const (
	BillStatusPaid    BillStatus = "paid"
	BillStatusUnpaid  BillStatus = "unpaid"
	BillStatusOverdue BillStatus = "overdue"
)

// BillItem is one (category, amount) line of a monthly bill.
type BillItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Bill is a monthly statement. Read-mostly; produced by a billing cycle
// process outside this service.
type Bill struct {
	ID     uuid.UUID  `json:"id"`
	UserID uuid.UUID  `json:"user_id"`
	Month  string     `json:"month"` // Month label, e.g. "2026-01".
	Total  float64    `json:"total"`
	Status BillStatus `json:"status"`
	Items  []BillItem `json:"items"`
}

// BillingAccount is the per-user billing singleton: current balance and plan.
type BillingAccount struct {
	UserID      uuid.UUID `json:"user_id"`
	Balance     float64   `json:"balance"`
	CurrentPlan string    `json:"current_plan"` // References Plan.ID.
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlanLimits describes the quota limits of a subscription plan.
// -1 means unlimited.
type PlanLimits struct {
	Devices  int `json:"devices"`
	APICalls int `json:"api_calls"`
	Skills   int `json:"skills"`
}

// Plan is a subscription plan from the static plan catalog.
type Plan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Period      string     `json:"period"`
	Features    []string   `json:"features"`
	Limits      PlanLimits `json:"limits"`
	Recommended bool       `json:"recommended,omitempty"`
}

// AlertSetting is the per-user billing alert singleton: notification
// thresholds and channel toggles.
type AlertSetting struct {
	UserID           uuid.UUID `json:"user_id"`
	BalanceThreshold float64   `json:"balance_threshold"` // Alert when balance drops below this.
	UsageThreshold   int       `json:"usage_threshold"`   // Alert when monthly usage exceeds this percentage.
	NotifyEmail      bool      `json:"notify_email"`
	NotifySMS        bool      `json:"notify_sms"`
	NotifyInApp      bool      `json:"notify_in_app"`
}
