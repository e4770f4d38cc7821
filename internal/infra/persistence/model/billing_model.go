package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BillingAccountModel mirrors the 'billing_accounts' table, the per-user
// balance and plan singleton.
type BillingAccountModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance     float64   `gorm:"not null;default:0"`
	CurrentPlan string    `gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BillingAccountModel) TableName() string {
	return "billing_accounts"
}

// TransactionModel mirrors the 'billing_transactions' table. Rows are
// append-only ledger entries.
type TransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text"`
	Amount      float64   `gorm:"not null"`
	Balance     float64   `gorm:"not null"`
	DeviceID    *uuid.UUID `gorm:"type:uuid"`
	Status      string     `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "billing_transactions"
}

// BillModel mirrors the 'bills' table, one row per monthly statement.
type BillModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Month     string    `gorm:"type:varchar(7);not null"`
	Total     float64   `gorm:"not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	Items     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BillModel) TableName() string {
	return "bills"
}

// PlanModel mirrors the 'plans' table, the subscription plan catalog.
type PlanModel struct {
	ID          string  `gorm:"type:varchar(32);primary_key"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Price       float64 `gorm:"not null"`
	Period      string  `gorm:"type:varchar(20);not null"`
	Features    datatypes.JSON `gorm:"type:jsonb"`
	Limits      datatypes.JSON `gorm:"type:jsonb"`
	Recommended bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}

// AlertSettingModel mirrors the 'billing_alert_settings' table, the per-user
// alert threshold singleton.
type AlertSettingModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BalanceThreshold float64   `gorm:"not null;default:0"`
	UsageThreshold   int       `gorm:"not null;default:0"`
	NotifyEmail      bool      `gorm:"not null;default:true"`
	NotifySMS        bool      `gorm:"column:notify_sms;not null;default:false"`
	NotifyInApp      bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertSettingModel) TableName() string {
	return "billing_alert_settings"
}
