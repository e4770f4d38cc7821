package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserSettingsModel mirrors the 'user_settings' table, the per-user
// preferences singleton. Its presence doubles as the seeded marker.
type UserSettingsModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Language         string    `gorm:"type:varchar(16);not null"`
	Timezone         string    `gorm:"type:varchar(64);not null"`
	Theme            string    `gorm:"type:varchar(16);not null"`
	EmailNotif       datatypes.JSON `gorm:"type:jsonb"`
	NotifFrequency   string         `gorm:"type:varchar(16);not null"`
	TwoFactorEnabled bool           `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// APIKeyModel mirrors the 'api_keys' table.
type APIKeyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Key       string    `gorm:"type:varchar(64);unique;not null"`
	LastUsed  *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (APIKeyModel) TableName() string {
	return "api_keys"
}

// LoginRecordModel mirrors the 'login_records' table, the append-only
// login history.
type LoginRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	IP        string    `gorm:"column:ip;type:varchar(45)"`
	Device    string    `gorm:"type:varchar(255)"`
	Location  string    `gorm:"type:varchar(100)"`
	Current   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoginRecordModel) TableName() string {
	return "login_records"
}
