package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents an assistant device bound to a user account.
type DeviceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_devices_user_mac"`
	Name         string    `gorm:"type:varchar(100);not null"`
	MAC          string    `gorm:"column:mac;type:varchar(17);not null;uniqueIndex:idx_devices_user_mac"`
	Status       string    `gorm:"type:varchar(20);not null;default:offline"`
	Category     string    `gorm:"type:varchar(20);not null;default:personal"`
	Description  string    `gorm:"type:text"`
	IP           string    `gorm:"column:ip;type:varchar(45)"`
	CPU          int       `gorm:"column:cpu"`
	Memory       int
	Disk         int
	Skills       datatypes.JSON `gorm:"type:jsonb"` // Snapshot of installed skill summaries.
	LastActiveAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// ConfigLogModel is the GORM-specific struct for the 'device_config_logs' table.
// Each row records one configuration change applied to a device.
type ConfigLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Summary   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConfigLogModel) TableName() string {
	return "device_config_logs"
}
