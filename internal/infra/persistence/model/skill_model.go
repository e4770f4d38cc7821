package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MarketSkillModel is the GORM-specific struct for the 'market_skills' table.
// Catalog IDs are short strings ("s1", "s2", ...) assigned by the catalog.
type MarketSkillModel struct {
	ID              string `gorm:"type:varchar(32);primary_key"`
	Name            string `gorm:"type:varchar(100);not null"`
	Icon            string `gorm:"type:varchar(16)"`
	Category        string `gorm:"type:varchar(50);not null;index"`
	Description     string `gorm:"type:text"`
	LongDescription string `gorm:"type:text"`
	Version         string `gorm:"type:varchar(20);not null"`
	Developer       string `gorm:"type:varchar(100)"`
	PublishedAt     time.Time
	Rating          float64
	RatingCount     int
	Installs        int
	Requirements    datatypes.JSON `gorm:"type:jsonb"`
	Features        datatypes.JSON `gorm:"type:jsonb"`
	Reviews         datatypes.JSON `gorm:"type:jsonb"`
	ConfigSchema    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MarketSkillModel) TableName() string {
	return "market_skills"
}

// InstalledSkillModel is the GORM-specific struct for the 'installed_skills' table.
// The unique index enforces at most one installation per (user, skill, device).
type InstalledSkillModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_installed_user_skill_device"`
	SkillID      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_installed_user_skill_device"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_installed_user_skill_device"`
	SkillName    string    `gorm:"type:varchar(100);not null"`
	Enabled      bool      `gorm:"not null;default:true"`
	Version      string    `gorm:"type:varchar(20);not null"`
	Config       datatypes.JSON `gorm:"type:jsonb"`
	ConfigSchema datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (InstalledSkillModel) TableName() string {
	return "installed_skills"
}
