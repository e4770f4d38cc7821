package entity

import (
	"time"

	"github.com/google/uuid"
)

// MarketSkill is a catalog entry in the skill marketplace. It is read-only
// from the console's perspective; users never create, edit or delete entries.
type MarketSkill struct {
	ID              string        `json:"id"`               // Catalog identifier, e.g. "s1".
	Name            string        `json:"name"`             // Display name.
	Icon            string        `json:"icon"`             // Icon reference consumed by the view layer.
	Category        string        `json:"category"`         // Catalog category tag.
	Description     string        `json:"description"`      // Short description.
	LongDescription string        `json:"long_description"` // Full description shown on the detail page.
	Version         string        `json:"version"`          // Current published version string.
	Developer       string        `json:"developer"`        // Developer or vendor name.
	PublishedAt     time.Time     `json:"published_at"`     // Catalog publish date.
	Rating          float64       `json:"rating"`           // Aggregate rating, 0-5.
	RatingCount     int           `json:"rating_count"`     // Number of ratings behind the aggregate.
	Installs        int           `json:"installs"`         // Marketplace-wide install count.
	Requirements    string        `json:"requirements"`     // Free-text requirement line, e.g. firmware constraints.
	Features        []string      `json:"features"`         // Feature bullet list.
	Reviews         []SkillReview `json:"reviews"`          // User reviews, newest first.
	ConfigSchema    []ConfigField `json:"config_schema"`    // Schema copied onto new installations.
}

// SkillReview is a single marketplace review on a MarketSkill.
type SkillReview struct {
	User    string    `json:"user"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// ConfigFieldType enumerates the supported installed-skill config field types.
type ConfigFieldType string

const (
	ConfigFieldText    ConfigFieldType = "text"
	ConfigFieldNumber  ConfigFieldType = "number"
	ConfigFieldBoolean ConfigFieldType = "boolean"
	ConfigFieldSelect  ConfigFieldType = "select"
)

// ConfigField describes one typed field of an installed skill's config schema.
type ConfigField struct {
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	Type         ConfigFieldType `json:"type"`
	Options      []string        `json:"options,omitempty"` // Only for select fields.
	DefaultValue any             `json:"default_value"`
}

// InstalledSkill is the join entity between a Device and a MarketSkill.
// The (SkillID, DeviceID) pair is the natural key and is unique per user.
type InstalledSkill struct {
	ID           uuid.UUID      `json:"id"`            // Row identity.
	UserID       uuid.UUID      `json:"user_id"`       // Owner, mirrors the device's owner.
	SkillID      string         `json:"skill_id"`      // References MarketSkill.ID.
	DeviceID     uuid.UUID      `json:"device_id"`     // References Device.ID.
	SkillName    string         `json:"skill_name"`    // Denormalized catalog name for device summaries.
	Enabled      bool           `json:"enabled"`       // Whether the skill is active on the device.
	Version      string         `json:"version"`       // Version installed, frozen at install time.
	Config       map[string]any `json:"config"`        // Current configuration values, key -> value.
	ConfigSchema []ConfigField  `json:"config_schema"` // Ordered schema describing Config.
	InstalledAt  time.Time      `json:"installed_at"`  // Timestamp of installation.
}
