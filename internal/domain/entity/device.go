// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus represents the connectivity state of an assistant device.
type DeviceStatus string

const (
	// DeviceStatusOnline means the device is currently reachable.
	DeviceStatusOnline DeviceStatus = "online"
	// DeviceStatusOffline means the device has not reported recently.
	DeviceStatusOffline DeviceStatus = "offline"
)

// DeviceCategory classifies how a device is used.
type DeviceCategory string

const (
	DeviceCategoryPersonal   DeviceCategory = "personal"
	DeviceCategoryEnterprise DeviceCategory = "enterprise"
	DeviceCategoryTest       DeviceCategory = "test"
)

// Device represents an AI assistant device owned by a user.
// Skills and ConfigHistory are denormalized projections assembled at fetch
// time from the installed-skills and config-history collections.
type Device struct {
	ID            uuid.UUID        `json:"id"`             // The Global Unique Identifier (GUID) for the device.
	UserID        uuid.UUID        `json:"user_id"`        // The ID of the user who owns this device.
	Name          string           `json:"name"`           // User-facing display name.
	MAC           string           `json:"mac"`            // Hardware identifier, uppercase six-group colon-hex, unique per user.
	Status        DeviceStatus     `json:"status"`         // online or offline.
	Category      DeviceCategory   `json:"category"`       // personal, enterprise or test.
	Description   string           `json:"description"`    // Free-text description.
	IP            string           `json:"ip"`             // Last known network address.
	CPU           int              `json:"cpu"`            // CPU utilization percentage (0-100).
	Memory        int              `json:"memory"`         // Memory utilization percentage (0-100).
	Disk          int              `json:"disk"`           // Disk utilization percentage (0-100).
	CreatedAt     time.Time        `json:"created_at"`     // Timestamp of when this device was registered.
	LastActiveAt  time.Time        `json:"last_active_at"` // Timestamp of the device's last activity.
	Skills        []SkillSummary   `json:"skills"`         // Installed skills, name + version only.
	ConfigHistory []ConfigLogEntry `json:"config_history"` // Configuration change log, newest first.
}

// SkillSummary is the compact installed-skill view embedded in a Device.
type SkillSummary struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ConfigLogEntry is a single configuration-change record for a device.
type ConfigLogEntry struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"`
	Summary   string    `json:"summary"`
	ChangedAt time.Time `json:"changed_at"`
}
