package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme is the console color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// NotifyFrequency controls how often notification digests are delivered.
type NotifyFrequency string

const (
	NotifyRealtime NotifyFrequency = "realtime"
	NotifyDaily    NotifyFrequency = "daily"
	NotifyWeekly   NotifyFrequency = "weekly"
)

// EmailNotifications holds the per-category email toggles.
type EmailNotifications struct {
	Billing   bool `json:"billing"`
	Security  bool `json:"security"`
	Updates   bool `json:"updates"`
	Marketing bool `json:"marketing"`
}

// UserSettings is the per-user preferences singleton. Its existence also
// serves as the "already seeded" marker for the seeding routine.
type UserSettings struct {
	UserID          uuid.UUID          `json:"user_id"`
	Language        string             `json:"language"`
	Timezone        string             `json:"timezone"`
	Theme           Theme              `json:"theme"`
	EmailNotif      EmailNotifications `json:"email_notif"`
	NotifFrequency  NotifyFrequency    `json:"notif_frequency"`
	TwoFactorEnabled bool              `json:"two_factor_enabled"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// APIKey is a user-generated credential for programmatic access.
type APIKey struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Key       string     `json:"key"` // Opaque secret value, shown in full only once.
	CreatedAt time.Time  `json:"created_at"`
	LastUsed  *time.Time `json:"last_used,omitempty"` // Nil until the key is first used.
}

// LoginRecord is one entry of the read-only login history.
type LoginRecord struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	IP       string    `json:"ip"`
	Device   string    `json:"device"`   // Client descriptor, e.g. "Chrome / macOS".
	Location string    `json:"location"` // Coarse location derived from the IP.
	Current  bool      `json:"current"`  // True for the record of the active session.
	LoggedAt time.Time `json:"logged_at"`
}
