package usecase

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
)

// BootstrapOutput aggregates everything the console needs to render after
// login: all domain snapshots in one payload.
type BootstrapOutput struct {
	Seeded          bool                     `json:"seeded"`
	Devices         []*entity.Device         `json:"devices"`
	InstalledSkills []*entity.InstalledSkill `json:"installed_skills"`
	Account         *entity.BillingAccount   `json:"account"`
	Transactions    []*entity.Transaction    `json:"transactions"`
	Bills           []*entity.Bill           `json:"bills"`
	Plans           []*entity.Plan           `json:"plans"`
	Settings        *entity.UserSettings     `json:"settings"`
}

// BootstrapUsecase coordinates session initialization: seed-if-needed
// followed by loading every domain snapshot.
type BootstrapUsecase interface {
	// InitSession runs at most once per session. It seeds first-time users,
	// then loads the device, skill, billing and settings snapshots in
	// parallel. Repeat calls within a session return the cached result.
	InitSession(ctx context.Context, userID uuid.UUID) (*BootstrapOutput, error)

	// ResetSession forgets the session marker and all snapshots, e.g. on
	// logout. The next InitSession runs in full again.
	ResetSession(userID uuid.UUID)
}
