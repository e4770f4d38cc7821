package usecase

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
)

// InstallSkillInput defines a marketplace installation request. The same
// skill may be installed on several devices at once.
type InstallSkillInput struct {
	SkillID   string
	DeviceIDs []uuid.UUID
}

// InstallSkillOutput reports how many installations were requested and how
// many were actually created. Devices that already had the skill are counted
// as requested but not installed.
type InstallSkillOutput struct {
	Requested int
	Installed int
	Skills    []*entity.InstalledSkill
}

// UpdateSkillConfigInput carries a partial update to an installation's
// configuration values.
type UpdateSkillConfigInput struct {
	Config map[string]any
}

// SkillUsecase defines the interface for marketplace and skill
// installation use cases.
type SkillUsecase interface {
	// ListMarketSkills returns the marketplace catalog. The catalog is
	// user-independent and cached after the first load.
	ListMarketSkills(ctx context.Context) ([]*entity.MarketSkill, error)

	// GetMarketSkill returns a single catalog entry with its full detail.
	GetMarketSkill(ctx context.Context, skillID string) (*entity.MarketSkill, error)

	// ListInstalledSkills fetches the user's installations from storage and
	// replaces the in-memory snapshot with the result.
	ListInstalledSkills(ctx context.Context, userID uuid.UUID) ([]*entity.InstalledSkill, error)

	// InstallSkill installs a marketplace skill on the given devices,
	// skipping devices that already have it.
	InstallSkill(ctx context.Context, userID uuid.UUID, input InstallSkillInput) (*InstallSkillOutput, error)

	// UninstallSkill removes one installation record.
	UninstallSkill(ctx context.Context, userID uuid.UUID, installedID uuid.UUID) error

	// ToggleSkill enables or disables one installation.
	ToggleSkill(ctx context.Context, userID uuid.UUID, installedID uuid.UUID, enabled bool) (*entity.InstalledSkill, error)

	// UpdateSkillConfig merges new configuration values into one installation.
	UpdateSkillConfig(ctx context.Context, userID uuid.UUID, installedID uuid.UUID, input UpdateSkillConfigInput) (*entity.InstalledSkill, error)
}
