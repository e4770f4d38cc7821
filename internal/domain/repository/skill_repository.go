// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for skill persistence.
var (
	// ErrMarketSkillNotFound is returned when a marketplace skill is not found.
	ErrMarketSkillNotFound = errors.New("market skill not found")
	// ErrInstalledSkillNotFound is returned when an installed skill record is not found.
	ErrInstalledSkillNotFound = errors.New("installed skill not found")
)

// SkillRepository defines the interface for skill marketplace and
// installation database operations.
type SkillRepository interface {
	// FindMarketSkills retrieves the full marketplace catalog.
	FindMarketSkills(ctx context.Context) ([]*entity.MarketSkill, error)

	// FindMarketSkillByID retrieves a single marketplace skill by its catalog ID.
	FindMarketSkillByID(ctx context.Context, id string) (*entity.MarketSkill, error)

	// UpsertMarketSkills inserts or refreshes catalog entries. Used when
	// loading the built-in catalog at startup.
	UpsertMarketSkills(ctx context.Context, skills []*entity.MarketSkill) error

	// CreateInstalledSkill persists a new installation record.
	CreateInstalledSkill(ctx context.Context, skill *entity.InstalledSkill) error

	// FindInstalledSkillByID retrieves an installation record by its unique ID.
	FindInstalledSkillByID(ctx context.Context, id uuid.UUID) (*entity.InstalledSkill, error)

	// FindInstalledSkillsByUser retrieves all installation records for a user.
	FindInstalledSkillsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InstalledSkill, error)

	// FindInstalledSkill retrieves the installation record for a
	// (skill, device) pair, if any. At most one such record exists.
	FindInstalledSkill(ctx context.Context, userID uuid.UUID, skillID string, deviceID uuid.UUID) (*entity.InstalledSkill, error)

	// UpdateInstalledSkillFields applies a partial update to an installation
	// record. Only the columns named in fields are written.
	UpdateInstalledSkillFields(ctx context.Context, id uuid.UUID, fields map[string]any) error

	// DeleteInstalledSkill removes an installation record by its ID.
	DeleteInstalledSkill(ctx context.Context, id uuid.UUID) error

	// DeleteInstalledSkillsByDevices removes all installation records bound to
	// the given devices. Called when devices are deleted.
	DeleteInstalledSkillsByDevices(ctx context.Context, deviceIDs []uuid.UUID) error

	// CountInstalledSkillsByUser returns the number of installation records a user has.
	CountInstalledSkillsByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
