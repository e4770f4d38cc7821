package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SeedUsecase provisions demo data for first-time users.
type SeedUsecase interface {
	// EnsureSeeded checks whether the user already has console data and, if
	// not, creates the full demo dataset in one transaction. It reports
	// whether seeding ran. Calling it again is a no-op.
	EnsureSeeded(ctx context.Context, userID uuid.UUID) (bool, error)
}
