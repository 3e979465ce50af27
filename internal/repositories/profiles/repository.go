// Package profiles persists per-user financial profiles.
package profiles

import (
	"context"

	"github.com/dcastano/finanzapp/internal/models"
)

// Repository describes the operations over the profiles collection. At most
// one profile exists per user id, so writes go through Upsert.
type Repository interface {
	// FindByUserID returns shared.ErrNotFound when the user has no profile.
	FindByUserID(ctx context.Context, userID string) (*models.FinancialProfile, error)

	// Upsert replaces the profile with the same user id, or appends it when
	// the user has none yet.
	Upsert(ctx context.Context, profile models.FinancialProfile) error
}
