// Package movements persists income and expense transactions.
package movements

import (
	"context"

	"github.com/dcastano/finanzapp/internal/models"
)

// Repository describes the operations over the movements collection.
//
// Contract:
//   - ListByUser filters the collection by owning user id, keeping
//     insertion order.
//   - FindByID returns shared.ErrNotFound for an unknown id.
//   - Update replaces the stored movement with the same id.
//   - DeleteByID removes a movement; deleting an absent id is a no-op.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Movement, error)
	FindByID(ctx context.Context, id string) (*models.Movement, error)
	Append(ctx context.Context, movement models.Movement) error
	Update(ctx context.Context, movement models.Movement) error
	DeleteByID(ctx context.Context, id string) error
}
