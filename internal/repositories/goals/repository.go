// Package goals persists savings goals.
package goals

import (
	"context"

	"github.com/dcastano/finanzapp/internal/models"
)

// Repository describes the operations over the goals collection.
// FindByID and Update return shared.ErrNotFound for unknown ids;
// DeleteByID is an idempotent no-op for them.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Goal, error)
	FindByID(ctx context.Context, id string) (*models.Goal, error)
	Append(ctx context.Context, goal models.Goal) error
	Update(ctx context.Context, goal models.Goal) error
	DeleteByID(ctx context.Context, id string) error
}
