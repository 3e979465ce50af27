// Package reminders persists scheduled financial to-dos.
package reminders

import (
	"context"

	"github.com/dcastano/finanzapp/internal/models"
)

// Repository describes the operations over the reminders collection.
// FindByID and Update return shared.ErrNotFound for unknown ids;
// DeleteByID is an idempotent no-op for them.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Reminder, error)
	FindByID(ctx context.Context, id string) (*models.Reminder, error)
	Append(ctx context.Context, reminder models.Reminder) error
	Update(ctx context.Context, reminder models.Reminder) error
	DeleteByID(ctx context.Context, id string) error
}
