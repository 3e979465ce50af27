// Package users persists registered accounts.
package users

import (
	"context"

	"github.com/dcastano/finanzapp/internal/models"
)

// Repository describes the operations over the users collection.
//
// Contract:
//   - GetAll returns every registered user in insertion order.
//   - FindByEmail / FindByID return shared.ErrNotFound when no user matches.
//   - Append adds a new user at the end of the collection.
//   - Update replaces the stored user with the same id.
type Repository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Append(ctx context.Context, user models.User) error
	Update(ctx context.Context, user models.User) error
}
