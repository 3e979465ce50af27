package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/repositories/movements"
	"github.com/dcastano/finanzapp/internal/shared"
)

// CreateMovementInput carries the raw form values for a new movement.
// Amount arrives as text and is validated here, at the boundary.
type CreateMovementInput struct {
	Kind     string
	Category string
	Amount   string
	Date     string
	Notes    string
}

// MovementPatch updates an existing movement. Nil fields are left unchanged.
type MovementPatch struct {
	Kind     *string
	Category *string
	Amount   *string
	Date     *string
	Notes    *string
}

// MovementService implements CRUD over movements, scoped to the current
// session's user.
type MovementService interface {
	Create(ctx context.Context, input CreateMovementInput) (*models.Movement, error)
	Update(ctx context.Context, id string, patch MovementPatch) (*models.Movement, error)
	// Delete removes a movement; deleting an unknown id is a successful no-op.
	Delete(ctx context.Context, id string) error
	// ListForCurrentUser returns an empty slice, not an error, when nobody
	// is logged in.
	ListForCurrentUser(ctx context.Context) ([]models.Movement, error)
}

type movementService struct {
	repo    movements.Repository
	session SessionReader
}

func NewMovementService(repo movements.Repository, session SessionReader) MovementService {
	return &movementService{repo: repo, session: session}
}

func validateMovementKind(kind string) error {
	if kind != models.MovementIncome && kind != models.MovementExpense {
		return fmt.Errorf("%w: movement kind must be %q or %q",
			shared.ErrValidation, models.MovementIncome, models.MovementExpense)
	}
	return nil
}

func (s *movementService) Create(ctx context.Context, input CreateMovementInput) (*models.Movement, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateMovementKind(input.Kind); err != nil {
		return nil, err
	}
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	movement := models.Movement{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Kind:      input.Kind,
		Category:  input.Category,
		Amount:    amount,
		Date:      date,
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, movement); err != nil {
		return nil, err
	}
	return &movement, nil
}

func (s *movementService) Update(ctx context.Context, id string, patch MovementPatch) (*models.Movement, error) {
	movement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Kind != nil {
		if err := validateMovementKind(*patch.Kind); err != nil {
			return nil, err
		}
		movement.Kind = *patch.Kind
	}
	if patch.Category != nil {
		movement.Category = *patch.Category
	}
	if patch.Amount != nil {
		amount, err := parseAmount(*patch.Amount)
		if err != nil {
			return nil, err
		}
		movement.Amount = amount
	}
	if patch.Date != nil {
		date, err := parseDate(*patch.Date)
		if err != nil {
			return nil, err
		}
		movement.Date = date
	}
	if patch.Notes != nil {
		movement.Notes = *patch.Notes
	}

	if err := s.repo.Update(ctx, *movement); err != nil {
		return nil, err
	}
	return movement, nil
}

func (s *movementService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *movementService) ListForCurrentUser(ctx context.Context) ([]models.Movement, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			return []models.Movement{}, nil
		}
		return nil, err
	}
	return s.repo.ListByUser(ctx, user.ID)
}
