package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/repositories/goals"
	"github.com/dcastano/finanzapp/internal/shared"
)

// DefaultGoalIcon tags goals created without an explicit icon.
const DefaultGoalIcon = "other"

// CreateGoalInput carries the raw form values for a new savings goal.
type CreateGoalInput struct {
	Name      string
	Target    string
	Saved     string // optional, defaults to 0
	StartDate string
	Deadline  string
	Notes     string
	Icon      string
}

// GoalPatch updates an existing goal. Nil fields are left unchanged.
type GoalPatch struct {
	Name      *string
	Target    *string
	Saved     *string
	StartDate *string
	Deadline  *string
	Notes     *string
	Icon      *string
}

// GoalService implements CRUD over savings goals plus the accumulate-only
// AddSavings operation. Any mutation that touches the saved or target
// amount re-applies the completion rule; a completed goal never reverts
// to in-progress automatically.
type GoalService interface {
	Create(ctx context.Context, input CreateGoalInput) (*models.Goal, error)
	Update(ctx context.Context, id string, patch GoalPatch) (*models.Goal, error)
	Delete(ctx context.Context, id string) error
	ListForCurrentUser(ctx context.Context) ([]models.Goal, error)
	// AddSavings adds amount to the goal's saved total (accumulating,
	// never replacing).
	AddSavings(ctx context.Context, goalID string, amount string) error
}

type goalService struct {
	repo    goals.Repository
	session SessionReader
}

func NewGoalService(repo goals.Repository, session SessionReader) GoalService {
	return &goalService{repo: repo, session: session}
}

func (s *goalService) Create(ctx context.Context, input CreateGoalInput) (*models.Goal, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	target, err := parseAmount(input.Target)
	if err != nil {
		return nil, err
	}
	saved, err := parseOptionalAmount(input.Saved)
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	deadline, err := parseDate(input.Deadline)
	if err != nil {
		return nil, err
	}

	icon := input.Icon
	if icon == "" {
		icon = DefaultGoalIcon
	}

	// New goals always start in progress, even when seeded with
	// saved >= target; the completion rule only runs on mutations.
	goal := models.Goal{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      input.Name,
		Target:    target,
		Saved:     saved,
		StartDate: startDate,
		Deadline:  deadline,
		Notes:     input.Notes,
		Icon:      icon,
		Status:    models.GoalInProgress,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *goalService) Update(ctx context.Context, id string, patch GoalPatch) (*models.Goal, error) {
	goal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		goal.Name = *patch.Name
	}
	if patch.Target != nil {
		target, err := parseAmount(*patch.Target)
		if err != nil {
			return nil, err
		}
		goal.Target = target
	}
	if patch.Saved != nil {
		saved, err := parseAmount(*patch.Saved)
		if err != nil {
			return nil, err
		}
		goal.Saved = saved
	}
	if patch.StartDate != nil {
		startDate, err := parseDate(*patch.StartDate)
		if err != nil {
			return nil, err
		}
		goal.StartDate = startDate
	}
	if patch.Deadline != nil {
		deadline, err := parseDate(*patch.Deadline)
		if err != nil {
			return nil, err
		}
		goal.Deadline = deadline
	}
	if patch.Notes != nil {
		goal.Notes = *patch.Notes
	}
	if patch.Icon != nil {
		goal.Icon = *patch.Icon
	}

	goal.ApplyCompletionRule()

	if err := s.repo.Update(ctx, *goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *goalService) ListForCurrentUser(ctx context.Context) ([]models.Goal, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			return []models.Goal{}, nil
		}
		return nil, err
	}
	return s.repo.ListByUser(ctx, user.ID)
}

func (s *goalService) AddSavings(ctx context.Context, goalID string, amount string) error {
	parsed, err := parseAmount(amount)
	if err != nil {
		return err
	}

	goal, err := s.repo.FindByID(ctx, goalID)
	if err != nil {
		return err
	}

	goal.Saved += parsed
	goal.ApplyCompletionRule()

	return s.repo.Update(ctx, *goal)
}
