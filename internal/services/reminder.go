package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/repositories/reminders"
	"github.com/dcastano/finanzapp/internal/shared"
)

// CreateReminderInput carries the raw form values for a new reminder.
type CreateReminderInput struct {
	Title    string
	Notes    string
	Date     string
	Time     string // optional, HH:MM
	Amount   string // optional, defaults to 0
	Category string // optional, defaults to "otro"
}

// ReminderPatch updates an existing reminder. Nil fields are left unchanged.
type ReminderPatch struct {
	Title    *string
	Notes    *string
	Date     *string
	Time     *string
	Amount   *string
	Category *string
}

// ReminderService implements CRUD over reminders plus the one-way,
// user-triggered Complete transition.
type ReminderService interface {
	Create(ctx context.Context, input CreateReminderInput) (*models.Reminder, error)
	Update(ctx context.Context, id string, patch ReminderPatch) (*models.Reminder, error)
	Delete(ctx context.Context, id string) error
	ListForCurrentUser(ctx context.Context) ([]models.Reminder, error)
	// Complete sets the reminder status to completed. There is no way back
	// to pending.
	Complete(ctx context.Context, id string) error
}

type reminderService struct {
	repo    reminders.Repository
	session SessionReader
}

func NewReminderService(repo reminders.Repository, session SessionReader) ReminderService {
	return &reminderService{repo: repo, session: session}
}

func (s *reminderService) Create(ctx context.Context, input CreateReminderInput) (*models.Reminder, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}
	amount, err := parseOptionalAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = models.DefaultReminderCategory
	}

	reminder := models.Reminder{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Title:     input.Title,
		Notes:     input.Notes,
		Date:      date,
		Time:      input.Time,
		Amount:    amount,
		Category:  category,
		Status:    models.ReminderPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (s *reminderService) Update(ctx context.Context, id string, patch ReminderPatch) (*models.Reminder, error) {
	reminder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		reminder.Title = *patch.Title
	}
	if patch.Notes != nil {
		reminder.Notes = *patch.Notes
	}
	if patch.Date != nil {
		date, err := parseDate(*patch.Date)
		if err != nil {
			return nil, err
		}
		reminder.Date = date
	}
	if patch.Time != nil {
		reminder.Time = *patch.Time
	}
	if patch.Amount != nil {
		amount, err := parseAmount(*patch.Amount)
		if err != nil {
			return nil, err
		}
		reminder.Amount = amount
	}
	if patch.Category != nil {
		reminder.Category = *patch.Category
	}

	if err := s.repo.Update(ctx, *reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *reminderService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *reminderService) ListForCurrentUser(ctx context.Context) ([]models.Reminder, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			return []models.Reminder{}, nil
		}
		return nil, err
	}
	return s.repo.ListByUser(ctx, user.ID)
}

func (s *reminderService) Complete(ctx context.Context, id string) error {
	reminder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	reminder.Status = models.ReminderCompleted
	return s.repo.Update(ctx, *reminder)
}
