package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/repositories/goals"
	"github.com/dcastano/finanzapp/internal/repositories/movements"
	"github.com/dcastano/finanzapp/internal/shared"
)

// DefaultRecentLimit is used when RecentMovements gets a non-positive limit.
const DefaultRecentLimit = 5

// StatsService computes the derived dashboard aggregates over the current
// user's movements and goals.
type StatsService interface {
	// DashboardStats returns shared.ErrNotAuthenticated when nobody is
	// logged in.
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	// RecentMovements returns the current user's movements, most recent
	// date first (stable for equal dates), truncated to limit. Without a
	// session it returns an empty slice.
	RecentMovements(ctx context.Context, limit int) ([]models.Movement, error)
}

type statsService struct {
	movements movements.Repository
	goals     goals.Repository
	session   SessionReader
}

func NewStatsService(movementsRepo movements.Repository, goalsRepo goals.Repository, session SessionReader) StatsService {
	return &statsService{movements: movementsRepo, goals: goalsRepo, session: session}
}

func (s *statsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	userMovements, err := s.movements.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	userGoals, err := s.goals.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		MovementCount: len(userMovements),
		GoalCount:     len(userGoals),
	}

	for _, m := range userMovements {
		switch m.Kind {
		case models.MovementIncome:
			stats.Income += m.Amount
		case models.MovementExpense:
			stats.Expenses += m.Amount
		}
	}
	stats.Balance = stats.Income - stats.Expenses

	for _, g := range userGoals {
		stats.TotalSaved += g.Saved
	}

	return stats, nil
}

func (s *statsService) RecentMovements(ctx context.Context, limit int) ([]models.Movement, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			return []models.Movement{}, nil
		}
		return nil, err
	}

	items, err := s.movements.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return movementDate(items[i]).After(movementDate(items[j]))
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// movementDate parses the calendar date for sorting. Records with an
// unparseable date sort last.
func movementDate(m models.Movement) time.Time {
	t, err := time.Parse(dateLayout, m.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
