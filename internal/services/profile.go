package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/repositories/profiles"
	"github.com/dcastano/finanzapp/internal/shared"
)

// ProfilePatch updates the current user's financial profile. Nil fields are
// left unchanged. Numbers arrive as raw text and are validated here.
type ProfilePatch struct {
	MonthlyIncome *string
	SavingsLevel  *string
	Objective     *string
}

// ProfileService manages the per-user financial profile. Writes follow
// upsert semantics: the profile is created on first write when registration
// somehow left none behind.
type ProfileService interface {
	ProfileForCurrentUser(ctx context.Context) (*models.FinancialProfile, error)
	UpdateFinancialProfile(ctx context.Context, patch ProfilePatch) (*models.FinancialProfile, error)
}

type profileService struct {
	repo    profiles.Repository
	session SessionReader
}

func NewProfileService(repo profiles.Repository, session SessionReader) ProfileService {
	return &profileService{repo: repo, session: session}
}

func (s *profileService) ProfileForCurrentUser(ctx context.Context) (*models.FinancialProfile, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByUserID(ctx, user.ID)
}

func (s *profileService) UpdateFinancialProfile(ctx context.Context, patch ProfilePatch) (*models.FinancialProfile, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.FindByUserID(ctx, user.ID)
	if errors.Is(err, shared.ErrNotFound) {
		profile = &models.FinancialProfile{
			ID:     uuid.NewString(),
			UserID: user.ID,
		}
	} else if err != nil {
		return nil, err
	}

	if patch.MonthlyIncome != nil {
		income, err := parseAmount(*patch.MonthlyIncome)
		if err != nil {
			return nil, err
		}
		profile.MonthlyIncome = income
	}
	if patch.SavingsLevel != nil {
		level, err := parseAmount(*patch.SavingsLevel)
		if err != nil {
			return nil, err
		}
		profile.SavingsLevel = level
	}
	if patch.Objective != nil {
		profile.Objective = *patch.Objective
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}
