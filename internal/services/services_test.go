package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dcastano/finanzapp/internal/logging"
	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/repositories/goals"
	"github.com/dcastano/finanzapp/internal/repositories/movements"
	"github.com/dcastano/finanzapp/internal/repositories/profiles"
	"github.com/dcastano/finanzapp/internal/repositories/reminders"
	"github.com/dcastano/finanzapp/internal/repositories/users"
	"github.com/dcastano/finanzapp/internal/storage"
)

const testSecret = "test-secret"

type testEnv struct {
	store     *storage.MemoryStore
	auth      AuthService
	movements MovementService
	goals     GoalService
	reminders ReminderService
	profiles  ProfileService
	stats     StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	require.NoError(t, storage.Initialize(context.Background(), store))

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	usersRepo := users.NewStoreRepository(store)
	profilesRepo := profiles.NewStoreRepository(store)
	movementsRepo := movements.NewStoreRepository(store)
	goalsRepo := goals.NewStoreRepository(store)
	remindersRepo := reminders.NewStoreRepository(store)

	authSvc := NewAuthService(usersRepo, profilesRepo, store, log, testSecret, time.Hour)

	return &testEnv{
		store:     store,
		auth:      authSvc,
		movements: NewMovementService(movementsRepo, authSvc),
		goals:     NewGoalService(goalsRepo, authSvc),
		reminders: NewReminderService(remindersRepo, authSvc),
		profiles:  NewProfileService(profilesRepo, authSvc),
		stats:     NewStatsService(movementsRepo, goalsRepo, authSvc),
	}
}

func registerInput(email string) RegisterInput {
	return RegisterInput{
		FirstName:      "Ana",
		LastName:       "García",
		Email:          email,
		Password:       "secret1",
		Phone:          "3001234567",
		IdentityNumber: "1234567890",
		IdentityType:   "CC",
	}
}

// registerAndLogin creates an account and opens a session for it.
func registerAndLogin(t *testing.T, env *testEnv, email string) *models.User {
	t.Helper()

	_, err := env.auth.Register(context.Background(), registerInput(email))
	require.NoError(t, err)

	user, err := env.auth.Login(context.Background(), email, "secret1")
	require.NoError(t, err)
	return user
}
