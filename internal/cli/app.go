package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dcastano/finanzapp/internal/config"
	"github.com/dcastano/finanzapp/internal/logging"
	"github.com/dcastano/finanzapp/internal/repositories/goals"
	"github.com/dcastano/finanzapp/internal/repositories/movements"
	"github.com/dcastano/finanzapp/internal/repositories/profiles"
	"github.com/dcastano/finanzapp/internal/repositories/reminders"
	"github.com/dcastano/finanzapp/internal/repositories/users"
	"github.com/dcastano/finanzapp/internal/services"
	"github.com/dcastano/finanzapp/internal/storage"
)

// App holds the wired services and the interactive input reader.
type App struct {
	config    *config.Config
	log       logging.Logger
	store     storage.Store
	auth      services.AuthService
	movements services.MovementService
	goals     services.GoalService
	reminders services.ReminderService
	profiles  services.ProfileService
	stats     services.StatsService
	reader    *bufio.Reader
	email     string
}

// NewApp opens the local store, runs migrations and seeding, and wires the
// repositories and services together.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.OpenSQLiteStore(ctx, cfg.DatabasePath, log)
	if err != nil {
		log.Error(ctx, "error opening store", "error", err)
		return nil, err
	}
	if err := storage.Initialize(ctx, store); err != nil {
		_ = store.Close()
		return nil, err
	}

	usersRepo := users.NewStoreRepository(store)
	profilesRepo := profiles.NewStoreRepository(store)
	movementsRepo := movements.NewStoreRepository(store)
	goalsRepo := goals.NewStoreRepository(store)
	remindersRepo := reminders.NewStoreRepository(store)

	authSvc := services.NewAuthService(usersRepo, profilesRepo, store, log,
		cfg.SessionSecret, cfg.SessionValidity)

	return &App{
		config:    cfg,
		log:       log,
		store:     store,
		auth:      authSvc,
		movements: services.NewMovementService(movementsRepo, authSvc),
		goals:     services.NewGoalService(goalsRepo, authSvc),
		reminders: services.NewReminderService(remindersRepo, authSvc),
		profiles:  services.NewProfileService(profilesRepo, authSvc),
		stats:     services.NewStatsService(movementsRepo, goalsRepo, authSvc),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session, if any, and blocks in the REPL until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	if user, err := a.auth.CurrentUser(ctx); err == nil {
		a.email = user.Email
	}

	fmt.Println("Welcome to FinanzApp (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.email)
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}
