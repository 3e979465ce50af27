package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/finanzapp/internal/logging"
	"github.com/dcastano/finanzapp/internal/repositories/goals"
	"github.com/dcastano/finanzapp/internal/repositories/movements"
	"github.com/dcastano/finanzapp/internal/repositories/profiles"
	"github.com/dcastano/finanzapp/internal/repositories/reminders"
	"github.com/dcastano/finanzapp/internal/repositories/users"
	"github.com/dcastano/finanzapp/internal/services"
	"github.com/dcastano/finanzapp/internal/storage"
)

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// stubPassword makes every password prompt in the test return pw.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(prompt string, w io.Writer) ([]byte, error) {
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	store := storage.NewMemoryStore()
	require.NoError(t, storage.Initialize(context.Background(), store))
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	usersRepo := users.NewStoreRepository(store)
	profilesRepo := profiles.NewStoreRepository(store)
	movementsRepo := movements.NewStoreRepository(store)
	goalsRepo := goals.NewStoreRepository(store)
	remindersRepo := reminders.NewStoreRepository(store)

	authSvc := services.NewAuthService(usersRepo, profilesRepo, store, log,
		"test-secret", time.Hour)

	return &App{
		log:       log,
		store:     store,
		auth:      authSvc,
		movements: services.NewMovementService(movementsRepo, authSvc),
		goals:     services.NewGoalService(goalsRepo, authSvc),
		reminders: services.NewReminderService(remindersRepo, authSvc),
		profiles:  services.NewProfileService(profilesRepo, authSvc),
		stats:     services.NewStatsService(movementsRepo, goalsRepo, authSvc),
	}
}

func registerTestUser(t *testing.T, app *App, email string) {
	t.Helper()
	app.reader = readerFromLines(
		"Ana",        // first name
		"García",     // last name
		email,        // email
		"3001234567", // phone
		"CC",         // identity type
		"1234567890", // identity number
	)
	require.NoError(t, app.Register(context.Background()))
}

func loginTestUser(t *testing.T, app *App, email string) {
	t.Helper()
	app.reader = readerFromLines(email)
	require.NoError(t, app.Login(context.Background()))
}

func TestRegisterThenLogin(t *testing.T) {
	stubPassword(t, "secret1")
	app := newTestApp(t)
	ctx := context.Background()

	registerTestUser(t, app, "ana@example.com")
	// Registration alone must not open a session.
	assert.False(t, app.isLoggedIn())

	loginTestUser(t, app, "ana@example.com")
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "(ana@example.com) ", app.getStatus())

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "", app.getStatus())
}

func TestAddMovementCommand(t *testing.T) {
	stubPassword(t, "secret1")
	app := newTestApp(t)
	ctx := context.Background()

	registerTestUser(t, app, "ana@example.com")
	loginTestUser(t, app, "ana@example.com")

	app.reader = readerFromLines(
		"ingreso",    // kind
		"salario",    // category
		"100000",     // amount
		"2025-03-01", // date
		"nómina",     // notes
	)
	require.NoError(t, app.AddMovement(ctx))

	list, err := app.movements.ListForCurrentUser(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 100000.0, list[0].Amount)
	assert.Equal(t, "salario", list[0].Category)
}

func TestAddGoalAndSavingsCommands(t *testing.T) {
	stubPassword(t, "secret1")
	app := newTestApp(t)
	ctx := context.Background()

	registerTestUser(t, app, "ana@example.com")
	loginTestUser(t, app, "ana@example.com")

	app.reader = readerFromLines(
		"Viaje",      // name
		"1000",       // target
		"",           // starting savings
		"2025-01-01", // start date
		"2025-12-31", // deadline
		"",           // notes
		"",           // icon
	)
	require.NoError(t, app.AddGoal(ctx))

	list, err := app.goals.ListForCurrentUser(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	app.reader = readerFromLines(list[0].ID, "250")
	require.NoError(t, app.AddSavings(ctx))

	list, err = app.goals.ListForCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250.0, list[0].Saved)
}

func TestCommandsRequireSession(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.reader = readerFromLines(
		"gasto", "transporte", "100", "2025-03-01", "",
	)
	assert.Error(t, app.AddMovement(ctx))

	require.NoError(t, app.ListMovements(ctx)) // prints "No movements yet."
	assert.Error(t, app.Dashboard(ctx))
}

func TestUpdateProfileCommandKeepsEmptyFields(t *testing.T) {
	stubPassword(t, "secret1")
	app := newTestApp(t)
	ctx := context.Background()

	registerTestUser(t, app, "ana@example.com")
	loginTestUser(t, app, "ana@example.com")

	app.reader = readerFromLines("2500000", "", "comprar vivienda")
	require.NoError(t, app.UpdateProfile(ctx))

	profile, err := app.profiles.ProfileForCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2500000.0, profile.MonthlyIncome)
	assert.Equal(t, 0.0, profile.SavingsLevel)
	assert.Equal(t, "comprar vivienda", profile.Objective)
}

func TestTipCommands(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	origNow := nowFn
	nowFn = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFn = origNow })

	require.NoError(t, app.ShowTip(ctx))

	app.reader = readerFromLines("ahorro")
	require.NoError(t, app.ListTips(ctx))

	app.reader = readerFromLines("no-such-category")
	require.NoError(t, app.ListTips(ctx))
}
