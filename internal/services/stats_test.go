package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/shared"
)

func TestDashboardStatsRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.stats.DashboardStats(context.Background())
	assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerAndLogin(t, env, "ana@example.com")

	_, err := env.movements.Create(ctx, movementInput(models.MovementIncome, "100000", "2025-03-01"))
	require.NoError(t, err)
	_, err = env.movements.Create(ctx, movementInput(models.MovementExpense, "40000", "2025-03-02"))
	require.NoError(t, err)
	_, err = env.goals.Create(ctx, goalInput("1000000", "250000"))
	require.NoError(t, err)
	_, err = env.goals.Create(ctx, goalInput("500000", "50000"))
	require.NoError(t, err)

	stats, err := env.stats.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100000.0, stats.Income)
	assert.Equal(t, 40000.0, stats.Expenses)
	assert.Equal(t, 60000.0, stats.Balance)
	assert.Equal(t, 300000.0, stats.TotalSaved)
	assert.Equal(t, 2, stats.MovementCount)
	assert.Equal(t, 2, stats.GoalCount)

	// A fresh account sees only its own (empty) data.
	registerAndLogin(t, env, "luis@example.com")
	stats, err = env.stats.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.Balance)
	assert.Equal(t, 0, stats.MovementCount)
	assert.Equal(t, 0, stats.GoalCount)
}

func TestRecentMovementsOrderAndLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerAndLogin(t, env, "ana@example.com")

	dates := []string{
		"2025-03-03", "2025-03-01", "2025-03-07",
		"2025-03-05", "2025-03-02", "2025-03-06", "2025-03-04",
	}
	for _, d := range dates {
		_, err := env.movements.Create(ctx, movementInput(models.MovementExpense, "10", d))
		require.NoError(t, err)
	}

	recent, err := env.stats.RecentMovements(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "2025-03-07", recent[0].Date)
	assert.Equal(t, "2025-03-06", recent[1].Date)
	assert.Equal(t, "2025-03-05", recent[2].Date)

	// Non-positive limits fall back to the default window.
	recent, err = env.stats.RecentMovements(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recent, DefaultRecentLimit)

	recent, err = env.stats.RecentMovements(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, recent, len(dates))
}

func TestRecentMovementsStableForEqualDates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerAndLogin(t, env, "ana@example.com")

	var created []string
	for i := 0; i < 3; i++ {
		input := movementInput(models.MovementExpense, "10", "2025-03-01")
		input.Notes = fmt.Sprintf("gasto %d", i)
		m, err := env.movements.Create(ctx, input)
		require.NoError(t, err)
		created = append(created, m.ID)
	}

	recent, err := env.stats.RecentMovements(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	for i, id := range created {
		assert.Equal(t, id, recent[i].ID)
	}
}

func TestRecentMovementsWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	recent, err := env.stats.RecentMovements(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, recent)
	assert.Empty(t, recent)
}
