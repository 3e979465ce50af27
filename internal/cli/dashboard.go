package cli

import (
	"context"
	"fmt"
)

// Dashboard prints the aggregate totals plus the most recent movements.
func (a *App) Dashboard(ctx context.Context) error {
	stats, err := a.stats.DashboardStats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Income:     %12.2f\n", stats.Income)
	fmt.Printf("Expenses:   %12.2f\n", stats.Expenses)
	fmt.Printf("Balance:    %12.2f\n", stats.Balance)
	fmt.Printf("Saved:      %12.2f\n", stats.TotalSaved)
	fmt.Printf("Movements:  %d   Goals: %d\n", stats.MovementCount, stats.GoalCount)

	recent, err := a.stats.RecentMovements(ctx, 0)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Println("Recent movements:")
	for _, m := range recent {
		fmt.Printf("  %s  %-7s %-15s %10.2f\n", m.Date, m.Kind, m.Category, m.Amount)
	}
	return nil
}
