package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dcastano/finanzapp/internal/services"
)

// AddGoal prompts for the goal form and creates a savings goal for the
// current user.
func (a *App) AddGoal(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter goal name", os.Stdout)
	if err != nil {
		return err
	}
	target, err := getSimpleText(a.reader, "Enter target amount", os.Stdout)
	if err != nil {
		return err
	}
	saved, err := getSimpleText(a.reader, "Enter starting savings (optional)", os.Stdout)
	if err != nil {
		return err
	}
	startDate, err := getSimpleText(a.reader, "Enter start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	deadline, err := getSimpleText(a.reader, "Enter deadline (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Enter notes (optional)", os.Stdout)
	if err != nil {
		return err
	}
	icon, err := getSimpleText(a.reader, "Enter icon (optional)", os.Stdout)
	if err != nil {
		return err
	}

	goal, err := a.goals.Create(ctx, services.CreateGoalInput{
		Name:      name,
		Target:    target,
		Saved:     saved,
		StartDate: startDate,
		Deadline:  deadline,
		Notes:     notes,
		Icon:      icon,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Goal %q created (id %s)\n", goal.Name, goal.ID)
	return nil
}

// ListGoals prints the current user's savings goals with progress.
func (a *App) ListGoals(ctx context.Context) error {
	list, err := a.goals.ListForCurrentUser(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No goals yet.")
		return nil
	}
	for _, g := range list {
		progress := 0.0
		if g.Target > 0 {
			progress = g.Saved / g.Target * 100
		}
		fmt.Printf("%s  %-20s %10.2f / %-10.2f (%.0f%%)  %-12s due %s\n",
			g.ID, g.Name, g.Saved, g.Target, progress, g.Status, g.Deadline)
	}
	return nil
}

// AddSavings prompts for a goal id and an amount, then adds the amount to
// the goal's saved total.
func (a *App) AddSavings(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter goal id", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getSimpleText(a.reader, "Enter amount to add", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.goals.AddSavings(ctx, id, amount); err != nil {
		return err
	}
	fmt.Println("Savings added.")
	return nil
}
