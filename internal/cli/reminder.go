package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dcastano/finanzapp/internal/services"
)

// AddReminder prompts for the reminder form and creates a pending reminder
// for the current user.
func (a *App) AddReminder(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Enter date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	timeOfDay, err := getSimpleText(a.reader, "Enter time (HH:MM, optional)", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getSimpleText(a.reader, "Enter amount (optional)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Enter category (optional)", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Enter notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	reminder, err := a.reminders.Create(ctx, services.CreateReminderInput{
		Title:    title,
		Notes:    notes,
		Date:     date,
		Time:     timeOfDay,
		Amount:   amount,
		Category: category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Reminder %q created (id %s)\n", reminder.Title, reminder.ID)
	return nil
}

// ListReminders prints the current user's reminders.
func (a *App) ListReminders(ctx context.Context) error {
	list, err := a.reminders.ListForCurrentUser(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No reminders yet.")
		return nil
	}
	for _, r := range list {
		fmt.Printf("%s  %s %-5s  %-25s %-12s %s\n",
			r.ID, r.Date, r.Time, r.Title, r.Category, r.Status)
	}
	return nil
}

// CompleteReminder prompts for a reminder id and marks it completed.
func (a *App) CompleteReminder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter reminder id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.reminders.Complete(ctx, id); err != nil {
		return err
	}
	fmt.Println("Marked as completed.")
	return nil
}
