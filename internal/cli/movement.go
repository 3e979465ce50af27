package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dcastano/finanzapp/internal/services"
)

// optionalPatch turns user input into a patch field: an empty line means
// "leave unchanged".
func optionalPatch(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// AddMovement prompts for the movement form and records it for the
// current user.
func (a *App) AddMovement(ctx context.Context) error {
	kind, err := getSimpleText(a.reader, "Enter kind (ingreso/gasto)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Enter date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Enter notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	movement, err := a.movements.Create(ctx, services.CreateMovementInput{
		Kind:     kind,
		Category: category,
		Amount:   amount,
		Date:     date,
		Notes:    notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s of %.2f (id %s)\n", movement.Kind, movement.Amount, movement.ID)
	return nil
}

// ListMovements prints the current user's movements.
func (a *App) ListMovements(ctx context.Context) error {
	list, err := a.movements.ListForCurrentUser(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No movements yet.")
		return nil
	}
	for _, m := range list {
		fmt.Printf("%s  %s  %-7s %-15s %10.2f  %s\n",
			m.ID, m.Date, m.Kind, m.Category, m.Amount, m.Notes)
	}
	return nil
}

// DeleteMovement prompts for a movement id and removes it. Removing an
// unknown id is a no-op.
func (a *App) DeleteMovement(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter movement id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.movements.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
