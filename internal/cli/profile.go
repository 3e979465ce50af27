package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dcastano/finanzapp/internal/services"
	"github.com/dcastano/finanzapp/internal/shared"
)

// ShowProfile prints the current user's financial profile.
func (a *App) ShowProfile(ctx context.Context) error {
	profile, err := a.profiles.ProfileForCurrentUser(ctx)
	if errors.Is(err, shared.ErrNotFound) {
		fmt.Println("No financial profile yet. Use 'setprofile' to create one.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Monthly income:  %.2f\n", profile.MonthlyIncome)
	fmt.Printf("Savings level:   %.2f\n", profile.SavingsLevel)
	fmt.Printf("Objective:       %s\n", profile.Objective)
	if !profile.UpdatedAt.IsZero() {
		fmt.Printf("Last updated:    %s\n", profile.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// UpdateProfile prompts for the profile fields and applies them. Empty
// answers leave the corresponding field unchanged.
func (a *App) UpdateProfile(ctx context.Context) error {
	income, err := getSimpleText(a.reader, "Enter monthly income (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	level, err := getSimpleText(a.reader, "Enter savings level (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	objective, err := getSimpleText(a.reader, "Enter financial objective (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.profiles.UpdateFinancialProfile(ctx, services.ProfilePatch{
		MonthlyIncome: optionalPatch(income),
		SavingsLevel:  optionalPatch(level),
		Objective:     optionalPatch(objective),
	})
	if err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}
