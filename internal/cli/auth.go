package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dcastano/finanzapp/internal/services"
	"github.com/dcastano/finanzapp/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form and creates a new account.
// The new account is not logged in automatically; the user is asked to
// run login afterwards.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}
	identityType, err := getSimpleText(a.reader, "Enter identity document type (CC, CE, TI, PP)", os.Stdout)
	if err != nil {
		return err
	}
	identityNumber, err := getSimpleText(a.reader, "Enter identity document number", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	_, err = a.auth.Register(ctx, services.RegisterInput{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Password:       string(password),
		Phone:          phone,
		IdentityNumber: identityNumber,
		IdentityType:   identityType,
	})
	if err != nil {
		return err
	}

	fmt.Println("Account created. Use 'login' to start a session.")
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.email = user.Email
	fmt.Printf("Welcome, %s!\n", user.FirstName)
	return nil
}

// Logout drops the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.email = ""
	fmt.Println("Logged out.")
	return nil
}

// ChangePassword prompts for the current and new passwords and rotates the
// account credential.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Enter current password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(current)

	next, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(next)

	if err := a.auth.ChangePassword(ctx, string(current), string(next)); err != nil {
		return err
	}

	fmt.Println("Password updated.")
	return nil
}
