package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Dashboard(ctx context.Context) error
	AddMovement(ctx context.Context) error
	ListMovements(ctx context.Context) error
	DeleteMovement(ctx context.Context) error
	AddGoal(ctx context.Context) error
	ListGoals(ctx context.Context) error
	AddSavings(ctx context.Context) error
	AddReminder(ctx context.Context) error
	ListReminders(ctx context.Context) error
	CompleteReminder(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	ShowTip(ctx context.Context) error
	ListTips(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, tip, tips, help, exit"
	helpLoggedIn  = "Available commands: dashboard, addmov, movs, delmov, addgoal, goals, save, " +
		"addrem, rems, done, profile, setprofile, passwd, tip, tips, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the FinanzApp CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that need additional input (amounts, dates, ids) prompt for it
// interactively inside the handler. Handler errors are printed here so the
// loop stays resilient and the handlers stay simple.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fz %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "passwd":
			err = a.ChangePassword(ctx)

		case "dashboard":
			err = a.Dashboard(ctx)

		case "addmov":
			err = a.AddMovement(ctx)
		case "movs":
			err = a.ListMovements(ctx)
		case "delmov":
			err = a.DeleteMovement(ctx)

		case "addgoal":
			err = a.AddGoal(ctx)
		case "goals":
			err = a.ListGoals(ctx)
		case "save":
			err = a.AddSavings(ctx)

		case "addrem":
			err = a.AddReminder(ctx)
		case "rems":
			err = a.ListReminders(ctx)
		case "done":
			err = a.CompleteReminder(ctx)

		case "profile":
			err = a.ShowProfile(ctx)
		case "setprofile":
			err = a.UpdateProfile(ctx)

		case "tip":
			err = a.ShowTip(ctx)
		case "tips":
			err = a.ListTips(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
