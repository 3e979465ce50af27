package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) ChangePassword(ctx context.Context) error {
	f.calls = append(f.calls, "passwd")
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) AddMovement(ctx context.Context) error {
	f.calls = append(f.calls, "addmov")
	return nil
}
func (f *fakeExec) ListMovements(ctx context.Context) error {
	f.calls = append(f.calls, "movs")
	return nil
}
func (f *fakeExec) DeleteMovement(ctx context.Context) error {
	f.calls = append(f.calls, "delmov")
	return nil
}
func (f *fakeExec) AddGoal(ctx context.Context) error {
	f.calls = append(f.calls, "addgoal")
	return nil
}
func (f *fakeExec) ListGoals(ctx context.Context) error {
	f.calls = append(f.calls, "goals")
	return nil
}
func (f *fakeExec) AddSavings(ctx context.Context) error {
	f.calls = append(f.calls, "save")
	return nil
}
func (f *fakeExec) AddReminder(ctx context.Context) error {
	f.calls = append(f.calls, "addrem")
	return nil
}
func (f *fakeExec) ListReminders(ctx context.Context) error {
	f.calls = append(f.calls, "rems")
	return nil
}
func (f *fakeExec) CompleteReminder(ctx context.Context) error {
	f.calls = append(f.calls, "done")
	return nil
}
func (f *fakeExec) ShowProfile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) UpdateProfile(ctx context.Context) error {
	f.calls = append(f.calls, "setprofile")
	return nil
}
func (f *fakeExec) ShowTip(ctx context.Context) error {
	f.calls = append(f.calls, "tip")
	return nil
}
func (f *fakeExec) ListTips(ctx context.Context) error {
	f.calls = append(f.calls, "tips")
	return nil
}

func muteREPLOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteREPLOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"addmov",
		"movs",
		"dashboard",
		"tip",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "addmov", "movs", "dashboard", "tip", "logout"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_QuitWithoutCommands(t *testing.T) {
	muteREPLOutput(t)

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	muteREPLOutput(t)

	input := strings.NewReader("goals")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "goals" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
