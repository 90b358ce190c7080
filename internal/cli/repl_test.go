package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
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
func (f *fakeExec) AddEntry(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}
func (f *fakeExec) Feed(ctx context.Context, mode string) error {
	f.calls = append(f.calls, "feed")
	f.args = append(f.args, mode)
	return nil
}
func (f *fakeExec) Journal(ctx context.Context) error {
	f.calls = append(f.calls, "journal")
	return nil
}
func (f *fakeExec) Discover(ctx context.Context, query string) error {
	f.calls = append(f.calls, "discover")
	f.args = append(f.args, query)
	return nil
}
func (f *fakeExec) Map(ctx context.Context) error {
	f.calls = append(f.calls, "map")
	return nil
}
func (f *fakeExec) Leaderboard(ctx context.Context) error {
	f.calls = append(f.calls, "leaderboard")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return nil
}
func (f *fakeExec) Like(ctx context.Context, id string) error {
	f.calls = append(f.calls, "like")
	f.args = append(f.args, id)
	return nil
}
func (f *fakeExec) Comment(ctx context.Context, id string) error {
	f.calls = append(f.calls, "comment")
	f.args = append(f.args, id)
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	f.args = append(f.args, id)
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"add",
		"feed rating",
		"f",
		"discover hazy ipa",
		"j",
		"top",
		"like e1",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "add", "feed", "feed", "discover", "journal", "leaderboard", "like"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

	wantArgs := []string{"rating", "", "hazy ipa", "e1"}
	for i, want := range wantArgs {
		if i >= len(exec.args) || exec.args[i] != want {
			t.Fatalf("args mismatch: got %v, want %v", exec.args, wantArgs)
		}
	}
}

func TestRunREPL_EmptyLinesAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("map\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "map" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
