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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddEntry(ctx context.Context) error
	Feed(ctx context.Context, mode string) error
	Journal(ctx context.Context) error
	Discover(ctx context.Context, query string) error
	Map(ctx context.Context) error
	Leaderboard(ctx context.Context) error
	Stats(ctx context.Context) error
	Like(ctx context.Context, id string) error
	Comment(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on 'a'. The loop exits on scanner EOF or on "exit"/"quit".
//
// Command handlers print their own errors; the loop only reports unknown
// commands, keeping it focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("bv %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed [recent|rating|popular], add, journal,")
				printlnFn("  discover [query], map, leaderboard, stats,")
				printlnFn("  like <id>, comment <id>, delete <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, feed, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.AddEntry(ctx)

		case "f", "feed":
			_ = a.Feed(ctx, arg)

		case "j", "journal":
			_ = a.Journal(ctx)

		case "discover", "search":
			_ = a.Discover(ctx, strings.Join(args, " "))

		case "map":
			_ = a.Map(ctx)

		case "leaderboard", "top":
			_ = a.Leaderboard(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "like":
			_ = a.Like(ctx, arg)

		case "comment":
			_ = a.Comment(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
