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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Validate(ctx context.Context) error
	Refuse(ctx context.Context) error
	Lookup(ctx context.Context) error
	Pending(ctx context.Context) error
	Delete(ctx context.Context) error
	Clear(ctx context.Context) error
	Conflicts(ctx context.Context) error
	Dismiss(ctx context.Context) error
	Sync(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the agent terminal.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - validate       — capture a VALIDATED decision
//	  - refuse         — capture a REFUSED decision
//	  - lookup         — fetch a bordereau online by number
//	  - pending | p    — list buffered decisions
//	  - delete         — delete one buffered decision
//	  - clear          — delete all buffered decisions
//	  - conflicts      — list decisions rejected as already decided
//	  - dismiss        — acknowledge and remove a conflict
//	  - sync           — push the buffer to the server in one batch
//	  - status         — show agent, mode and buffer counters
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tf> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: validate, refuse, lookup, (p)ending, delete, clear, conflicts, dismiss, sync, status, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "validate":
			_ = a.Validate(ctx)

		case "refuse":
			_ = a.Refuse(ctx)

		case "lookup":
			_ = a.Lookup(ctx)

		case "p", "pending":
			_ = a.Pending(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "conflicts":
			_ = a.Conflicts(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
