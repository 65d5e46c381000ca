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
	List(ctx context.Context, args []string) error
	Show(ctx context.Context) error
	Admin(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Contact(ctx context.Context) error
	Inbox(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the reflections CLI.
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
//	Anonymous:
//	  - help               — show available commands
//	  - list [category]    — list published reflections
//	  - show               — read one reflection (interactive ID prompt)
//	  - contact            — send a message through the contact form
//	  - login              — authenticate as admin
//	  - exit | quit        — leave the program
//
//	Admin:
//	  - everything above, plus:
//	  - admin              — list all reflections, drafts included
//	  - new                — create a reflection
//	  - edit               — edit a reflection (interactive ID prompt)
//	  - delete             — delete a reflection, with confirmation
//	  - inbox              — list contact submissions
//	  - stats              — dashboard summary
//	  - logout             — end the admin session
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("refl %s> ", statusFn()))
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

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [category], show, admin, new, edit, delete, contact, inbox, stats, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist [category], show, contact, login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "show":
			_ = a.Show(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "new":
			_ = a.New(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "inbox":
			_ = a.Inbox(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
