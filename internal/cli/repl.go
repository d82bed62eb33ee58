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
	ListUsers(ctx context.Context) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error

	ListBooks(ctx context.Context) error
	AddBook(ctx context.Context) error
	EditBook(ctx context.Context) error
	DeleteBook(ctx context.Context) error

	ListReservations(ctx context.Context) error
	AddReservation(ctx context.Context) error
	EditReservation(ctx context.Context) error
	DeleteReservation(ctx context.Context) error
	FindByDocument(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on read error/EOF or when the user types
// "exit" or "quit".
//
// Listing commands ("list", "find") are the only paths that evaluate due-soon
// reminders, matching the refresh-driven behavior of the tool: no background
// timer exists.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn("libr> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Reservations: (l)ist, reserve, editres, delres, find")
			printlnFn("Users:        users, adduser, edituser, deluser")
			printlnFn("Books:        books, addbook, editbook, delbook")
			printlnFn("Other:        help, exit")

		case "users":
			_ = a.ListUsers(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "edituser":
			_ = a.EditUser(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx)

		case "books":
			_ = a.ListBooks(ctx)

		case "addbook":
			_ = a.AddBook(ctx)

		case "editbook":
			_ = a.EditBook(ctx)

		case "delbook":
			_ = a.DeleteBook(ctx)

		case "l", "list":
			_ = a.ListReservations(ctx)

		case "reserve":
			_ = a.AddReservation(ctx)

		case "editres":
			_ = a.EditReservation(ctx)

		case "delres":
			_ = a.DeleteReservation(ctx)

		case "find":
			_ = a.FindByDocument(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
