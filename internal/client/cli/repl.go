package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	Select(ctx context.Context, path string) error
	Upload(ctx context.Context) error
	Status(ctx context.Context, wait bool) error
	Submit(ctx context.Context) error
	Dashboard(ctx context.Context, month string) error
	Current(ctx context.Context) error
}

const helpText = `Available commands:
  select <path>        choose a CSV file for bulk upload
  upload               upload the selected file and track its job
  status [--wait]      show the upload job (optionally wait until it ends)
  submit               submit a single monthly report
  dashboard [YYYY-MM]  show aggregates of a month
  current              show aggregates of the current month
  exit | quit          leave the program`

// runREPL reads one command per line from reader and dispatches it to a.
//
// The first token is the command; the rest of the line are its arguments.
// Unknown commands are reported back to the user. The loop ends on EOF, on
// "exit" or "quit", or when ctx is cancelled.
//
// Errors returned by command handlers are ignored here; handlers print
// their own user-facing message, so a failed command never ends the loop.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn("ngo> ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "select":
			_ = a.Select(ctx, strings.Join(args, " "))

		case "upload":
			_ = a.Upload(ctx)

		case "status":
			wait := len(args) > 0 && (args[0] == "--wait" || args[0] == "-w")
			_ = a.Status(ctx, wait)

		case "submit":
			_ = a.Submit(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx, strings.Join(args, " "))

		case "current":
			_ = a.Current(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
