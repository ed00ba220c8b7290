package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	state(ctx context.Context) (session.State, models.Role)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error

	Browse(ctx context.Context) error
	Search(ctx context.Context) error
	Cities(ctx context.Context) error
	Amenities(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Cheapest(ctx context.Context, n string) error
	Priciest(ctx context.Context, n string) error
	Range(ctx context.Context, min, max string) error
	Sorted(ctx context.Context, order string) error

	Mine(ctx context.Context) error
	Publish(ctx context.Context) error
	Availability(ctx context.Context, id, value string) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the StayKonnect CLI.
//
// It reads a line from reader, parses the first token as the command, checks
// it against the session state and role, and dispatches to methods on 'a'.
// Unknown or unavailable commands are reported back to the user. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are printed as user-facing messages
// (see userMessage); the loop keeps running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		if cmd == "quit" {
			cmd = "exit"
		}

		def, ok := lookupCommand(cmd)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		st, role := a.state(ctx)
		if !allowed(def.access, st, role) {
			printlnFn("Command not available:", cmd)
			continue
		}

		if cmd == "exit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, def, args, st, role); err != nil {
			printlnFn(userMessage(err))
		}
	}
}

func dispatch(ctx context.Context, a execIface, def commandDef, args []string, st session.State, role models.Role) error {
	argOr := func(n int, fallback string) string {
		if n < len(args) {
			return args[n]
		}
		return fallback
	}

	switch def.name {
	case "help":
		printlnFn(helpText(st, role))
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "profile":
		return a.Profile(ctx)
	case "browse":
		return a.Browse(ctx)
	case "search":
		return a.Search(ctx)
	case "cities":
		return a.Cities(ctx)
	case "amenities":
		return a.Amenities(ctx)
	case "show":
		if len(args) < 1 {
			printlnFn("Usage:", def.usage)
			return nil
		}
		return a.Show(ctx, args[0])
	case "cheapest":
		return a.Cheapest(ctx, argOr(0, ""))
	case "priciest":
		return a.Priciest(ctx, argOr(0, ""))
	case "range":
		if len(args) < 2 {
			printlnFn("Usage:", def.usage)
			return nil
		}
		return a.Range(ctx, args[0], args[1])
	case "sorted":
		return a.Sorted(ctx, argOr(0, "asc"))
	case "mine":
		return a.Mine(ctx)
	case "publish":
		return a.Publish(ctx)
	case "availability":
		if len(args) < 2 {
			printlnFn("Usage:", def.usage)
			return nil
		}
		return a.Availability(ctx, args[0], args[1])
	case "stats":
		return a.Stats(ctx)
	default:
		printlnFn("Unknown command:", def.name)
		return nil
	}
}
