package cli

import (
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/session"
)

// access tells who may run a REPL command.
type access int

const (
	anyone access = iota
	anonymousOnly
	signedIn
	publishers
	admins
)

type commandDef struct {
	name   string
	usage  string
	access access
}

// commands lists the REPL commands in help order.
var commands = []commandDef{
	{"help", "help", anyone},
	{"register", "register", anonymousOnly},
	{"login", "login", anonymousOnly},
	{"logout", "logout", signedIn},
	{"whoami", "whoami", signedIn},
	{"profile", "profile", signedIn},
	{"browse", "browse", signedIn},
	{"search", "search", signedIn},
	{"cities", "cities", signedIn},
	{"amenities", "amenities", signedIn},
	{"show", "show <id>", signedIn},
	{"cheapest", "cheapest [n]", signedIn},
	{"priciest", "priciest [n]", signedIn},
	{"range", "range <min> <max>", signedIn},
	{"sorted", "sorted [asc|desc]", signedIn},
	{"mine", "mine", publishers},
	{"publish", "publish", publishers},
	{"availability", "availability <id> on|off", publishers},
	{"stats", "stats", admins},
	{"exit", "exit", anyone},
}

func lookupCommand(name string) (commandDef, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return commandDef{}, false
}

// allowed reports whether a command with the given access can run in the
// current session state.
func allowed(a access, st session.State, role models.Role) bool {
	switch a {
	case anyone:
		return true
	case anonymousOnly:
		return st == session.Anonymous
	case signedIn:
		return st == session.Authenticated
	case publishers:
		return st == session.Authenticated && role.CanPublish()
	case admins:
		return st == session.Authenticated && role.CanManageAll()
	default:
		return false
	}
}

// helpText lists the commands available in the current state.
func helpText(st session.State, role models.Role) string {
	var names []string
	for _, c := range commands {
		if allowed(c.access, st, role) {
			names = append(names, c.usage)
		}
	}
	return "Available commands: " + strings.Join(names, ", ")
}
