// Package cli implements the StayKonnect terminal client.
//
// # Overview
//
// The client is a cobra command tree (see NewRootCommand) whose default
// action is an interactive REPL. One-shot subcommands print the index
// showcase (demo), run a search (search) or print catalog statistics
// (stats). Every command builds an App: configuration, logger, stores,
// session and services wired once for the lifetime of the process, with the
// demonstration catalog loaded unless disabled.
//
// # REPL commands
//
//	Anonymous:
//	  help, register, login, exit | quit
//
//	Signed in (any role):
//	  logout, whoami, profile, browse, search, cities, amenities, show <id>,
//	  cheapest [n], priciest [n], range <min> <max>, sorted [asc|desc]
//
//	Hosts and admins:
//	  mine, publish, availability <id> on|off
//
//	Admins:
//	  stats
//
// Commands outside the current session state or role are refused before
// they run. Property ids may be abbreviated to any unique prefix of at least
// four characters.
//
// # Testing hooks
//
// getSimpleText, getPassword, getMultiline and getList point at the
// interactive helpers in input.go; readPassword and isTerminal wrap
// golang.org/x/term; printlnFn wraps the REPL's output. Tests swap them for
// stubs.
package cli
