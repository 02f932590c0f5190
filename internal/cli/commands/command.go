package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"SiteModels/internal/config"
)

// ErrUsage signals that a command got invalid arguments. The dispatcher
// responds by printing the command's usage line, so commands never have to.
var ErrUsage = errors.New("usage")

// Command is a single smcli subcommand, e.g. "login" or "list".
type Command interface {
	// Name is the word the user types to invoke the command.
	Name() string
	// Description is the one-line summary shown in global help.
	Description() string
	// Usage is the argument synopsis, e.g. "delete <resource> <id>".
	Usage() string
	// Run executes the command. args excludes the command name itself.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// Swap points for tests: all user-facing output goes through Out,
// interactive prompts read from In.
var (
	Out io.Writer = os.Stdout
	In  io.Reader = os.Stdin
)

var registry = map[string]Command{}

// RegisterCmd adds a command to the registry; each command file calls it
// from init(). Registering the same name twice keeps the last one.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get looks up a registered command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns every registered command in name order.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage renders the global help: the invocation synopsis
// followed by a usage line per command.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("SiteModels catalog CLI\n\n")
	b.WriteString("Usage:\n  smcli [--base-url <host:port>|URL] <command> [args]\n\n")
	b.WriteString("Commands:\n")
	for _, c := range List() {
		fmt.Fprintf(&b, "  %-28s %s\n", c.Usage(), c.Description())
	}
	return b.String()
}
