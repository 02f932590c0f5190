package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"SiteModels/internal/config"
)

// Process exit codes. exitUsage covers everything the user typed wrong,
// exitFailed covers commands that ran and reported an error.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// Dispatch resolves args[0] to a registered command, runs it and maps the
// result to a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if globalHelpRequested() {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" {
		return runHelp(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		return unknownCommand(name)
	}

	switch err := c.Run(ctx, cfg, args[1:]); {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitFailed
	}
}

// globalHelpRequested reports whether -h/--help appeared anywhere on the
// command line, including before the subcommand.
func globalHelpRequested() bool {
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}

// runHelp handles "smcli help" and "smcli help <command>".
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	c, ok := Get(args[0])
	if !ok {
		return unknownCommand(args[0])
	}
	fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
	return exitOK
}

func unknownCommand(name string) int {
	fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
	fmt.Fprint(Out, FormatGlobalUsage())
	return exitUsage
}
