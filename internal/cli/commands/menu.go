package commands

import (
	"context"
	"fmt"

	"SiteModels/internal/cli/menu"
	"SiteModels/internal/config"
)

type menuCmd struct{}

func (menuCmd) Name() string        { return "menu" }
func (menuCmd) Description() string { return "Show navigation available to the current role" }
func (menuCmd) Usage() string       { return "menu" }

// Run prints the public menu, extended by the role-derived entries
// when a session is present.
func (menuCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	role := ""
	if sess := sessionStore(cfg).Current(); sess != nil {
		role = sess.Role
	}
	items := append(menu.Public(), menu.Compute(role)...)
	for _, item := range items {
		fmt.Fprintf(Out, "%-26s %s\n", item.Label, item.Path)
	}
	return nil
}

func init() { RegisterCmd(menuCmd{}) }
