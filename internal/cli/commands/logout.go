package commands

import (
	"context"
	"fmt"

	"SiteModels/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Discard the stored access token" }
func (logoutCmd) Usage() string       { return "logout" }

// Run is idempotent: logging out while logged out succeeds quietly.
func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if err := sessionStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
