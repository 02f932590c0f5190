package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"SiteModels/internal/config"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the current user and profile" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	sess := sessionStore(cfg).Current()
	if sess == nil {
		return errNotLoggedIn
	}

	fmt.Fprintf(Out, "Email: %s\nRole:  %s\n", sess.Email, sess.Role)

	env, err := apiClient(cfg).Get("/api/v1/users/me")
	if err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(json.RawMessage(env.Data), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, string(pretty))
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
