package commands

import (
	"context"
	"fmt"
	"net/http"

	"SiteModels/internal/config"
)

type changePasswordCmd struct{}

func (changePasswordCmd) Name() string        { return "change-password" }
func (changePasswordCmd) Description() string { return "Change the current user's password" }
func (changePasswordCmd) Usage() string       { return "change-password <old> <new>" }

func (changePasswordCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	if !sessionStore(cfg).IsLoggedIn() {
		return errNotLoggedIn
	}

	env, err := apiClient(cfg).JSON(http.MethodPost, "/api/v1/auth/change-password", map[string]string{
		"oldPassword": args[0],
		"newPassword": args[1],
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, env.Message)
	return nil
}

func init() { RegisterCmd(changePasswordCmd{}) }
