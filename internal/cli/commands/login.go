package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"SiteModels/internal/cli/api"
	"SiteModels/internal/cli/session"
	"SiteModels/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the access token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]

	client := api.New(cfg.ServerURL, "")
	env, err := client.JSON(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	var payload struct {
		AccessToken         string `json:"accessToken"`
		NeedsPasswordChange bool   `json:"needsPasswordChange"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return fmt.Errorf("decoding login response: %w", err)
	}
	if err := (session.Store{Path: cfg.TokenFile}).Save(payload.AccessToken); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	fmt.Fprintln(Out, "Logged in successfully")
	if payload.NeedsPasswordChange {
		fmt.Fprintln(Out, "Your password must be changed: run change-password")
	}
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
