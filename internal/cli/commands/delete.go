package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"SiteModels/internal/cli/resource"
	"SiteModels/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Soft-delete a resource (admin only)" }
func (deleteCmd) Usage() string       { return "delete <resource> <id> [--yes]" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	d, ok := resource.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown resource: %s", args[0])
	}
	id := args[1]

	confirmed := len(args) > 2 && args[2] == "--yes"
	if !confirmed {
		fmt.Fprintf(Out, "Delete %s %s? [y/N]: ", d.Name, id)
		line, _ := bufio.NewReader(In).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(Out, "Cancelled")
			return nil
		}
	}

	client, done, err := resourceClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	message, err := client.Delete(d, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, message)
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
