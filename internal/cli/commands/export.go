package commands

import (
	"context"
	"fmt"
	"os"

	"SiteModels/internal/config"
)

type exportCmd struct{}

func (exportCmd) Name() string        { return "export" }
func (exportCmd) Description() string { return "Download the product catalog as xlsx (admin only)" }
func (exportCmd) Usage() string       { return "export [<output-file>]" }

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	out := "products.xlsx"
	if len(args) > 0 {
		out = args[0]
	}

	data, err := apiClient(cfg).Download("/api/v1/products/export")
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved %d bytes to %s\n", len(data), out)
	return nil
}

func init() { RegisterCmd(exportCmd{}) }
