package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"SiteModels/internal/cli/resource"
	"SiteModels/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List a resource page (cached locally)" }
func (listCmd) Usage() string {
	return "list <resource> [--page N] [--limit N] [--category C] [--code PREFIX]"
}

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	d, ok := resource.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown resource: %s", args[0])
	}

	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 10, "page size")
	category := fs.String("category", "", "product category filter")
	code := fs.String("code", "", "codeNumber prefix filter")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(*page))
	query.Set("limit", strconv.Itoa(*limit))
	if *category != "" {
		query.Set("category", *category)
	}
	if *code != "" {
		query.Set("codeNumber", *code)
	}

	client, done, err := resourceClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	result, err := client.List(d, query)
	if err != nil {
		return err
	}
	printTable(d, result.Items)
	if result.Meta != nil {
		fmt.Fprintf(Out, "page %d of %d items (limit %d)\n",
			result.Meta.Page, result.Meta.Total, result.Meta.Limit)
	}
	return nil
}

func init() { RegisterCmd(listCmd{}) }
