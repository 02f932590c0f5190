package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"SiteModels/internal/cli/resource"
	"SiteModels/internal/cli/video"
	"SiteModels/internal/config"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Show one resource by id" }
func (getCmd) Usage() string       { return "get <resource> <id>" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	d, ok := resource.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown resource: %s", args[0])
	}

	client, done, err := resourceClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	item, err := client.Get(d, args[1])
	if err != nil {
		return err
	}
	// Видео показываем сразу в embed-форме, как его встраивает сайт.
	if raw, ok := item["videoUrl"].(string); ok {
		item["embedUrl"] = video.EmbedURL(raw)
	}

	pretty, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, string(pretty))
	return nil
}

func init() { RegisterCmd(getCmd{}) }
