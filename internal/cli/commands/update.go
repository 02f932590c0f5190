package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"SiteModels/internal/cli/api"
	"SiteModels/internal/cli/resource"
	"SiteModels/internal/config"
)

type updateCmd struct{}

func (updateCmd) Name() string        { return "update" }
func (updateCmd) Description() string { return "Update a resource (admin only)" }
func (updateCmd) Usage() string       { return "update <resource> <id> [flags]" }

func (updateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	d, ok := resource.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown resource: %s", args[0])
	}
	id := args[1]

	client, done, err := resourceClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	// Текущая версия нужна, чтобы отправлять только изменившиеся поля.
	current, err := client.Get(d, id)
	if err != nil {
		return err
	}

	data, files, err := buildUpdatePayload(d.Name, current, args[2:])
	if err != nil {
		return err
	}

	_, message, err := client.Update(d, id, data, files...)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, message)
	return nil
}

// buildUpdatePayload diffs the parsed flags against the fetched
// resource so unchanged fields stay out of the patch.
func buildUpdatePayload(name string, current map[string]any, args []string) (any, []api.FilePart, error) {
	switch name {
	case "product":
		data, files, err := buildProductPayload(args, false)
		if err != nil {
			return nil, nil, err
		}
		fields := data.(map[string]string)
		for key, v := range fields {
			if cur, ok := current[key].(string); ok && cur == v {
				delete(fields, key)
			}
		}
		if len(fields) == 0 && len(files) == 0 {
			return nil, nil, ErrUsage
		}
		return fields, files, nil

	case "admin", "buyer":
		return buildProfilePatch(name, current, args)

	case "disclaimer":
		if len(args) != 1 {
			return nil, nil, ErrUsage
		}
		if cur, ok := current["disDescription"].(string); ok && cur == args[0] {
			return nil, nil, ErrUsage
		}
		return map[string]string{"disDescription": args[0]}, nil, nil

	case "training-video":
		fs := flag.NewFlagSet("update training-video", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		title := fs.String("title", "", "video title")
		rawURL := fs.String("url", "", "YouTube link")
		if err := fs.Parse(args); err != nil {
			return nil, nil, ErrUsage
		}
		patch := map[string]string{}
		if *title != "" && current["title"] != *title {
			patch["title"] = *title
		}
		if *rawURL != "" && current["videoUrl"] != *rawURL {
			patch["videoUrl"] = *rawURL
		}
		if len(patch) == 0 {
			return nil, nil, ErrUsage
		}
		return patch, nil, nil
	}
	return nil, nil, ErrUsage
}

func buildProfilePatch(kind string, current map[string]any, args []string) (any, []api.FilePart, error) {
	fs := flag.NewFlagSet("update "+kind, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	address := fs.String("address", "", "postal address (buyer only)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, ErrUsage
	}

	curName, _ := current["name"].(map[string]any)
	patch := map[string]any{}
	if *first != "" && (curName == nil || curName["firstName"] != *first) {
		patch["firstName"] = *first
	}
	if *last != "" && (curName == nil || curName["lastName"] != *last) {
		patch["lastName"] = *last
	}
	if kind == "buyer" && *address != "" && current["address"] != *address {
		patch["address"] = *address
	}
	if len(patch) == 0 {
		return nil, nil, ErrUsage
	}
	return patch, nil, nil
}

func init() { RegisterCmd(updateCmd{}) }
