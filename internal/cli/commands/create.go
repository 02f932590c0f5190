package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"SiteModels/internal/cli/api"
	"SiteModels/internal/cli/resource"
	"SiteModels/internal/config"
)

// errAllFieldsRequired is the pre-flight validation failure for the
// product editor: nothing is sent to the server until every field and
// both files are present.
var errAllFieldsRequired = errors.New("All fields are required.")

type createCmd struct{}

func (createCmd) Name() string        { return "create" }
func (createCmd) Description() string { return "Create a resource (admin only)" }
func (createCmd) Usage() string {
	return "create <resource> [flags]  (see: help create-<resource>)"
}

func (createCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	d, ok := resource.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown resource: %s", args[0])
	}

	data, files, err := buildCreatePayload(d.Name, args[1:])
	if err != nil {
		return err
	}

	client, done, err := resourceClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	item, message, err := client.Create(d, data, files...)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, message)
	if id, ok := item["id"]; ok {
		fmt.Fprintf(Out, "id: %v\n", id)
	}
	return nil
}

func buildCreatePayload(name string, args []string) (any, []api.FilePart, error) {
	switch name {
	case "product":
		return buildProductPayload(args, true)
	case "admin":
		return buildProfilePayload("admin", args)
	case "buyer":
		return buildProfilePayload("buyer", args)
	case "disclaimer":
		if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
			return nil, nil, ErrUsage
		}
		return map[string]string{"disDescription": args[0]}, nil, nil
	case "training-video":
		fs := flag.NewFlagSet("create training-video", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		title := fs.String("title", "", "video title")
		rawURL := fs.String("url", "", "YouTube link")
		if err := fs.Parse(args); err != nil {
			return nil, nil, ErrUsage
		}
		if *title == "" || *rawURL == "" {
			return nil, nil, ErrUsage
		}
		return map[string]string{"title": *title, "videoUrl": *rawURL}, nil, nil
	}
	return nil, nil, ErrUsage
}

// buildProductPayload parses the product editor flags. When required
// is true every field must be present before any request goes out.
func buildProductPayload(args []string, required bool) (any, []api.FilePart, error) {
	fs := flag.NewFlagSet("create product", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	code := fs.String("code", "", "code number")
	title := fs.String("title", "", "product title")
	category := fs.String("category", "", "product category")
	twoD := fs.String("two-d", "", "path to the 2D drawing")
	threeD := fs.String("three-d", "", "path to the 3D model")
	if err := fs.Parse(args); err != nil {
		return nil, nil, ErrUsage
	}

	if required && (*code == "" || *title == "" || *category == "" || *twoD == "" || *threeD == "") {
		return nil, nil, errAllFieldsRequired
	}

	data := map[string]string{}
	if *code != "" {
		data["codeNumber"] = *code
	}
	if *title != "" {
		data["title"] = *title
	}
	if *category != "" {
		data["category"] = *category
	}
	var files []api.FilePart
	if *twoD != "" {
		files = append(files, api.FilePart{Field: "twoDFile", Path: *twoD})
	}
	if *threeD != "" {
		files = append(files, api.FilePart{Field: "threeDFile", Path: *threeD})
	}
	return data, files, nil
}

func buildProfilePayload(kind string, args []string) (any, []api.FilePart, error) {
	fs := flag.NewFlagSet("create "+kind, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	address := fs.String("address", "", "postal address (buyer only)")
	image := fs.String("image", "", "path to a profile image")
	if err := fs.Parse(args); err != nil {
		return nil, nil, ErrUsage
	}
	if *email == "" || *password == "" || *first == "" || *last == "" {
		return nil, nil, ErrUsage
	}

	profile := map[string]any{
		"name":  map[string]string{"firstName": *first, "lastName": *last},
		"email": *email,
	}
	if kind == "buyer" {
		profile["address"] = *address
	}
	data := map[string]any{"password": *password, kind: profile}

	var files []api.FilePart
	if *image != "" {
		files = append(files, api.FilePart{Field: "file", Path: *image})
	}
	return data, files, nil
}

func init() { RegisterCmd(createCmd{}) }
