package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"SiteModels/internal/cli/api"
	"SiteModels/internal/cli/cache"
	"SiteModels/internal/cli/resource"
	"SiteModels/internal/cli/session"
	"SiteModels/internal/config"
)

// errNotLoggedIn is shared by commands that need a stored session.
var errNotLoggedIn = errors.New("not logged in: run the login command first")

func sessionStore(cfg *config.Config) session.Store {
	return session.Store{Path: cfg.TokenFile}
}

// apiClient builds an API client with the stored token, if any.
func apiClient(cfg *config.Config) *api.Client {
	token, _ := sessionStore(cfg).Load()
	return api.New(cfg.ServerURL, token)
}

// resourceClient wires the API client to the local list cache.
// cleanup closes the cache database.
func resourceClient(cfg *config.Config) (*resource.Client, func() error, error) {
	store, err := cache.Open(cfg.ClientDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open client cache: %w", err)
	}
	c := &resource.Client{API: apiClient(cfg), Cache: store}
	return c, store.Close, nil
}

// printTable renders rows of a resource as an aligned table.
func printTable(d resource.Descriptor, rows []map[string]any) {
	tw := tabwriter.NewWriter(Out, 2, 4, 2, ' ', 0)
	for i, col := range d.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col.Header)
	}
	fmt.Fprintln(tw)
	for _, row := range rows {
		for i, col := range d.Columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			if v, ok := row[col.Field]; ok && v != nil {
				fmt.Fprintf(tw, "%v", v)
			}
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}
