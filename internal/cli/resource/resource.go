package resource

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"SiteModels/internal/cli/api"
	"SiteModels/internal/cli/cache"
)

// Column maps a JSON field of a resource to a table column.
type Column struct {
	Header string
	Field  string
}

// Descriptor declares everything the generic client needs to manage
// one resource kind. Adding a resource is one more descriptor, not a
// new client.
type Descriptor struct {
	Name           string   // singular, as typed by the user
	BasePath       string   // e.g. /api/v1/products
	CreatePath     string   // e.g. /api/v1/products/create-product
	Tag            string   // local cache tag
	Invalidates    []string // extra tags dropped on mutation
	Multipart      bool     // create uses the data+files form
	MultipartPatch bool     // update uses the data+files form too
	Columns        []Column
}

// Descriptors lists the managed resources in menu order.
var Descriptors = []Descriptor{
	{
		Name:           "product",
		BasePath:       "/api/v1/products",
		CreatePath:     "/api/v1/products/create-product",
		Tag:            "product",
		Invalidates:    []string{"user"},
		Multipart:      true,
		MultipartPatch: true,
		Columns: []Column{
			{Header: "ID", Field: "id"},
			{Header: "CODE", Field: "codeNumber"},
			{Header: "TITLE", Field: "title"},
			{Header: "CATEGORY", Field: "category"},
		},
	},
	{
		Name:       "disclaimer",
		BasePath:   "/api/v1/disclaimers",
		CreatePath: "/api/v1/disclaimers/create-disclaimer",
		Tag:        "disclaimer",
		Columns: []Column{
			{Header: "ID", Field: "id"},
			{Header: "DESCRIPTION", Field: "disDescription"},
		},
	},
	{
		Name:       "training-video",
		BasePath:   "/api/v1/training-videos",
		CreatePath: "/api/v1/training-videos/create-training-video",
		Tag:        "trainingVideo",
		Columns: []Column{
			{Header: "ID", Field: "id"},
			{Header: "TITLE", Field: "title"},
			{Header: "URL", Field: "videoUrl"},
		},
	},
	{
		Name:        "admin",
		BasePath:    "/api/v1/admins",
		CreatePath:  "/api/v1/users/create-admin",
		Tag:         "admin",
		Invalidates: []string{"user"},
		Multipart:   true,
		Columns: []Column{
			{Header: "ID", Field: "id"},
			{Header: "NAME", Field: "fullName"},
			{Header: "EMAIL", Field: "email"},
		},
	},
	{
		Name:        "buyer",
		BasePath:    "/api/v1/buyers",
		CreatePath:  "/api/v1/users/create-buyer",
		Tag:         "buyer",
		Invalidates: []string{"user"},
		Multipart:   true,
		Columns: []Column{
			{Header: "ID", Field: "id"},
			{Header: "NAME", Field: "fullName"},
			{Header: "EMAIL", Field: "email"},
			{Header: "ADDRESS", Field: "address"},
		},
	},
}

// Lookup finds a descriptor by the user-typed name.
func Lookup(name string) (Descriptor, bool) {
	name = strings.ToLower(name)
	for _, d := range Descriptors {
		if d.Name == name || d.Name+"s" == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Client is a generic resource client with a local read-through cache.
type Client struct {
	API   *api.Client
	Cache *cache.Store
}

// Page is a decoded list response.
type Page struct {
	Items []map[string]any
	Meta  *api.Meta
}

func cacheKey(query url.Values) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(query.Get(k))
		b.WriteByte('&')
	}
	return b.String()
}

// List fetches a page, serving repeated identical queries from the
// local cache until a mutation on the same tag drops them.
func (c *Client) List(d Descriptor, query url.Values) (*Page, error) {
	key := cacheKey(query)
	if payload, ok := c.Cache.Get(d.Tag, key); ok {
		var page Page
		if json.Unmarshal(payload, &page) == nil {
			return &page, nil
		}
	}

	path := d.BasePath
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	env, err := c.API.Get(path)
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, err
	}
	page := &Page{Items: items, Meta: env.Meta}
	if payload, err := json.Marshal(page); err == nil {
		c.Cache.Set(d.Tag, key, payload)
	}
	return page, nil
}

// Get fetches one resource by id, bypassing the cache.
func (c *Client) Get(d Descriptor, id string) (map[string]any, error) {
	env, err := c.API.Get(d.BasePath + "/" + url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	var item map[string]any
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *Client) invalidate(d Descriptor) {
	c.Cache.Invalidate(append([]string{d.Tag}, d.Invalidates...)...)
}

// Create creates a resource and drops the affected cache tags.
func (c *Client) Create(d Descriptor, data any, files ...api.FilePart) (map[string]any, string, error) {
	var env *api.Envelope
	var err error
	if d.Multipart {
		env, err = c.API.Multipart(http.MethodPost, d.CreatePath, data, files...)
	} else {
		env, err = c.API.JSON(http.MethodPost, d.CreatePath, data)
	}
	if err != nil {
		return nil, "", err
	}
	c.invalidate(d)

	var item map[string]any
	_ = json.Unmarshal(env.Data, &item)
	return item, env.Message, nil
}

// Update patches a resource and drops the affected cache tags.
func (c *Client) Update(d Descriptor, id string, data any, files ...api.FilePart) (map[string]any, string, error) {
	path := d.BasePath + "/" + url.PathEscape(id)
	var env *api.Envelope
	var err error
	if d.MultipartPatch {
		env, err = c.API.Multipart(http.MethodPatch, path, data, files...)
	} else {
		env, err = c.API.JSON(http.MethodPatch, path, data)
	}
	if err != nil {
		return nil, "", err
	}
	c.invalidate(d)

	var item map[string]any
	_ = json.Unmarshal(env.Data, &item)
	return item, env.Message, nil
}

// Delete removes a resource and drops the affected cache tags.
func (c *Client) Delete(d Descriptor, id string) (string, error) {
	env, err := c.API.JSON(http.MethodDelete, d.BasePath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return "", err
	}
	c.invalidate(d)
	return env.Message, nil
}
