package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// Envelope mirrors the server response shape.
type Envelope struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	Meta         *Meta           `json:"meta"`
	Data         json.RawMessage `json:"data"`
	ErrorSources []ErrorSource   `json:"errorSources"`
}

type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type ErrorSource struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// APIError carries the decoded error envelope plus the HTTP status.
type APIError struct {
	Status  int
	Message string
	Sources []ErrorSource
}

// Error picks the most specific message available: the top-level
// message first, then the first error source, then a generic fallback.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Sources) > 0 && e.Sources[0].Message != "" {
		return e.Sources[0].Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Client is a thin HTTP wrapper around the catalog API.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New creates a client for the given server URL.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) do(req *http.Request) (*Envelope, error) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{Status: resp.StatusCode}
	}
	if resp.StatusCode >= 400 || !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message, Sources: env.ErrorSources}
	}
	return &env, nil
}

// JSON performs a request with a JSON body (nil payload sends none).
func (c *Client) JSON(method, path string, payload any) (*Envelope, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

// Get performs a GET request.
func (c *Client) Get(path string) (*Envelope, error) {
	return c.JSON(http.MethodGet, path, nil)
}

// FilePart is a file attached to a multipart request.
type FilePart struct {
	Field string
	Path  string
}

// Multipart sends data as a JSON form field plus file parts. This is
// the only place the client builds the data/file form contract.
func (c *Client) Multipart(method, path string, data any, files ...FilePart) (*Envelope, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		if err := w.WriteField("data", string(b)); err != nil {
			return nil, err
		}
	}
	for _, f := range files {
		if err := attachFile(w, f); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}

func attachFile(w *multipart.Writer, f FilePart) error {
	src, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer src.Close()

	name := filepath.Base(f.Path)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, name))
	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	hdr.Set("Content-Type", ct)

	part, err := w.CreatePart(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, src)
	return err
}

// Download fetches a raw (non-envelope) response body, e.g. an export.
func (c *Client) Download(path string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		var env Envelope
		if json.Unmarshal(body, &env) == nil {
			return nil, &APIError{Status: resp.StatusCode, Message: env.Message, Sources: env.ErrorSources}
		}
		return nil, &APIError{Status: resp.StatusCode}
	}
	return body, nil
}
