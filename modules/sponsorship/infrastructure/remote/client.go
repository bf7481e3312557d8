package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"

	"github.com/ghazalrb98/sep/pkg/composables"
)

// TransportError wraps a non-2xx answer from the events backend. Handlers
// map it to a 502 so backend trouble is distinguishable from local errors.
type TransportError struct {
	StatusCode int
	Method     string
	Path       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend returned %d for %s %s", e.StatusCode, e.Method, e.Path)
}

// Client is the shared HTTP plumbing for the remote repositories. The
// bearer token comes from the request context when present, falling back
// to the statically configured service token.
type Client struct {
	baseURL       string
	http          *http.Client
	fallbackToken string
}

func NewClient(baseURL, fallbackToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:       baseURL,
		http:          &http.Client{Timeout: timeout},
		fallbackToken: fallbackToken,
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{StatusCode: resp.StatusCode, Method: method, Path: path}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}
	return nil
}

func (c *Client) token(ctx context.Context) string {
	if token, err := composables.UseToken(ctx); err == nil {
		return token
	}
	return c.fallbackToken
}
