package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthorized is the single error every failed API call normalizes to.
// The original HTTP status is discarded: callers cannot distinguish a 401
// from a 500 from a network failure, and should not try.
var ErrUnauthorized = errors.New("UnAuthorized")

const defaultRequestTimeout = 15 * time.Second

// Client is the HTTP transport shared by the session manager and the
// resource stores. Requests carry JSON bodies and, when a token source is
// set, an Authorization bearer header.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokenFn    func() string
}

type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to change the
// request timeout.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource installs the function consulted for the bearer token on
// every request. An empty return value sends no Authorization header.
func (c *Client) SetTokenSource(fn func() string) {
	c.tokenFn = fn
}

// do issues a request and decodes the raw response body into out.
// Any transport error or non-2xx status is normalized to ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return ErrUnauthorized
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokenFn != nil {
		if token := c.tokenFn(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrUnauthorized
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrUnauthorized
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ErrUnauthorized
	}
	return nil
}

// apiEnvelope is the standard response wrapper used by every resource
// endpoint. Login is the one endpoint that answers with a flat body.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// doEnveloped issues a request and decodes the envelope's data field into out.
func (c *Client) doEnveloped(ctx context.Context, method, path string, body, out any) error {
	var envelope apiEnvelope
	if err := c.do(ctx, method, path, body, &envelope); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(envelope.Data) == 0 {
		return ErrUnauthorized
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return ErrUnauthorized
	}
	return nil
}
