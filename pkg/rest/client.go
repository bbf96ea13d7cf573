// Package rest provides the HTTP transport shared by every resource client.
// A Client joins a base URL, a read-only Session, and an injected
// *http.Client; resource clients layer typed operations on top of it.
//
// Requests are single-shot: there is no retry, no backoff, and no timeout
// beyond the transport default. Failures are returned as *Error values
// carrying an explicit Kind alongside whatever error body the server sent.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout applies when no http.Client and no timeout are configured.
const DefaultTimeout = 30 * time.Second

// Config holds client construction parameters.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8000/api/v1".
	BaseURL string

	// Session supplies the bearer token attached to every request.
	Session Session

	// Timeout applies to the internally constructed http.Client.
	// Ignored when HTTPClient is provided.
	Timeout time.Duration

	// HTTPClient overrides the transport. Optional.
	HTTPClient *http.Client

	// Logger receives per-request debug entries. Optional.
	Logger *slog.Logger
}

// Client executes requests against one API base URL.
type Client struct {
	baseURL    string
	session    Session
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		session:    cfg.Session,
		httpClient: httpClient,
		logger:     logger.With("component", "rest"),
	}, nil
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, reader, "application/json", out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
// The body must be the complete record; the backend applies full-replace
// semantics, not a partial merge.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, reader, "application/json", out)
}

// Delete issues a DELETE request. The response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// PostMultipart issues a POST request with multipart/form-data content and
// decodes the response into out. Used by the document upload paths that send
// a file and its metadata in one request.
func (c *Client) PostMultipart(ctx context.Context, path string, form *Multipart, out any) error {
	contentType, body, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

// Download issues a GET request and copies the raw response body to w.
func (c *Client) Download(ctx context.Context, path string, w io.Writer) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return transportError(err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body, contentType)
	if err != nil {
		return err
	}

	requestID := req.Header.Get("X-Request-ID")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request complete",
		"method", method, "path", path, "request_id", requestID,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return decodeError(err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if !c.session.Anonymous() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}
	return req, nil
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}
