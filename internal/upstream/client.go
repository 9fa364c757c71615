// Package upstream issues the outbound HTTP calls to the externally-owned
// record-management backend. Each proxy handler makes exactly one call; the
// client adds the bearer header set and returns the upstream status and raw
// JSON body for the handler to relay.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Client talks to the backend record API.
//
// No retries, no backoff, no client-side timeout: a hung upstream call is
// bounded only by the request context the caller passes in.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

// New creates a client for the given base URL.
func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{},
		logger: logger.With("component", "upstream"),
	}
}

// LoginResult is the shape of a login response. Player stays raw: its
// profile fields are owned by the upstream and relayed untouched.
type LoginResult struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Player  json.RawMessage `json:"player"`
}

// Login posts the inbound credentials body to auth/login.php and parses the
// response envelope. The HTTP status is returned alongside so the caller can
// distinguish rejected credentials from transport failure.
func (c *Client) Login(ctx context.Context, body io.Reader) (int, *LoginResult, error) {
	status, raw, err := c.Do(ctx, http.MethodPost, "auth/login.php", "", body)
	if err != nil {
		return 0, nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return 0, nil, fmt.Errorf("parse login response: %w", err)
	}
	return status, &result, nil
}

// Do performs a JSON call against the given upstream path. The request
// carries Content-Type: application/json and, when token is non-empty,
// Authorization: Bearer <token>. The response body is returned verbatim
// after a JSON well-formedness check.
func (c *Client) Do(ctx context.Context, method, path, token string, body io.Reader) (int, json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req)
}

// DoForm forwards a multipart form body unmodified. Only the Authorization
// header is set; contentType comes from the inbound request so the multipart
// boundary survives the hop.
func (c *Client) DoForm(ctx context.Context, method, path, token, contentType string, body io.Reader) (int, json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req)
}

func (c *Client) send(req *http.Request) (int, json.RawMessage, error) {
	c.logger.Debug("upstream call", "method", req.Method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("upstream %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read upstream response: %w", err)
	}

	if !json.Valid(raw) {
		return 0, nil, fmt.Errorf("upstream %s %s: response is not JSON (HTTP %d)", req.Method, req.URL.Path, resp.StatusCode)
	}

	return resp.StatusCode, json.RawMessage(raw), nil
}

func (c *Client) url(path string) string {
	return c.base + "/" + strings.TrimLeft(path, "/")
}
