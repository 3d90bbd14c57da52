// Package api is the HTTP client for the library admin API. All persisted
// state lives server-side; this package only moves JSON and maps failures
// onto the domain error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dareenhdeya/iaProj/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "libadmin/1.0"
)

// Client talks to the admin endpoints of the library server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:5209".
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// messageEnvelope is the {message} body the server uses for both success
// notes and error details.
type messageEnvelope struct {
	Message string `json:"message"`
}

// do performs a JSON request and returns the raw response body. Transport
// failures map to ErrServerUnreachable; non-2xx statuses map to APIError
// (409 to ConflictError) with the server's message when one is present.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "method", method, "path", path, "error", err)
		return nil, domain.ErrServerUnreachable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := parseMessage(body)
		c.logger.Error("api request error", "method", method, "path", path, "status", resp.StatusCode, "message", message)
		if resp.StatusCode == http.StatusConflict {
			if message == "" {
				message = "already exists"
			}
			return nil, &domain.ConflictError{Message: message}
		}
		return nil, &domain.APIError{Status: resp.StatusCode, Message: message}
	}

	return body, nil
}

// getJSON fetches path and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// parseMessage extracts the {message} envelope, tolerating any other body.
func parseMessage(body []byte) string {
	var env messageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}
