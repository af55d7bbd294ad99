// File: backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrUnauthorized signals an HTTP 401 from the API. Callers must discard the
// local session and send the user back to the login page.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx answer carrying the API's "erro" message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// errorBody is the API's error envelope.
type errorBody struct {
	Erro    string `json:"erro"`
	Message string `json:"message"`
}

// Client issues requests against the scheduling API, attaching the caller's
// bearer token. Every call takes a context so in-flight requests die with the
// page that started them, and the HTTP client carries a hard timeout.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds an API client for the given base origin.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// do performs one JSON round trip. A 401 yields ErrUnauthorized; a 403 is
// logged but kept as a plain APIError so the session survives.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.logger.Warn("API rejected credentials", zap.String("path", path))
		return fmt.Errorf("%s: %w", path, ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		c.logger.Warn("API denied access", zap.String("path", path))
		return &APIError{Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	case resp.StatusCode >= 400:
		return &APIError{Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

func decodeErrorMessage(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(r).Decode(&body); err == nil {
		if body.Erro != "" {
			return body.Erro
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return "Erro desconhecido"
}

// ErrorMessage extracts a user-facing message from any error returned by the
// client, falling back to a generic one.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Erro desconhecido"
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, token, body, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
