package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/artpar/pagekit/core/schema"
)

// Client provides HTTP communication with a schema server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ClientConfig configures the schema client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// NewClient creates a new schema client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
	}
}

// FetchSchema retrieves the full schema. Clients call this once at
// bootstrap; there is no incremental delivery.
func (c *Client) FetchSchema(ctx context.Context) (schema.Schema, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schema", nil)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("fetch schema: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return schema.Schema{}, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var s schema.Schema
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return schema.Schema{}, fmt.Errorf("decode schema: %w", err)
	}
	return s, nil
}

// Invoke runs one action with a snapshot of input values. Failure
// responses from the server (unknown action, handler error) still decode
// into a Response; an error return means the exchange itself broke.
func (c *Client) Invoke(ctx context.Context, inv schema.Invocation) (schema.Response, error) {
	data, err := json.Marshal(inv)
	if err != nil {
		return schema.Response{}, fmt.Errorf("marshal invocation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/action", bytes.NewReader(data))
	if err != nil {
		return schema.Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return schema.Response{}, fmt.Errorf("invoke action: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return schema.Response{}, fmt.Errorf("read response: %w", err)
	}

	var out schema.Response
	if err := json.Unmarshal(body, &out); err != nil {
		return schema.Response{}, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}
	return out, nil
}

// TransportError represents a response that did not carry the expected
// wire shape, such as a framework-level decode rejection.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error %d: %s", e.StatusCode, e.Message)
}
