// Package remote provides the HTTP client for the delayed-notifier service
// that this board mirrors.
//
// The service is the authoritative store; every mutation and every cache
// refresh goes through this client. Calls are never retried here — the
// periodic sync loop is the implicit retry for visibility.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wb-go/wbf/retry"

	"github.com/notiboard/notiboard/internal/model"
)

// Client talks to the notifier service over its JSON API.
type Client struct {
	endpoint string       // base URL joined with the base path, fixed at startup
	client   *http.Client // HTTP client used to make requests
}

// NewClient creates a Client for the given endpoint. The endpoint is the
// service base URL including any path prefix ("" or "/api").
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Create schedules a new notification and returns the full record the
// service assigned, including its id.
func (c *Client) Create(ctx context.Context, input model.CreateInput) (model.Notification, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return model.Notification{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/notify", bytes.NewReader(body))
	if err != nil {
		return model.Notification{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doRecord("create", req)
}

// Get fetches a single notification by id.
func (c *Client) Get(ctx context.Context, id string) (model.Notification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/notify/"+id, nil)
	if err != nil {
		return model.Notification{}, fmt.Errorf("build request: %w", err)
	}

	return c.doRecord("get", req)
}

// Cancel asks the service to cancel a scheduled notification and returns
// the updated record.
func (c *Client) Cancel(ctx context.Context, id string) (model.Notification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint+"/notify/"+id, nil)
	if err != nil {
		return model.Notification{}, fmt.Errorf("build request: %w", err)
	}

	return c.doRecord("cancel", req)
}

// List fetches the full current notification list in the service's order.
func (c *Client) List(ctx context.Context) ([]model.Notification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/notifications", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "list", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp)
	}

	var records []model.Notification
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return records, nil
}

// WaitReady probes the service's list endpoint until it answers, retrying
// per the given strategy. Used once at startup so the board does not come
// up with an empty cache just because the notifier was still booting.
func (c *Client) WaitReady(ctx context.Context, strategy retry.Strategy) error {
	probe := func() error {
		_, err := c.List(ctx)
		return err
	}

	if err := retry.Do(probe, strategy); err != nil {
		return fmt.Errorf("notifier not reachable: %w", err)
	}

	return nil
}

// doRecord performs a request whose success body is a single record.
func (c *Client) doRecord(op string, req *http.Request) (model.Notification, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return model.Notification{}, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Notification{}, decodeError(resp)
	}

	var record model.Notification
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return model.Notification{}, fmt.Errorf("decode response: %w", err)
	}

	return record, nil
}

// decodeError turns a non-2xx response into an APIError. The service body
// carries {"error": string} when it has a message; anything else falls back
// to a generic message with the status code.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}

	return apiErr
}
