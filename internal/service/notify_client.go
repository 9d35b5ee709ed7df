package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fallback host used when NOTIFY_API_BASE_URL is unset.
const defaultNotifyBaseURL = "https://rent-a-car-backend-t3c9.vercel.app"

// ErrNotifyFailed marks a dispatch failure (non-2xx or network error). It is
// recoverable: callers report it to the user and move on, nothing crashes.
var ErrNotifyFailed = errors.New("notification dispatch failed")

// NotifyClient posts notification payloads to the dispatch endpoint:
// base URL + /api/send-booking-email, body {type, data}. Any 2xx counts as
// success.
type NotifyClient struct {
	baseURL string
	client  *http.Client
}

func NewNotifyClient(baseURL string) *NotifyClient {
	if baseURL == "" {
		baseURL = defaultNotifyBaseURL
	}
	return &NotifyClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *NotifyClient) SendBookingEmail(ctx context.Context, notificationType string, data interface{}) error {
	payload, err := json.Marshal(map[string]interface{}{
		"type": notificationType,
		"data": data,
	})
	if err != nil {
		return fmt.Errorf("marshaling notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/send-booking-email", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrNotifyFailed, resp.StatusCode, body)
	}
	return nil
}
