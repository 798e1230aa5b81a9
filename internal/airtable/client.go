package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error reports a failed create call. StatusCode is zero when the request never
// got an HTTP response (network failure).
type Error struct {
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("airtable: create record failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("airtable: create record failed: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client sends order records to the remote table. Exactly one network attempt
// per call; callers decide what a failure means.
type Client struct {
	url    string
	token  string
	client *http.Client
}

// NewClient creates a client for the given table URL. The token must already be
// validated at startup.
func NewClient(url, token string, timeout time.Duration) *Client {
	return &Client{
		url:   url,
		token: token,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// createRequest matches the batch-create body: the record is the sole entry.
type createRequest struct {
	Records []recordEnvelope `json:"records"`
}

type recordEnvelope struct {
	Fields any `json:"fields"`
}

// CreateRecord persists one record. Any non-2xx response or transport error is
// returned as *Error.
func (c *Client) CreateRecord(ctx context.Context, fields any) error {
	body, err := json.Marshal(createRequest{
		Records: []recordEnvelope{{Fields: fields}},
	})
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Err: err}
	}
	defer resp.Body.Close()

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{StatusCode: resp.StatusCode}
	}

	return nil
}
