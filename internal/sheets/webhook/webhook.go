// Package webhook mirrors records to a spreadsheet webhook (an Apps Script
// style endpoint) via HTTP POST. The record is sent as JSON with the
// target sheet name added under the "sheet" key.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"warsha/internal/sheets"
)

type Client struct {
	url  string
	http *http.Client
}

var _ sheets.Appender = (*Client)(nil)

func New(url string) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Append posts one record. Any non-2xx status or transport error comes
// back as an error; nothing is retried here.
func (c *Client) Append(ctx context.Context, target string, rec sheets.Record) error {
	payload := make(map[string]any, len(rec)+1)
	for k, v := range rec {
		payload[k] = v
	}
	payload["sheet"] = target

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d for sheet %q", resp.StatusCode, target)
	}
	return nil
}
