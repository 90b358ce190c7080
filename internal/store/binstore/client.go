// Package binstore is the Remote-mode persistence layer: a thin client for a
// shared JSON blob service exposing three whole-document operations
// (create-with-name, read-latest, replace), plus the Store implementation
// built on top of it.
//
// Every call is a single request/response. There is no retry and no backoff;
// a failed call surfaces as an error wrapping common.ErrorUnavailable and the
// coordinator decides what to do with it.
package binstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"beervault/internal/common"
)

// Request headers of the blob service.
const (
	headerMasterKey = "X-Master-Key"
	headerBinName   = "X-Bin-Name"
)

// Client talks to the blob service. Construct with NewClient.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient returns a Client for the given base URL, authenticating every
// request with the pre-shared key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// createResponse is the envelope returned by document creation.
type createResponse struct {
	Metadata struct {
		ID string `json:"id"`
	} `json:"metadata"`
}

// readResponse is the envelope returned by read-latest.
type readResponse struct {
	Record json.RawMessage `json:"record"`
}

func (c *Client) do(ctx context.Context, method, url string, body any, extra http.Header) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerMasterKey, c.apiKey)
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", common.ErrorUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s: unexpected status %d", common.ErrorUnavailable, method, url, resp.StatusCode)
	}

	return raw, nil
}

// CreateBin creates a named document holding v and returns its identifier.
func (c *Client) CreateBin(ctx context.Context, name string, v any) (string, error) {
	extra := http.Header{}
	extra.Set(headerBinName, name)

	raw, err := c.do(ctx, http.MethodPost, c.baseURL, v, extra)
	if err != nil {
		return "", err
	}

	var cr createResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("failed to decode create response: %w", err)
	}
	if cr.Metadata.ID == "" {
		return "", fmt.Errorf("create response carries no document id")
	}
	return cr.Metadata.ID, nil
}

// ReadBin fetches the latest version of the document and decodes its record
// into out.
func (c *Client) ReadBin(ctx context.Context, id string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, c.baseURL+"/"+id+"/latest", nil, nil)
	if err != nil {
		return err
	}

	var rr readResponse
	if err := json.Unmarshal(raw, &rr); err != nil {
		return fmt.Errorf("failed to decode read response: %w", err)
	}
	if err := json.Unmarshal(rr.Record, out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	return nil
}

// UpdateBin replaces the document's contents with v.
func (c *Client) UpdateBin(ctx context.Context, id string, v any) error {
	_, err := c.do(ctx, http.MethodPut, c.baseURL+"/"+id, v, nil)
	return err
}
