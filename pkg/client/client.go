// Package client provides a small Go SDK for the Pharmyrus HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/turtacn/pharmyrus/pkg/errors"
	"github.com/turtacn/pharmyrus/pkg/types/report"
)

// DefaultTimeout bounds one Search call end to end.  A pipeline run is
// synchronous and paced, so the bound is far above interactive norms.
const DefaultTimeout = 30 * time.Minute

// Client talks to one Pharmyrus server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client, for tests or custom
// transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New constructs a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs one patent search and returns the full report.  The call
// blocks for the whole pipeline run.
func (c *Client) Search(ctx context.Context, req report.SearchRequest) (*report.SearchReport, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidParam, "encoding search request failed")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/search", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "building search request failed")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternalService, "search request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternalService, "reading search response failed")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, payload)
	}

	var rep report.SearchReport
	if err := json.Unmarshal(payload, &rep); err != nil {
		return nil, errors.Wrap(err, errors.CodeSourceParseError, "decoding search report failed")
	}
	return &rep, nil
}

// Health probes the server's liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "building health request failed")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.CodeExternalService, "health request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New(errors.CodeServiceUnavailable,
			fmt.Sprintf("server unhealthy: status %d", resp.StatusCode))
	}
	return nil
}

// apiError reconstructs an AppError from a non-2xx API response body.
func apiError(status int, payload []byte) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Code != "" {
		return errors.New(errors.ErrorCode(body.Code), body.Message).WithDetail(body.Detail)
	}
	return errors.New(errors.CodeExternalService, fmt.Sprintf("unexpected API status %d", status))
}
