package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"leaddesk_backend/platform/logger"

	"golang.org/x/time/rate"
)

// Client is the shared HTTP client for the CRM backend collaborator. All
// origin list endpoints, the stats summary, and the mutation endpoints hang
// off the same base URL.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewClient creates an upstream client. ratePerSec throttles outbound calls
// so a rapid filter-change fan-out cannot hammer the collaborator.
func NewClient(baseURL string, timeout time.Duration, ratePerSec float64, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), int(ratePerSec)+1),
		log:     log,
	}
}

// envelope covers the response shapes the origin endpoints actually produce:
// a bare array, {"leads": [...]}, or {"results": [...]}, discriminated by
// either a numeric responseCode or a boolean success flag.
type envelope struct {
	ResponseCode *int              `json:"responseCode"`
	Success      *bool             `json:"success"`
	Message      string            `json:"message"`
	Leads        []json.RawMessage `json:"leads"`
	Results      []json.RawMessage `json:"results"`
}

// getList performs a GET and decodes any of the tolerated list envelopes into
// raw records for the calling adapter to unmarshal.
func (c *Client) getList(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return decodeListEnvelope(body)
}

// getJSON performs a GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// Send performs a mutation request (PUT/PATCH) with a JSON body and verifies
// the success discriminator of the response envelope.
func (c *Client) Send(ctx context.Context, method, path string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// A bare 2xx without an envelope still counts as success.
		return nil
	}
	return checkEnvelope(env)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream status %d for %s", resp.StatusCode, req.URL.Path)
	}

	return io.ReadAll(resp.Body)
}

func decodeListEnvelope(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if err := checkEnvelope(env); err != nil {
		return nil, err
	}

	if env.Leads != nil {
		return env.Leads, nil
	}
	return env.Results, nil
}

func checkEnvelope(env envelope) error {
	if env.ResponseCode != nil && *env.ResponseCode != 200 {
		return fmt.Errorf("upstream rejected request: code %d %s", *env.ResponseCode, env.Message)
	}
	if env.Success != nil && !*env.Success {
		return fmt.Errorf("upstream rejected request: %s", env.Message)
	}
	return nil
}
