// Package stats is a thin client for the stats.nba.com JSON endpoints.
// Every call is a single GET; nothing is cached or retried.
package stats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultBaseURL = "https://stats.nba.com/stats"

// The stats site rejects requests that do not look like they come from
// its own frontend.
var defaultHeaders = map[string]string{
	"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:72.0) Gecko/20100101 Firefox/72.0",
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "en-US,en;q=0.5",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
	"Connection":         "keep-alive",
	"Referer":            "https://stats.nba.com/",
	"Pragma":             "no-cache",
	"Cache-Control":      "no-cache",
}

// StatusError is returned for non-200 replies.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("stats: %s returned status %d", e.URL, e.Code)
}

// Client issues requests against a stats base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a client. An empty baseURL means DefaultBaseURL.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// URL returns the full request URL for an endpoint and its parameters.
func (c *Client) URL(endpoint string, params url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// Get fetches an endpoint and decodes its result sets.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	body, err := c.GetRaw(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	out, err := ParseResponse(body)
	if err != nil {
		return nil, fmt.Errorf("stats: %s: %w", endpoint, err)
	}
	return out, nil
}

// GetRaw fetches an endpoint and returns the undecoded body. It is meant
// for endpoints whose payload is not shaped as result sets.
func (c *Client) GetRaw(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	return c.fetch(ctx, c.URL(endpoint, params), endpoint)
}

func (c *Client) fetch(ctx context.Context, u, what string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("stats: failed to create request: %w", err)
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stats: %s request failed: %w", what, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stats: failed to read %s body: %w", what, err)
	}
	c.log.Debug().
		Str("url", u).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("took", time.Since(start)).
		Msg("stats request")

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, URL: u}
	}
	return body, nil
}

// ShotChartDetail fetches the shotchartdetail endpoint.
func (c *Client) ShotChartDetail(ctx context.Context, p ShotChartParams) (*Response, error) {
	return c.Get(ctx, "shotchartdetail", p.Values())
}

// TeamDashPtShots fetches the teamdashptshots endpoint.
func (c *Client) TeamDashPtShots(ctx context.Context, p TeamDashParams) (*Response, error) {
	return c.Get(ctx, "teamdashptshots", p.Values())
}
