package dal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public Open Brewery DB API.
const DefaultBaseURL = "https://api.openbrewerydb.org/v1"

// ErrNotFound is wrapped by StatusError when the directory answers 404.
var ErrNotFound = errors.New("brewery not found")

// StatusError reports a non-2xx answer from the directory.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("brewery directory: unexpected status %s", e.Status)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Client queries the brewery directory over HTTP.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	log       zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request made by the client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(ua)
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = l.With().Str("component", "dal").Logger()
	}
}

// NewClient returns a client rooted at baseURL, falling back to DefaultBaseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchBreweries lists the breweries of a city, optionally filtered by type.
func (c *Client) SearchBreweries(ctx context.Context, q SearchQuery) ([]BrewerySummary, error) {
	params := url.Values{}
	params.Set("by_city", q.City)
	if q.Type != TypeAny {
		params.Set("by_type", q.Type.String())
	}

	var breweries []BrewerySummary
	if err := c.get(ctx, c.baseURL+"/breweries?"+params.Encode(), &breweries); err != nil {
		return nil, fmt.Errorf("search breweries in %q: %w", q.City, err)
	}
	return breweries, nil
}

// GetBrewery fetches one brewery by identifier.
func (c *Client) GetBrewery(ctx context.Context, id string) (BreweryDetail, error) {
	var brewery BreweryDetail
	if err := c.get(ctx, c.baseURL+"/breweries/"+url.PathEscape(id), &brewery); err != nil {
		return BreweryDetail{}, fmt.Errorf("get brewery %q: %w", id, err)
	}
	return brewery, nil
}

func (c *Client) get(ctx context.Context, target string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.log.Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("brewery directory request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
