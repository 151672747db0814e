package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/trafico-pr/trafico-cli/internal/models"
)

const defaultTimeout = 10 * time.Second

// Client is the API client for the directions provider
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timezone   *time.Location
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the provider base URL (used in tests)
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimezone sets the location used to format computed arrival times
func WithTimezone(loc *time.Location) ClientOption {
	return func(c *Client) {
		c.timezone = loc
	}
}

// NewClient creates a new directions API client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:  BaseURL,
		apiKey:   apiKey,
		timezone: time.Local,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Timezone returns the client's timezone
func (c *Client) Timezone() *time.Location {
	return c.timezone
}

// RouteRequest contains parameters for a directions query
type RouteRequest struct {
	Origin        models.Coordinate // Trip start (required)
	Dest          models.Coordinate // Trip end (required)
	DepartureTime int64             // Unix seconds (defaults to now)
	TrafficModel  string            // Provider traffic model (default: provider-chosen)
}

// GetRoute fetches a driving route estimate for an origin/destination pair.
// Returns a *RouteError when the provider reports a non-OK status or no route.
func (c *Client) GetRoute(ctx context.Context, req RouteRequest) (*models.RouteResult, error) {
	body, err := c.GetRouteRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	var resp models.DirectionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse directions response: %w", err)
	}

	if resp.Status != StatusOK {
		return nil, NewRouteError(resp.Status, resp.ErrorMessage)
	}
	leg, ok := resp.FirstLeg()
	if !ok {
		return nil, NewRouteError(resp.Status, "response contains no route legs")
	}

	departure := req.DepartureTime
	if departure == 0 {
		departure = time.Now().Unix()
	}

	return leg.ToResult(departure, c.timezone), nil
}

// GetRouteRaw fetches a route estimate and returns the raw JSON response.
// Every call performs a fresh request; responses are never cached.
func (c *Client) GetRouteRaw(ctx context.Context, req RouteRequest) (json.RawMessage, error) {
	departure := req.DepartureTime
	if departure == 0 {
		departure = time.Now().Unix()
	}

	params := url.Values{}
	params.Set("origin", req.Origin.String())
	params.Set("destination", req.Dest.String())
	params.Set("mode", "driving")
	params.Set("departure_time", strconv.FormatInt(departure, 10))
	if req.TrafficModel != "" {
		params.Set("traffic_model", req.TrafficModel)
	}
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + EndpointDirections + "?" + params.Encode()

	return c.doRequest(ctx, reqURL)
}

// doRequest performs an HTTP GET request
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Check for context errors
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, NewFetchError(resp.StatusCode, resp.Status, extractEndpoint(reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
