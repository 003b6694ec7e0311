// Package steam implements the HTTP collaborator for the community market's
// priceoverview endpoint. Rate-limit retries and backoff live here; the
// services layer stays synchronous and retry-free.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/market-atlas/pkg/adapters"
	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/models/store"
)

const defaultBaseURL = "https://steamcommunity.com"

// requestHeaders mimic a browser session; the market endpoint is stricter
// with bare clients.
var requestHeaders = map[string]string{
	"Accept":           "*/*",
	"Accept-Language":  "en-US,en;q=0.9",
	"Connection":       "keep-alive",
	"DNT":              "1",
	"Referer":          "https://steamcommunity.com/market/",
	"Sec-Fetch-Dest":   "empty",
	"Sec-Fetch-Mode":   "cors",
	"Sec-Fetch-Site":   "same-origin",
	"X-Requested-With": "XMLHttpRequest",
}

// RateLimitError reports that the remote throttled the request and the
// configured backoff strategy, if any, gave up.
type RateLimitError struct {
	Retries int
}

func (e *RateLimitError) Error() string {
	return "too many requests have been sent to the community market"
}

// InvalidItemError reports an app id and item name combination the market
// does not recognize.
type InvalidItemError struct {
	AppID    int
	HashName string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("item %q with app id %d is considered invalid by the community market", e.HashName, e.AppID)
}

// BackoffStrategy decides whether a throttled request should be retried and
// how long to wait first. retries counts the attempts already made.
type BackoffStrategy func(retries int) (bool, time.Duration)

// ExponentialBackoff returns the default strategy: exponential delays with
// random jitter, giving up after maxRetries attempts.
func ExponentialBackoff(maxRetries int) BackoffStrategy {
	return func(retries int) (bool, time.Duration) {
		if retries >= maxRetries {
			return false, 0
		}
		base := time.Duration(1<<retries) * time.Minute
		jitter := time.Duration(rand.Int63n(int64(time.Minute)))
		return true, base + jitter
	}
}

// Client fetches price overviews from the community market.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	backoff    BackoffStrategy
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the market endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithBackoff enables rate-limit retries using the given strategy. Without
// one, a throttled request fails immediately.
func WithBackoff(s BackoffStrategy) Option {
	return func(c *Client) { c.backoff = s }
}

// NewClient creates a market client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOverview fetches the price overview of one item. In strict mode an
// unrecognized app/item combination fails with *InvalidItemError; otherwise
// it yields a nil overview. Throttling fails with *RateLimitError in either
// mode, after the backoff strategy is exhausted.
func (c *Client) RequestOverview(
	ctx context.Context,
	appID int,
	hashName string,
	currency domain.Currency,
	strict bool,
) (*domain.PriceOverview, error) {
	logger := zerolog.Ctx(ctx)

	query := url.Values{}
	query.Set("appid", strconv.Itoa(appID))
	query.Set("market_hash_name", hashName)
	query.Set("currency", strconv.Itoa(currency.Code()))

	status, payload, err := c.getWithBackoff(ctx, "/market/priceoverview/", query)
	if err != nil {
		return nil, err
	}

	// The market answers 500 with success=false for unknown app/item pairs.
	if status == http.StatusInternalServerError && (payload == nil || !payload.Success) {
		logger.Debug().
			Int("app_id", appID).
			Str("hash_name", hashName).
			Msg("item not recognized by the market")
		if strict {
			return nil, &InvalidItemError{AppID: appID, HashName: hashName}
		}
		return nil, nil
	}

	if payload == nil {
		return nil, nil
	}

	overview := adapters.MapStoreOverviewToDomain(*payload)
	return &overview, nil
}

func (c *Client) getWithBackoff(ctx context.Context, path string, query url.Values) (int, *store.Overview, error) {
	logger := zerolog.Ctx(ctx)

	retries := 0
	for {
		status, payload, err := c.get(ctx, path, query)
		if err != nil {
			return 0, nil, err
		}
		if status != http.StatusTooManyRequests {
			return status, payload, nil
		}

		if c.backoff == nil {
			return 0, nil, &RateLimitError{Retries: retries}
		}
		retry, wait := c.backoff(retries)
		if !retry {
			return 0, nil, &RateLimitError{Retries: retries}
		}

		logger.Warn().
			Int("retries", retries).
			Dur("wait", wait).
			Msg("market rate limit hit, backing off")

		select {
		case <-ctx.Done():
			return 0, nil, ctx.Err()
		case <-time.After(wait):
		}
		retries++
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (int, *store.Overview, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	for key, value := range requestHeaders {
		req.Header.Set(key, value)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	// Non-JSON bodies are tolerated; the caller decides by status code.
	var payload store.Overview
	if err := json.Unmarshal(body, &payload); err != nil {
		return resp.StatusCode, nil, nil
	}
	return resp.StatusCode, &payload, nil
}
