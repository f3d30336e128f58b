package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/ratepulse/internal/logger"
	"github.com/guttosm/ratepulse/internal/obs"
)

const (
	opSiteAccess   = "getSiteAccess"
	opPropertyInfo = "getPropertyInformation"
	opRates        = "getRates"

	// MaxWindowDays is the provider's hard per-call limit on the
	// inventory horizon. Longer ranges must be split by the caller.
	MaxWindowDays = 30
)

// API is the upstream surface consumed by the aggregation service.
// A call returns an error only after its retry budget is exhausted;
// errors never panic through.
type API interface {
	FetchSiteAccess(ctx context.Context) (*SiteAccessResult, error)
	FetchPropertyInfo(ctx context.Context, siteIDs []int) (*PropertyInfoResult, error)
	FetchRates(ctx context.Context, siteIDs []int, windowDays int, start time.Time) (*RatesResult, error)
}

// Config holds the connection settings for the upstream inventory API.
type Config struct {
	URL        string
	Username   string
	Password   string
	Timeout    time.Duration // per-attempt HTTP timeout
	Attempts   int           // total attempts per call (default 3)
	RetryDelay time.Duration // fixed delay between attempts (default 100ms)
}

// Client issues the inventory RPCs with bounded automatic retry.
type Client struct {
	url        string
	auth       userAuth
	httpClient *http.Client
	attempts   int
	retryDelay time.Duration
	log        zerolog.Logger
}

// New constructs a Client from config, applying the retry defaults
// (3 attempts, 100ms apart) when unset.
func New(cfg Config) *Client {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 100 * time.Millisecond
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		url:        cfg.URL,
		auth:       userAuth{Username: cfg.Username, Password: cfg.Password},
		httpClient: &http.Client{Timeout: cfg.Timeout},
		attempts:   cfg.Attempts,
		retryDelay: cfg.RetryDelay,
		log:        logger.With("provider"),
	}
}

var _ API = (*Client)(nil)

// FetchSiteAccess retrieves the ordered site list (siteID + primaryName)
// the configured credentials have access to.
func (c *Client) FetchSiteAccess(ctx context.Context) (*SiteAccessResult, error) {
	var out SiteAccessResult
	req := rpcRequest{Operation: opSiteAccess}
	if err := c.post(ctx, opSiteAccess, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchPropertyInfo retrieves rich property metadata for the given
// sites. An empty siteIDs short-circuits to an empty result without a
// network call.
func (c *Client) FetchPropertyInfo(ctx context.Context, siteIDs []int) (*PropertyInfoResult, error) {
	if len(siteIDs) == 0 {
		return &PropertyInfoResult{}, nil
	}
	var out PropertyInfoResult
	req := rpcRequest{Operation: opPropertyInfo, SiteIDList: siteIDs}
	if err := c.post(ctx, opPropertyInfo, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchRates retrieves raw rate quotes for the given sites over
// [start, start+windowDays). windowDays outside [1, MaxWindowDays] is a
// caller contract violation and is rejected before any network call.
// An empty siteIDs short-circuits to an empty result.
func (c *Client) FetchRates(ctx context.Context, siteIDs []int, windowDays int, start time.Time) (*RatesResult, error) {
	if len(siteIDs) == 0 {
		return &RatesResult{}, nil
	}
	if windowDays < 1 || windowDays > MaxWindowDays {
		return nil, fmt.Errorf("windowDays must be between 1 and %d, got %d", MaxWindowDays, windowDays)
	}
	var out RatesResult
	req := rpcRequest{
		Operation:        opRates,
		SiteIDList:       siteIDs,
		StartDate:        start.Format("2006-01-02"),
		InventoryHorizon: windowDays,
		LOSOptions:       []int{1},
	}
	if err := c.post(ctx, opRates, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post sends one RPC envelope, retrying on network errors and non-2xx
// statuses with a fixed inter-attempt delay. The last error is returned
// after the retry budget is spent.
func (c *Client) post(ctx context.Context, operation string, req rpcRequest, out any) error {
	req.UserAuth = c.auth

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		lastErr = c.do(ctx, operation, body, out)
		if lastErr == nil {
			return nil
		}

		c.log.Warn().
			Str("operation", operation).
			Int("attempt", attempt).
			Err(lastErr).
			Msg("upstream request failed")

		if attempt == c.attempts {
			break
		}
		select {
		case <-time.After(c.retryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	c.log.Error().
		Str("operation", operation).
		Int("attempts", c.attempts).
		Err(lastErr).
		Msg("upstream request exhausted retries")
	return fmt.Errorf("%s failed after %d attempts: %w", operation, c.attempts, lastErr)
}

// do performs a single POST attempt and decodes the JSON response.
func (c *Client) do(ctx context.Context, operation string, body []byte, out any) error {
	start := time.Now()
	defer func() {
		obs.UpstreamLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		obs.UpstreamRequests.WithLabelValues(operation, "network_error").Inc()
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		obs.UpstreamRequests.WithLabelValues(operation, "http_error").Inc()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(detail))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		obs.UpstreamRequests.WithLabelValues(operation, "decode_error").Inc()
		return fmt.Errorf("decode response: %w", err)
	}

	obs.UpstreamRequests.WithLabelValues(operation, "ok").Inc()
	return nil
}
