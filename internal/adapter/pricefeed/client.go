// Package pricefeed fetches the current bitcoin price from a public JSON endpoint.
package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 1 // requests per second

	maxBodyBytes = 1 << 20
)

// Client implements domain.PriceFeed over HTTP. The price and the quote time
// are read from the response body through JSONPath expressions.
type Client struct {
	url        string
	pricePath  string
	timePath   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
	now        func() time.Time
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithTimePath sets the JSONPath of the quote timestamp. An empty path stamps
// quotes with the fetch time.
func WithTimePath(path string) ClientOption {
	return func(c *Client) {
		c.timePath = path
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger.With().Str("component", "price_feed").Logger()
	}
}

// WithRateLimit caps outbound requests per second
func WithRateLimit(requestsPerSecond float64) ClientOption {
	return func(c *Client) {
		burst := int(requestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithNow sets the clock used when the payload carries no timestamp
func WithNow(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a price feed client for url, reading the price at pricePath
func NewClient(url, pricePath string, opts ...ClientOption) *Client {
	c := &Client{
		url:       url,
		pricePath: pricePath,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  zerolog.Nop(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch performs one GET and extracts a quote. It never retries.
func (c *Client) Fetch(ctx context.Context) (domain.Quote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Quote{}, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Error().Err(err).Dur("elapsed", elapsed).Msg("price request failed")
		return domain.Quote{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("price source non-OK response")
		return domain.Quote{}, fmt.Errorf("price source error: status %d", resp.StatusCode)
	}

	var payload any
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return domain.Quote{}, fmt.Errorf("failed to decode response: %w", err)
	}

	quote, err := c.extract(payload)
	if err != nil {
		return domain.Quote{}, err
	}

	c.logger.Debug().Float64("price", quote.Price).Time("observed_at", quote.ObservedAt).Dur("elapsed", elapsed).Msg("price fetched")
	return quote, nil
}

func (c *Client) extract(payload any) (domain.Quote, error) {
	raw, err := lookup(c.pricePath, payload)
	if err != nil {
		return domain.Quote{}, err
	}
	price, err := ParsePrice(raw)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("price at %q: %w", c.pricePath, err)
	}

	observedAt := c.now()
	if c.timePath != "" {
		raw, err := lookup(c.timePath, payload)
		if err != nil {
			return domain.Quote{}, err
		}
		observedAt, err = parseTime(raw)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("time at %q: %w", c.timePath, err)
		}
	}

	return domain.Quote{Price: price, ObservedAt: observedAt}, nil
}

func lookup(path string, payload any) (any, error) {
	v, err := jsonpath.Get(path, payload)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// filters and slices answer with a list; keep the first element
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, fmt.Errorf("no value at %q", path)
		}
		v = list[0]
	}
	return v, nil
}

// ParsePrice converts a JSON price into a positive float. Strings may carry
// thousands separators and a leading currency symbol, e.g. "$97,421.30".
func ParsePrice(raw any) (float64, error) {
	var d decimal.Decimal
	switch v := raw.(type) {
	case json.Number:
		parsed, err := decimal.NewFromString(v.String())
		if err != nil {
			return 0, err
		}
		d = parsed
	case float64:
		d = decimal.NewFromFloat(v)
	case string:
		s := strings.TrimSpace(v)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return 0, fmt.Errorf("not a price: %q", v)
		}
		d = parsed
	default:
		return 0, fmt.Errorf("not a price: %v", raw)
	}

	if !d.IsPositive() {
		return 0, errors.New("price must be positive")
	}
	f, _ := d.Float64()
	return f, nil
}

// parseTime accepts RFC 3339 strings and unix seconds
func parseTime(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case string:
		return time.Parse(time.RFC3339, v)
	case json.Number:
		secs, err := v.Int64()
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(secs, 0).UTC(), nil
	case float64:
		return time.Unix(int64(v), 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("not a timestamp: %v", raw)
	}
}
