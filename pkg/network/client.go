// Package network provides the HTTP helper used by applications for simple
// request/response exchanges.
package network

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/go-droid/droid/pkg/logging"
)

// Defaults applied by NewClient.
const (
	defaultTimeout  = 30 * time.Second
	defaultRetries  = 3
	defaultProbeURL = "https://www.google.com"
	probeTimeout    = 5 * time.Second
)

// Client is a thin HTTP helper: resty over a retrying transport, with an
// optional rate limiter. Failures are returned, never retried beyond the
// transport's own policy.
type Client struct {
	resty    *resty.Client
	limiter  *rate.Limiter
	probeURL string
	log      *logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout. Default 30s.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.resty.SetTimeout(d)
	}
}

// WithRetry configures the retry policy of the underlying client.
func WithRetry(maxRetries int, minWait, maxWait time.Duration) ClientOption {
	return func(c *Client) {
		c.resty.
			SetRetryCount(maxRetries).
			SetRetryWaitTime(minWait).
			SetRetryMaxWaitTime(maxWait)
	}
}

// WithRateLimit caps outgoing requests per second. Default unlimited.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithProbeURL overrides the connectivity probe target.
func WithProbeURL(url string) ClientOption {
	return func(c *Client) {
		c.probeURL = url
	}
}

// WithClientLogger injects the client's logger.
func WithClientLogger(log *logging.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates an HTTP helper for the named application. The default
// User-Agent is "Droid-<appName>/1.0.0".
func NewClient(appName string, opts ...ClientOption) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = defaultRetries
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 30 * time.Second
	retryClient.Logger = nil

	restyClient := resty.New()
	restyClient.
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", fmt.Sprintf("Droid-%s/1.0.0", appName)).
		SetTransport(retryClient.HTTPClient.Transport)

	c := &Client{
		resty:    restyClient,
		limiter:  rate.NewLimiter(rate.Inf, 0),
		probeURL: defaultProbeURL,
		log:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and returns the response body.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	resp, err := c.resty.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("GET %s: status %d", url, resp.StatusCode())
	}
	return resp.String(), nil
}

// Post performs a POST request with the given body and returns the response
// body.
func (c *Client) Post(ctx context.Context, url string, body []byte, headers map[string]string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	resp, err := c.resty.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetBody(body).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("POST %s: status %d", url, resp.StatusCode())
	}
	return resp.String(), nil
}

// PostJSON posts payload as JSON and decodes the JSON response into out.
// Pass a nil out to discard the response body.
func (c *Client) PostJSON(ctx context.Context, url string, payload any, out any) error {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("POST %s: encode payload: %w", url, err)
	}
	resp, err := c.Post(ctx, url, body, map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal([]byte(resp), out); err != nil {
		return fmt.Errorf("POST %s: decode response: %w", url, err)
	}
	return nil
}

// IsConnected probes the configured URL and reports whether the network is
// reachable.
func (c *Client) IsConnected(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	resp, err := c.resty.R().SetContext(ctx).Head(c.probeURL)
	if err != nil {
		return false
	}
	return resp.StatusCode() == http.StatusOK
}
