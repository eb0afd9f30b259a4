// Package client provides HTTP access to the Maven Central search API and
// repository, with retry, DNS caching, and circuit breaking.
package client

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cenk/backoff"
	"github.com/rs/dnscache"
)

// Client is a retrying HTTP client for registry endpoints.
type Client struct {
	http       *http.Client
	userAgent  string
	maxRetries int
	baseDelay  time.Duration
	breakers   *breakerSet
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.http.Timeout = d
	}
}

// WithMaxRetries sets the maximum retry attempts.
func WithMaxRetries(n int) Option {
	return func(cl *Client) {
		cl.maxRetries = n
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
func WithBaseDelay(d time.Duration) Option {
	return func(cl *Client) {
		cl.baseDelay = d
	}
}

// WithCircuitBreaker enables per-host circuit breakers.
func WithCircuitBreaker() Option {
	return func(cl *Client) {
		cl.breakers = newBreakerSet()
	}
}

// New creates a new Client with the given options.
func New(opts ...Option) *Client {
	// Create DNS cache with 5 minute refresh interval
	resolver := &dnscache.Resolver{}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			resolver.Refresh(true)
		}
	}()

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	c := &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					host, port, err := net.SplitHostPort(addr)
					if err != nil {
						return nil, err
					}
					ips, err := resolver.LookupHost(ctx, host)
					if err != nil {
						return nil, err
					}
					for _, ip := range ips {
						conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
						if err == nil {
							return conn, nil
						}
					}
					return nil, fmt.Errorf("failed to dial any resolved IP")
				},
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		userAgent:  "mavencheck/1.0",
		maxRetries: 3,
		baseDelay:  500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJSON fetches the URL and decodes the response body as JSON into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decoding JSON from %s: %w", url, err)
	}
	return nil
}

// GetXML fetches the URL and decodes the response body as XML into v.
func (c *Client) GetXML(ctx context.Context, url string, v any) error {
	body, err := c.get(ctx, url, "application/xml")
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	if err := xml.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decoding XML from %s: %w", url, err)
	}
	return nil
}

// Head reports whether the URL exists. A 404 response is not an error.
func (c *Client) Head(ctx context.Context, url string) (bool, error) {
	err := c.withBreaker(url, func() error {
		_, doErr := c.do(ctx, http.MethodHead, url, "")
		return doErr
	})
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) get(ctx context.Context, url, accept string) (io.ReadCloser, error) {
	var body io.ReadCloser
	err := c.withBreaker(url, func() error {
		var doErr error
		body, doErr = c.do(ctx, http.MethodGet, url, accept)
		return doErr
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) withBreaker(url string, fn func() error) error {
	if c.breakers == nil {
		return fn()
	}
	host := hostOf(url)
	breaker := c.breakers.get(host)
	if !breaker.Ready() {
		return fmt.Errorf("circuit breaker open for %s: %w", host, ErrUpstreamDown)
	}
	return breaker.Call(fn, 0)
}

// do issues a single request with retries. Server errors and rate limits are
// retried with exponential backoff; 404 and client errors are terminal.
func (c *Client) do(ctx context.Context, method, url, accept string) (io.ReadCloser, error) {
	var body io.ReadCloser

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", c.userAgent)
		if accept != "" {
			req.Header.Set("Accept", accept)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("%s %s: %w", method, url, err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			if method == http.MethodHead {
				_ = resp.Body.Close()
				return nil
			}
			body = resp.Body
			return nil

		case resp.StatusCode == http.StatusNotFound:
			_ = resp.Body.Close()
			return backoff.Permanent(ErrNotFound)

		case resp.StatusCode == http.StatusTooManyRequests:
			_ = resp.Body.Close()
			return ErrRateLimited

		case resp.StatusCode >= 500:
			_ = resp.Body.Close()
			return ErrUpstreamDown

		default:
			buf, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			_ = resp.Body.Close()
			return backoff.Permanent(&HTTPError{
				StatusCode: resp.StatusCode,
				URL:        url,
				Body:       string(buf),
			})
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.baseDelay
	bo.MaxInterval = 10 * time.Second

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.maxRetries)), ctx))
	if err != nil {
		return nil, err
	}
	return body, nil
}
