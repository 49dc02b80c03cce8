// Package http provides the HTTP implementations of fastfact.Fetcher and
// fastfact.SitemapService. Fast Fact pages are static, so plain requests
// without JavaScript rendering are enough; fetches are rate limited per
// domain to stay polite toward the publisher.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fastfact"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRequestsPerSecond is the default per-domain rate limit.
const DefaultRequestsPerSecond = 2.0

// Ensure Fetcher implements fastfact.Fetcher at compile time.
var _ fastfact.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content from URLs with per-domain rate limiting
// and exponential backoff retries.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	limiter     *DomainLimiter
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRequestsPerSecond sets the per-domain rate limit.
func WithRequestsPerSecond(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = NewDomainLimiter(rps)
	}
}

// WithRetryDelays sets the backoff delays between fetch attempts. Useful
// for tests that don't want to wait for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		limiter:     NewDomainLimiter(DefaultRequestsPerSecond),
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the content at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	if err := f.limiter.Wait(ctx, parsed.Host); err != nil {
		return "", err
	}

	return FetchWithRetryDelays(ctx, rawURL, f.fetch, nil, f.retryDelays)
}

func (f *Fetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. A no-op for the HTTP fetcher since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
