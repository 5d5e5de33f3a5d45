// Package http provides the outbound fetcher for the upstream nameday
// site and the inbound API server.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/mkaravias/eortologio"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for upstream requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent is a realistic browser identity. The upstream site
// serves reduced markup to clients that identify as bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements eortologio.Fetcher at compile time.
var _ eortologio.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves decoded document text over HTTP. The response
// encoding is resolved by content sniffing rather than trusting the
// declared charset, which the upstream site gets wrong.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for upstream requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the identity header sent upstream.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the decoded document text from the given URL.
// Returns ETIMEOUT when no response arrives within the timeout and
// EUNAVAILABLE for any other network or protocol failure, including
// non-2xx statuses.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", eortologio.Errorf(eortologio.EUNAVAILABLE, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", eortologio.Errorf(eortologio.ETIMEOUT, "timeout fetching %s", url)
		}
		return "", eortologio.Errorf(eortologio.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", eortologio.Errorf(eortologio.EUNAVAILABLE, "unexpected status %d for %s", resp.StatusCode, url)
	}

	// Empty content type forces sniffing (BOM, meta tags, byte
	// heuristics) instead of the declared charset.
	reader, err := charset.NewReader(resp.Body, "")
	if err != nil {
		return "", eortologio.Errorf(eortologio.EUNAVAILABLE, "resolving encoding for %s: %v", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		if isTimeout(err) {
			return "", eortologio.Errorf(eortologio.ETIMEOUT, "timeout fetching %s", url)
		}
		return "", eortologio.Errorf(eortologio.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// isTimeout reports whether err represents an expired deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
