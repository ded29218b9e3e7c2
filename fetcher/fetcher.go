// Package fetcher retrieves pages and domain-level signal files over HTTP.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 45 * time.Second
	// DefaultUserAgent identifies the auditor to origin servers.
	DefaultUserAgent = "GEOAudit/0.1.0"
	// maxResponseSize caps how much HTML is read from a response body.
	maxResponseSize = 10 * 1024 * 1024
	// probeTimeout bounds each domain signal probe.
	probeTimeout = 5 * time.Second
	maxRedirects = 5
)

// FetchResult captures everything observed while retrieving a page.
type FetchResult struct {
	URL         string `json:"url"`
	FinalURL    string `json:"finalUrl"`
	StatusCode  int    `json:"statusCode"`
	ContentType string `json:"contentType"`
	HTML        string `json:"html"`
	ByteLength  int    `json:"byteLength"`
	FetchTimeMs int64  `json:"fetchTimeMs"`
	Redirected  bool   `json:"redirected"`
}

// DomainSignals mirrors the domain-level files probed alongside a fetch.
// RobotsTxt is "" when the file was absent or unreachable.
type DomainSignals struct {
	RobotsTxt         string
	LLMsTxtExists     bool
	LLMsFullTxtExists bool
}

// Fetcher wraps an HTTP client tuned for repeated page retrieval:
// connection pooling, keep-alives and bounded handshakes.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option adjusts a Fetcher at construction time.
type Option func(*Fetcher)

// WithUserAgent overrides the User-Agent sent on every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// New builds a Fetcher with a pooled transport.
func New(opts ...Option) *Fetcher {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  false,
	}

	f := &Fetcher{
		client: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HTTPError reports a page that loaded but answered with an error status.
// The FetchResult is still returned alongside it so the status code can be
// scored.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: page returned an error", e.StatusCode)
}

// Fetch retrieves the page at url. Responses with status 400 and above
// return both the populated result and an *HTTPError; transport failures
// return a nil result.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	f.setHeaders(req)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	fetchTime := time.Since(start)

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	result := &FetchResult{
		URL:         url,
		FinalURL:    finalURL,
		StatusCode:  resp.StatusCode,
		ContentType: contentTypeOf(resp),
		HTML:        string(body),
		ByteLength:  len(body),
		FetchTimeMs: fetchTime.Milliseconds(),
		Redirected:  finalURL != url,
	}

	if resp.StatusCode >= 400 {
		return result, &HTTPError{StatusCode: resp.StatusCode}
	}
	return result, nil
}

// ProbeDomainSignals checks the site root under baseURL (scheme plus host)
// for robots.txt, llms.txt and llms-full.txt. Each probe fails
// independently; an unreachable or non-200 file simply reads as absent.
func (f *Fetcher) ProbeDomainSignals(ctx context.Context, baseURL string) DomainSignals {
	base := strings.TrimRight(baseURL, "/")
	signals := DomainSignals{}

	if body, ok := f.probeGet(ctx, base+"/robots.txt"); ok {
		signals.RobotsTxt = body
	}
	signals.LLMsTxtExists = f.probeHead(ctx, base+"/llms.txt")
	signals.LLMsFullTxtExists = f.probeHead(ctx, base+"/llms-full.txt")
	return signals
}

func (f *Fetcher) probeGet(ctx context.Context, url string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}
	f.setHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", false
	}
	return string(body), true
}

func (f *Fetcher) probeHead(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	f.setHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (f *Fetcher) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
}

func contentTypeOf(resp *http.Response) string {
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		return "unknown"
	}
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}
