package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/krishirajsinh-p/WebBoost/internal/config"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Loader fetches pages and turns them into analysis-ready snapshots.
//
// Design decision: We require an external http.Client because:
//  1. Timeout and transport configuration belong to the caller
//  2. Consistent with how the rest of the application wires dependencies
//  3. Allows httptest-backed clients in tests
type Loader struct {
	// client is the HTTP client used for page fetches.
	client *http.Client

	// userAgent is the User-Agent header sent with requests.
	userAgent string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64

	// timeout bounds a single page fetch. Applied per request via
	// context so per-site overrides can shorten or extend it.
	timeout time.Duration

	// sites holds per-hostname fetch overrides (cookie, headers,
	// user agent, timeout). Nil means no overrides.
	sites *config.File
}

// Option configures a Loader.
type Option func(*Loader)

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(l *Loader) {
		l.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) Option {
	return func(l *Loader) {
		l.maxBodySize = size
	}
}

// WithTimeout sets the per-fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithSiteConfigs sets per-hostname fetch overrides.
func WithSiteConfigs(sites *config.File) Option {
	return func(l *Loader) {
		l.sites = sites
	}
}

// New creates a Loader with the given HTTP client.
func New(client *http.Client, opts ...Option) *Loader {
	l := &Loader{
		client:      client,
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
		timeout:     config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load fetches the page at rawURL and builds its snapshot.
// A URL without a scheme is assumed to be HTTPS. The returned snapshot
// always carries the raw HTML; the parsed document, extracted text, and
// detected language are filled on a best-effort basis.
func (l *Loader) Load(ctx context.Context, rawURL string) (*model.PageDocument, error) {
	target, err := normalizeTarget(rawURL)
	if err != nil {
		return nil, err
	}

	site := l.siteConfig(target.Hostname())

	timeout := l.timeout
	if site.TimeoutSeconds > 0 {
		timeout = time.Duration(site.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", target, err)
	}

	userAgent := l.userAgent
	if site.UserAgent != "" {
		userAgent = site.UserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	for name, value := range site.Headers {
		req.Header.Set(name, value)
	}
	if site.Cookie != "" {
		req.Header.Set("Cookie", site.Cookie)
	}

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s answered %d", ErrBadStatus, target, resp.StatusCode)
	}

	body, err := l.readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", target, err)
	}
	loadTime := time.Since(start)

	html := string(body)
	doc := parseMarkup(html)
	text := extractText(html, doc, target)

	page := model.NewPageDocument(target.String(), html, text, doc)
	page.LoadTime = loadTime
	page.Language = DetectLanguage(text)
	return page, nil
}

// readBody reads the response body up to maxBodySize, decoding the
// content to UTF-8 based on the Content-Type header and in-document
// hints. Decoding failures fall back to the raw bytes.
func (l *Loader) readBody(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, l.maxBodySize)

	decoded, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if err != nil {
		return io.ReadAll(limited)
	}
	return io.ReadAll(decoded)
}

// siteConfig returns the merged per-site overrides for host.
func (l *Loader) siteConfig(host string) config.SiteConfig {
	if l.sites == nil {
		return config.SiteConfig{}
	}
	return l.sites.GetSiteConfig(host)
}

// normalizeTarget validates and normalizes a target URL.
// A missing scheme defaults to https.
func normalizeTarget(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, ErrEmptyURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid target URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid target URL %q: missing host", rawURL)
	}
	return u, nil
}

// parseMarkup parses HTML into a queryable document.
// Returns nil on parse failure; downstream analysis treats a nil
// document as absent markup rather than an error.
func parseMarkup(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc
}
