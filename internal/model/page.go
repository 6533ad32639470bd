package model

import (
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// MaxTextSize is the maximum size of the extracted visible text in bytes.
// We limit this to keep memory bounded on pathological pages.
const MaxTextSize = 512 * 1024 // 512 KB

// MaxHTMLSize is the maximum size of raw HTML to retain.
// Larger responses are truncated before parsing.
const MaxHTMLSize = 5 * 1024 * 1024 // 5 MB

// PageDocument is an immutable snapshot of one analyzed page.
// It is created once by the loader and owned exclusively by the analysis
// run; nothing mutates it after construction.
//
// Design decision: We carry both the raw HTML and the parsed goquery
// document because scorers need both views: substring scans over raw
// markup (ad indicators) and structural queries (headers, meta tags).
type PageDocument struct {
	// URL is the origin URL of the page.
	URL string `json:"url"`

	// Domain is the host portion of the URL, used for internal/external
	// link classification.
	Domain string `json:"domain"`

	// HTML is the raw page markup, truncated to MaxHTMLSize.
	HTML string `json:"-"` // Excluded from JSON to reduce report size

	// Text is the extracted visible text, truncated to MaxTextSize.
	Text string `json:"-"` // Excluded from JSON to reduce report size

	// Doc is the parsed markup handle, queryable by tag/attribute/class.
	// Nil when the page could not be parsed; scorers treat nil as absence.
	Doc *goquery.Document `json:"-"`

	// Language is the detected language of the visible text in ISO 639-1
	// form ("en", "de", ...). Empty when detection was inconclusive.
	Language string `json:"language,omitempty"`

	// LoadTime is how long the fetch took. Zero when unknown.
	LoadTime time.Duration `json:"load_time_ns,omitempty"`

	// FetchedAt is when the snapshot was taken.
	FetchedAt time.Time `json:"fetched_at"`
}

// NewPageDocument builds a snapshot from already-fetched material.
// HTML and text are truncated to their size limits; the domain is derived
// from the URL (empty when the URL does not parse).
func NewPageDocument(rawURL, html, text string, doc *goquery.Document) *PageDocument {
	if len(html) > MaxHTMLSize {
		html = html[:MaxHTMLSize]
	}
	if len(text) > MaxTextSize {
		text = text[:MaxTextSize]
	}

	domain := ""
	if u, err := url.Parse(rawURL); err == nil {
		domain = u.Hostname()
	}

	return &PageDocument{
		URL:       rawURL,
		Domain:    domain,
		HTML:      html,
		Text:      text,
		Doc:       doc,
		FetchedAt: time.Now(),
	}
}

// HasText reports whether any visible text was extracted.
func (p *PageDocument) HasText() bool {
	return p != nil && p.Text != ""
}

// HasMarkup reports whether the page has a parsed markup handle.
func (p *PageDocument) HasMarkup() bool {
	return p != nil && p.Doc != nil
}

// IsHTTPS reports whether the page was served over TLS.
func (p *PageDocument) IsHTTPS() bool {
	if p == nil {
		return false
	}
	u, err := url.Parse(p.URL)
	return err == nil && u.Scheme == "https"
}
