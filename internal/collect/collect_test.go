package collect

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

func newPage(t *testing.T, url, html string) *model.PageDocument {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return model.NewPageDocument(url, html, "", doc)
}

func TestPerformanceCollector(t *testing.T) {
	t.Parallel()

	page := newPage(t, "https://example.com", "<html></html>")
	page.LoadTime = 2 * time.Second

	bag, err := (&PerformanceCollector{}).Collect(context.Background(), page)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got := bag.Float("load_time"); got != 2 {
		t.Errorf("load_time = %v, want 2", got)
	}
	if got := bag.String("grade"); got != "moderate" {
		t.Errorf("grade = %q, want %q", got, "moderate")
	}
	if got := bag.Int("page_size_bytes"); got != len("<html></html>") {
		t.Errorf("page_size_bytes = %d, want %d", got, len("<html></html>"))
	}
}

func TestMobileCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		html         string
		wantViewport bool
		wantHandheld bool
		wantTouch    bool
	}{
		{
			name: "fully mobile ready",
			html: `<html><head>
				<meta name="viewport" content="width=device-width">
				<meta name="HandheldFriendly" content="true">
				<link rel="apple-touch-icon" href="/icon.png">
			</head></html>`,
			wantViewport: true,
			wantHandheld: true,
			wantTouch:    true,
		},
		{
			name:         "bare page",
			html:         `<html><body></body></html>`,
			wantViewport: false,
			wantHandheld: false,
			wantTouch:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bag, err := (&MobileCollector{}).Collect(context.Background(), newPage(t, "https://example.com", tt.html))
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			if got := bag.Bool("has_viewport"); got != tt.wantViewport {
				t.Errorf("has_viewport = %v, want %v", got, tt.wantViewport)
			}
			if got := bag.Bool("handheld_friendly"); got != tt.wantHandheld {
				t.Errorf("handheld_friendly = %v, want %v", got, tt.wantHandheld)
			}
			if got := bag.Bool("touch_optimized"); got != tt.wantTouch {
				t.Errorf("touch_optimized = %v, want %v", got, tt.wantTouch)
			}
		})
	}
}

func TestSEOCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		html        string
		wantIndexed bool
	}{
		{name: "no robots meta means indexed", html: `<html><head></head></html>`, wantIndexed: true},
		{name: "noindex robots meta", html: `<html><head><meta name="robots" content="noindex, nofollow"></head></html>`, wantIndexed: false},
		{name: "permissive robots meta", html: `<html><head><meta name="robots" content="index, follow"></head></html>`, wantIndexed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bag, err := (&SEOCollector{}).Collect(context.Background(), newPage(t, "https://example.com", tt.html))
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			if got := bag.Bool("indexed"); got != tt.wantIndexed {
				t.Errorf("indexed = %v, want %v", got, tt.wantIndexed)
			}
		})
	}
}

func TestSecurityCollector(t *testing.T) {
	t.Parallel()

	t.Run("https with mixed content", func(t *testing.T) {
		t.Parallel()

		page := newPage(t, "https://example.com", `<html><body><img src="http://cdn.example.com/x.png"></body></html>`)
		bag, err := (&SecurityCollector{}).Collect(context.Background(), page)
		if err != nil {
			t.Fatalf("Collect() error = %v", err)
		}
		if !bag.Bool("https") {
			t.Error("https = false, want true")
		}
		if !bag.Bool("mixed_content") {
			t.Error("mixed_content = false, want true for plaintext image")
		}
	})

	t.Run("plain http page", func(t *testing.T) {
		t.Parallel()

		page := newPage(t, "http://example.com", `<html></html>`)
		bag, err := (&SecurityCollector{}).Collect(context.Background(), page)
		if err != nil {
			t.Fatalf("Collect() error = %v", err)
		}
		if bag.Bool("https") {
			t.Error("https = true, want false")
		}
	})
}

func TestSocialCollector(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<a href="https://facebook.com/acme">fb</a>
		<a href="https://twitter.com/acme">tw</a>
		<div class="share-buttons"><button class="share-button">share</button></div>
		<div class="testimonial">loved it</div>
	</body></html>`

	bag, err := (&SocialCollector{}).Collect(context.Background(), newPage(t, "https://example.com", html))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if !bag.Bool("facebook") || !bag.Bool("twitter") {
		t.Error("facebook/twitter presence not detected")
	}
	if bag.Bool("tiktok") {
		t.Error("tiktok = true, want false")
	}
	if got := bag.Int("sharing_buttons"); got == 0 {
		t.Error("sharing_buttons = 0, want at least one")
	}
	if got := bag.Bag("social_proof").Int("testimonials"); got != 1 {
		t.Errorf("testimonials = %d, want 1", got)
	}
}

// failingCollector always errors, standing in for an unreachable
// external data source.
type failingCollector struct{ source string }

func (f *failingCollector) Source() string { return f.source }
func (f *failingCollector) Collect(context.Context, *model.PageDocument) (model.DataBag, error) {
	return nil, errors.New("provider unreachable")
}

func TestGatherIsolatesFailures(t *testing.T) {
	t.Parallel()

	page := newPage(t, "https://example.com", `<html><head><meta name="viewport" content="w"></head></html>`)

	signals := Gather(context.Background(), page, nil,
		&MobileCollector{},
		&failingCollector{source: model.SignalSocial},
	)

	if !signals.Mobile.Bool("has_viewport") {
		t.Error("mobile bag missing despite healthy collector")
	}
	if signals.Social == nil {
		t.Fatal("social bag is nil, want empty bag")
	}
	if !signals.Social.IsEmpty() {
		t.Errorf("social bag = %v, want empty after collector failure", signals.Social)
	}
}

func TestGatherDefaultCollectors(t *testing.T) {
	t.Parallel()

	page := newPage(t, "https://example.com", `<html><body><p>hello</p></body></html>`)
	signals := Gather(context.Background(), page, nil, DefaultCollectors()...)

	// Every source present, populated or not.
	for _, bag := range []model.DataBag{
		signals.Performance, signals.Mobile, signals.SEO, signals.Security, signals.Social,
	} {
		if bag == nil {
			t.Fatal("a signal bag is nil, want at least an empty bag")
		}
	}
	if !signals.SEO.Bool("indexed") {
		t.Error("seo.indexed = false, want true for a page without robots meta")
	}
}
