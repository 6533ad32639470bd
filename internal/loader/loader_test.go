package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/krishirajsinh-p/WebBoost/internal/config"
)

const articleFixture = `<!DOCTYPE html>
<html lang="en">
<head><title>Coffee Brewing Basics</title></head>
<body>
<article>
<h1>Coffee Brewing Basics</h1>
<p>Grinding beans just before brewing preserves the aroma. A medium
grind suits most drip machines, while espresso needs a fine one. Water
temperature matters as well, with the sweet spot sitting just below
boiling point for a balanced extraction.</p>
</article>
</body>
</html>`

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleFixture))
	}))
	t.Cleanup(server.Close)

	page, err := New(server.Client()).Load(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if page.URL != server.URL {
		t.Errorf("URL = %q, want %q", page.URL, server.URL)
	}
	if !strings.Contains(page.HTML, "Coffee Brewing Basics") {
		t.Error("HTML does not contain the fixture title")
	}
	if !page.HasMarkup() {
		t.Error("Doc is nil, want parsed markup")
	}
	if !strings.Contains(page.Text, "preserves the aroma") {
		t.Errorf("Text = %q, want article prose", page.Text)
	}
	if page.LoadTime <= 0 {
		t.Errorf("LoadTime = %v, want positive", page.LoadTime)
	}
	if page.Language != "en" {
		t.Errorf("Language = %q, want %q", page.Language, "en")
	}
}

func TestLoaderBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	_, err := New(server.Client()).Load(context.Background(), server.URL)
	if !errors.Is(err, ErrBadStatus) {
		t.Errorf("Load() error = %v, want ErrBadStatus", err)
	}
}

func TestLoaderSiteOverrides(t *testing.T) {
	t.Parallel()

	var gotUA, gotCookie, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotCookie = r.Header.Get("Cookie")
		gotToken = r.Header.Get("X-Api-Token")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	t.Cleanup(server.Close)

	host := strings.TrimPrefix(server.URL, "http://")
	host = strings.Split(host, ":")[0]

	sites := &config.File{
		Sites: map[string]config.SiteConfig{
			host: {
				Cookie:    "session=abc123",
				UserAgent: "SiteBot/2.0",
				Headers:   map[string]string{"X-Api-Token": "secret"},
			},
		},
	}

	l := New(server.Client(), WithSiteConfigs(sites))
	if _, err := l.Load(context.Background(), server.URL); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if gotUA != "SiteBot/2.0" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "SiteBot/2.0")
	}
	if gotCookie != "session=abc123" {
		t.Errorf("Cookie = %q, want %q", gotCookie, "session=abc123")
	}
	if gotToken != "secret" {
		t.Errorf("X-Api-Token = %q, want %q", gotToken, "secret")
	}
}

func TestLoaderBodyLimit(t *testing.T) {
	t.Parallel()

	big := "<html><body>" + strings.Repeat("x", 10_000) + "</body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(big))
	}))
	t.Cleanup(server.Close)

	l := New(server.Client(), WithMaxBodySize(1024))
	page, err := l.Load(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(page.HTML) > 1024 {
		t.Errorf("len(HTML) = %d, want at most 1024", len(page.HTML))
	}
}

func TestLoaderTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte("<html></html>"))
	}))
	t.Cleanup(server.Close)

	l := New(server.Client(), WithTimeout(50*time.Millisecond))
	if _, err := l.Load(context.Background(), server.URL); err == nil {
		t.Error("Load() error = nil, want timeout error")
	}
}

func TestNormalizeTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rawURL  string
		want    string
		wantErr error
	}{
		{name: "empty", rawURL: "", wantErr: ErrEmptyURL},
		{name: "whitespace only", rawURL: "   ", wantErr: ErrEmptyURL},
		{name: "scheme defaulted to https", rawURL: "example.com/blog", want: "https://example.com/blog"},
		{name: "explicit http kept", rawURL: "http://example.com", want: "http://example.com"},
		{name: "ftp rejected", rawURL: "ftp://example.com/file", wantErr: ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := normalizeTarget(tt.rawURL)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("normalizeTarget(%q) error = %v, want %v", tt.rawURL, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeTarget(%q) error = %v", tt.rawURL, err)
			}
			if u.String() != tt.want {
				t.Errorf("normalizeTarget(%q) = %q, want %q", tt.rawURL, u.String(), tt.want)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	english := "The quick brown fox jumps over the lazy dog while the sun sets behind the hills."
	if got := DetectLanguage(english); got != "en" {
		t.Errorf("DetectLanguage(english prose) = %q, want %q", got, "en")
	}
	if got := DetectLanguage(""); got != "" {
		t.Errorf("DetectLanguage(empty) = %q, want empty", got)
	}
}

func TestDetectLanguageSampleRuneBoundary(t *testing.T) {
	t.Parallel()

	// Long multi-byte text forces sample truncation; the truncated
	// sample must stay valid UTF-8 and still detect correctly.
	japanese := strings.Repeat("吾輩は猫である。名前はまだ無い。どこで生れたかとんと見当がつかぬ。", 100)
	if len(japanese) <= maxDetectionSample {
		t.Fatalf("fixture too short to trigger truncation: %d bytes", len(japanese))
	}

	got := DetectLanguage(japanese)
	if got != "ja" {
		t.Errorf("DetectLanguage(japanese prose) = %q, want %q", got, "ja")
	}
}
