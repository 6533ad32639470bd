package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestTruncatingHandlerShortValuesPassThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewTruncatingHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("fetched page", "url", "https://example.com")

	out := buf.String()
	if !strings.Contains(out, "https://example.com") {
		t.Errorf("output = %q, want the full short value", out)
	}
	if strings.Contains(out, TruncateMarker) {
		t.Errorf("output = %q, short value was truncated", out)
	}
}

func TestTruncatingHandlerLongValuesTruncated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewTruncatingHandler(
		slog.NewTextHandler(&buf, nil),
		WithMaxValueLen(10),
	))

	logger.Info("parsed page", "html", strings.Repeat("x", 100))

	out := buf.String()
	if !strings.Contains(out, TruncateMarker) {
		t.Errorf("output = %q, want truncation marker", out)
	}
	if strings.Contains(out, strings.Repeat("x", 11)) {
		t.Errorf("output = %q, value longer than limit survived", out)
	}
}

func TestTruncatingHandlerGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewTruncatingHandler(
		slog.NewTextHandler(&buf, nil),
		WithMaxValueLen(10),
	))

	logger.Info("nested",
		slog.Group("page",
			slog.String("text", strings.Repeat("y", 50)),
			slog.Int("words", 7),
		),
	)

	out := buf.String()
	if !strings.Contains(out, TruncateMarker) {
		t.Errorf("output = %q, want truncation inside group", out)
	}
	if !strings.Contains(out, "words=7") {
		t.Errorf("output = %q, non-string group attr should pass through", out)
	}
}

func TestTruncatingHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewTruncatingHandler(
		slog.NewTextHandler(&buf, nil),
		WithMaxValueLen(10),
	)).With("snippet", strings.Repeat("z", 40))

	logger.Info("with attrs")

	if !strings.Contains(buf.String(), TruncateMarker) {
		t.Errorf("output = %q, want pre-bound attr truncated", buf.String())
	}
}

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	var quiet bytes.Buffer
	NewLogger(&quiet, false).Debug("hidden")
	if quiet.Len() != 0 {
		t.Errorf("non-verbose logger emitted debug output: %q", quiet.String())
	}

	var loud bytes.Buffer
	NewLogger(&loud, true).Debug("visible")
	if loud.Len() == 0 {
		t.Error("verbose logger swallowed debug output")
	}
}
