package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// DefaultMaxValueLen is the length at which string attribute values are
// truncated. Page analysis routinely logs URLs, titles, and content
// snippets; anything longer than this is almost certainly raw HTML or
// extracted text that belongs in the report, not the log.
const DefaultMaxValueLen = 256

// TruncateMarker is appended to truncated values so the cut is visible.
const TruncateMarker = "...(truncated)"

// TruncatingHandler wraps an slog.Handler and truncates oversized string
// attribute values before passing records on.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free of length checks
type TruncatingHandler struct {
	// handler is the underlying slog handler that receives the records.
	handler slog.Handler

	// maxLen is the maximum string value length before truncation.
	maxLen int
}

// TruncatingOption configures a TruncatingHandler.
type TruncatingOption func(*TruncatingHandler)

// WithMaxValueLen overrides the truncation threshold.
func WithMaxValueLen(n int) TruncatingOption {
	return func(h *TruncatingHandler) {
		if n > 0 {
			h.maxLen = n
		}
	}
}

// NewTruncatingHandler creates a TruncatingHandler wrapping the given
// handler. If handler is nil, slog.Default().Handler() is used.
func NewTruncatingHandler(handler slog.Handler, opts ...TruncatingOption) *TruncatingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	h := &TruncatingHandler{
		handler: handler,
		maxLen:  DefaultMaxValueLen,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Enabled reports whether the handler handles records at the given
// level. It delegates to the underlying handler.
func (h *TruncatingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle truncates the record's attributes and passes it on.
func (h *TruncatingHandler) Handle(ctx context.Context, r slog.Record) error {
	truncated := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		truncated.AddAttrs(h.truncateAttr(a))
		return true
	})
	return h.handler.Handle(ctx, truncated)
}

// WithAttrs returns a new handler with the given attributes added,
// truncated first.
func (h *TruncatingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	truncated := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		truncated[i] = h.truncateAttr(a)
	}
	return &TruncatingHandler{handler: h.handler.WithAttrs(truncated), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncatingHandler) WithGroup(name string) slog.Handler {
	return &TruncatingHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// truncateAttr truncates a single attribute, recursively handling groups.
func (h *TruncatingHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		truncated := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			truncated[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(truncated...)}
	}

	if a.Value.Kind() == slog.KindString {
		if s := a.Value.String(); len(s) > h.maxLen {
			return slog.String(a.Key, s[:h.maxLen]+TruncateMarker)
		}
	}
	return a
}

// NewLogger creates the analyzer's standard logger: a text handler on
// stderr wrapped by a TruncatingHandler. Verbose enables debug-level
// output; otherwise only warnings and errors are logged.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	base := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncatingHandler(base))
}
