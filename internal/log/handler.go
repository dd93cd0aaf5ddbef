package log

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// DefaultVerbosity is the verbosity used when none is requested.
const DefaultVerbosity = 3

// LevelForVerbosity maps a verbosity to the lowest slog level that is shown.
func LevelForVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity >= 4:
		return slog.LevelDebug
	case verbosity == 3:
		return slog.LevelInfo
	case verbosity == 2:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// MessageHandler is an slog.Handler that writes one plain line per record:
// the message followed by space separated key=value attributes. No time or
// level is printed.
type MessageHandler struct {
	// w receives the formatted lines.
	w io.Writer

	// mu serializes writes; it is shared by derived handlers.
	mu *sync.Mutex

	// level is the minimum level handled.
	level slog.Leveler

	// attrs are pre-formatted attributes added with WithAttrs.
	attrs string

	// group is the key prefix added with WithGroup.
	group string
}

// NewMessageHandler creates a MessageHandler writing to w.
// If level is nil, slog.LevelInfo is used.
func NewMessageHandler(w io.Writer, level slog.Leveler) *MessageHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &MessageHandler{w: w, mu: &sync.Mutex{}, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *MessageHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats the record and writes it as a single line.
func (h *MessageHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs returns a new handler with the given attributes added.
func (h *MessageHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	clone := *h
	clone.attrs = sb.String()
	return &clone
}

// WithGroup returns a new handler with the given group name.
func (h *MessageHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = joinKey(h.group, name)
	return &clone
}

// appendAttr writes " key=value", recursively flattening groups.
func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group = joinKey(prefix, a.Key)
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, group, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(joinKey(prefix, a.Key))
	sb.WriteByte('=')
	sb.WriteString(formatValue(a.Value.String()))
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// formatValue quotes values that would otherwise be ambiguous.
func formatValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// NewLogger creates an slog.Logger writing plain lines to w, filtered by
// the given verbosity.
func NewLogger(w io.Writer, verbosity int) *slog.Logger {
	return slog.New(NewMessageHandler(w, LevelForVerbosity(verbosity)))
}
