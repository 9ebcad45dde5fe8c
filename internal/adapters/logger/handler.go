package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/sherpa/internal/ui/output"
	"go.trai.ch/sherpa/internal/ui/style"
)

// PrettyHandler is a custom slog.Handler that produces human-readable,
// colored output using the shared UI components.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs holds pre-qualified handler attributes, prefix the dotted
	// path of open groups applied to record attributes.
	attrs  []slog.Attr
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	msg, color := decorate(r.Level, r.Message)

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, attr.Key+"="+attr.Value.String())
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, qualifyKey(h.prefix, attr.Key)+"="+attr.Value.String())
		return true
	})

	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
// Keys are qualified with the currently open groups.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	qualified := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		qualified[i] = slog.Attr{
			Key:   qualifyKey(h.prefix, attr.Key),
			Value: attr.Value,
		}
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  slices.Concat(h.attrs, qualified),
		prefix: h.prefix,
	}
}

// WithGroup returns a new Handler that qualifies subsequent attribute
// keys with the group name. An empty name returns the receiver
// unchanged, as the slog.Handler contract requires.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  h.attrs,
		prefix: qualifyKey(h.prefix, name),
	}
}

// decorate prepends the level icon and selects the level color.
func decorate(level slog.Level, message string) (string, termenv.Color) {
	switch level {
	case slog.LevelWarn:
		return style.Warning + " " + message, termenv.RGBColor(string(style.Yellow))
	case slog.LevelError:
		return style.Cross + " " + message, termenv.RGBColor(string(style.Red))
	default:
		return message, termenv.RGBColor(string(style.Slate))
	}
}

func qualifyKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
