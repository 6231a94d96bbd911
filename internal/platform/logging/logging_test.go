package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			if out := buf.String(); !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		log     func(*slog.Logger)
		wantOut bool
	}{
		{name: "debug passes at debug", level: "debug", log: func(l *slog.Logger) { l.Debug("m") }, wantOut: true},
		{name: "uppercase level", level: "DEBUG", log: func(l *slog.Logger) { l.Debug("m") }, wantOut: true},
		{name: "debug filtered at info", level: "info", log: func(l *slog.Logger) { l.Debug("m") }},
		{name: "warn filtered at error", level: "error", log: func(l *slog.Logger) { l.Warn("m") }},
		{name: "unknown level is info", level: "verbose", log: func(l *slog.Logger) { l.Debug("m") }},
		{name: "info passes unknown level", level: "verbose", log: func(l *slog.Logger) { l.Info("m") }, wantOut: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))

			if got := buf.Len() > 0; got != tt.wantOut {
				t.Errorf("wrote output = %v, want %v (output %q)", got, tt.wantOut, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Debug("with source")
	logging.New("info", "json", &infoBuf).Info("no source")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want a source attribute", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source attribute", infoBuf.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext(bare ctx) did not return slog.Default()")
	}

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})

	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)

	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext returned the outer logger, want the most recently stored one")
	}
}

func TestFromContextOr(t *testing.T) {
	t.Parallel()

	fallback := logging.New("info", "json", &bytes.Buffer{})
	if got := logging.FromContextOr(context.Background(), fallback); got != fallback {
		t.Error("FromContextOr(bare ctx) did not return the fallback")
	}

	stored := logging.New("debug", "json", &bytes.Buffer{})
	ctx := logging.WithLogger(context.Background(), stored)
	if got := logging.FromContextOr(ctx, fallback); got != stored {
		t.Error("FromContextOr returned the fallback, want the stored logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization header", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "dsn field", attr: slog.String("dsn", "host=db user=todo"), secret: "user=todo"},
		{name: "raw bearer value", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "key value dsn password", attr: slog.String("conn", "host=db user=todo password=s3cret"), secret: "s3cret"},
		{name: "url dsn credentials", attr: slog.String("conn", "postgres://todo:s3cret@db:5432/todo"), secret: "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want a [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsNonSensitiveFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("event",
		slog.Int64("todo_id", 42),
		slog.String("path", "/v1/todo/42"),
	)

	out := buf.String()
	for _, want := range []string{`"todo_id":42`, "/v1/todo/42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		if got := logging.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
