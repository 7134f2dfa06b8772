package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
		{"warn at error", log.ErrorLevel, func(l *log.Logger) { l.Warn("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel), "render")
	prog.start = time.Now().Add(-1500 * time.Millisecond)
	prog.done("format", "svg", "seed", uint64(42))

	line := buf.String()
	for _, want := range []string{"INFO", "render", "format=svg", "seed=42", "elapsed=1.5"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
	if strings.Index(line, "seed=42") > strings.Index(line, "elapsed=") {
		t.Errorf("elapsed should follow the caller's fields: %q", line)
	}
}

func TestLogHooks(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		level log.Level
		emit  func(logHooks)
		want  []string
	}{
		{
			name:  "cache hit at debug",
			level: log.DebugLevel,
			emit:  func(h logHooks) { h.OnCacheHit(ctx, "render") },
			want:  []string{"DEBU", "cache hit", "type=render"},
		},
		{
			name:  "generate done at debug",
			level: log.DebugLevel,
			emit:  func(h logHooks) { h.OnGenerateComplete(ctx, 4, 3, 2*time.Millisecond, nil) },
			want:  []string{"generate done", "rows=4", "cols=3", "duration=2ms"},
		},
		{
			name:  "render failure at debug",
			level: log.DebugLevel,
			emit:  func(h logHooks) { h.OnRenderComplete(ctx, []string{"pdf"}, 0, errors.New("rsvg missing")) },
			want:  []string{"render failed", "rsvg missing"},
		},
		{
			name:  "cache hit hidden at info",
			level: log.InfoLevel,
			emit:  func(h logHooks) { h.OnCacheHit(ctx, "render") },
			want:  nil,
		},
		{
			name:  "request error shown at info",
			level: log.InfoLevel,
			emit:  func(h logHooks) { h.OnError(ctx, "GET", "/v1/grid.{format}", errors.New("boom")) },
			want:  []string{"WARN", "request error", "method=GET", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(logHooks{newLogger(&buf, tt.level)})
			if tt.want == nil && buf.Len() != 0 {
				t.Fatalf("unexpected output %q", buf.String())
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q missing %q", buf.String(), w)
				}
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), l)
	if loggerFromContext(ctx) != l {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	loggerFromContext(ctx).Info("attached")
	if !strings.Contains(buf.String(), "attached") {
		t.Errorf("output = %q", buf.String())
	}
}
