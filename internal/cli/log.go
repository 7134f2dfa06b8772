// Package cli implements the glyphfall command-line interface.
//
// The commands generate falling-glyph grids and render them (render), print
// them to the terminal (show, watch), serve them over HTTP (serve) and manage
// the configuration file and artifact cache (config, cache). Commands are
// built with cobra and log through charmbracelet/log.
//
// # Logging
//
// Status lines (spinner, success marks, file lists) go to stderr through
// the ui helpers. Structured log records go through one charmbracelet
// logger carried in the command context; --verbose (-v) lowers it to debug,
// which also surfaces the pipeline and cache events from [logHooks].
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs one info record for a finished command step, with the
// elapsed time appended as a field.
type progress struct {
	logger *log.Logger
	op     string
	start  time.Time
}

func newProgress(l *log.Logger, op string) *progress {
	return &progress{logger: l, op: op, start: time.Now()}
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// done logs op with keyvals followed by elapsed=<duration>.
func (p *progress) done(keyvals ...any) {
	p.logger.Info(p.op, append(keyvals, "elapsed", p.elapsed())...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the command logger, or log.Default when the
// context carries none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
