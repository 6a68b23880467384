package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensefinder/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Found 42 packages (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// commandLogger reports spawned commands at debug level.
type commandLogger struct {
	logger *log.Logger
}

func newCommandLogger(l *log.Logger) *commandLogger {
	return &commandLogger{logger: l}
}

func (h *commandLogger) OnCommandStart(_ context.Context, dir, line string) {
	h.logger.Debug("exec", "command", line, "dir", dir)
}

func (h *commandLogger) OnCommandComplete(_ context.Context, dir, line string, exitCode int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("exec failed", "command", line, "err", err)
		return
	}
	h.logger.Debug("exec done", "command", line, "exit", exitCode, "took", d.Round(time.Millisecond))
}

var _ observability.CommandHooks = (*commandLogger)(nil)
