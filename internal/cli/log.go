package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostics logger; verbose enables debug lines.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "violins",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// timer measures one step, e.g. rendering a routine, and logs it when
// stopped.
type timer struct {
	logger *log.Logger
	step   string
	start  time.Time
}

func startTimer(l *log.Logger, step string) timer {
	l.Debug("starting", "step", step)
	return timer{logger: l, step: step, start: time.Now()}
}

func (t timer) stop(keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(t.start).Round(time.Millisecond))
	t.logger.Info(t.step, keyvals...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger installed by the root command, or
// log.Default() outside a command run.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
