package logger

import (
	"context"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the logging interface used across the pipeline. The context is
// accepted so implementations can pick up request-scoped fields.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type implLogger struct {
	logger *charmlog.Logger
}

// New creates a new Logger writing to stderr at the given level. Unknown
// levels fall back to info.
func New(level string) Logger {
	return newWithWriter(os.Stderr, level)
}

func newWithWriter(w io.Writer, level string) Logger {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		lvl = charmlog.InfoLevel
	}

	return &implLogger{
		logger: charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Level:           lvl,
		}),
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Errorf(msg, args...)
}
