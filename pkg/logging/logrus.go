package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

// NewLogrus returns a Logger that writes through the provided logrus logger
// or entry. Passing nil binds to the logrus standard logger.
func NewLogrus(logger logrus.FieldLogger) Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &logrusLogger{logger: logger}
}

type logrusLogger struct {
	logger logrus.FieldLogger
}

func (l *logrusLogger) entry(ctx context.Context, args []any) *logrus.Entry {
	fields := logrus.Fields{}
	for _, p := range pairs(args) {
		fields[p.key] = p.value
	}
	e := l.logger.WithFields(fields)
	if ctx != nil {
		e = e.WithContext(ctx)
	}
	return e
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.entry(ctx, args).Debug(msg)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, args ...any) {
	l.entry(ctx, args).Info(msg)
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.entry(ctx, args).Warn(msg)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, args ...any) {
	l.entry(ctx, args).Error(msg)
}

func (l *logrusLogger) With(args ...any) Logger {
	fields := logrus.Fields{}
	for _, p := range pairs(args) {
		fields[p.key] = p.value
	}
	return &logrusLogger{logger: l.logger.WithFields(fields)}
}
