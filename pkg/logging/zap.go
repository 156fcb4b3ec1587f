package logging

import (
	"context"

	"go.uber.org/zap"
)

// NewZap returns a Logger that writes through the provided zap.Logger.
// Passing nil yields a no-op zap logger.
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger}
}

type zapLogger struct {
	logger *zap.Logger
}

func zapFields(args []any) []zap.Field {
	kvs := pairs(args)
	fields := make([]zap.Field, 0, len(kvs))
	for _, p := range kvs {
		if err, ok := p.value.(error); ok {
			fields = append(fields, zap.NamedError(p.key, err))
			continue
		}
		fields = append(fields, zap.Any(p.key, p.value))
	}
	return fields
}

func (l *zapLogger) Debug(_ context.Context, msg string, args ...any) {
	l.logger.Debug(msg, zapFields(args)...)
}

func (l *zapLogger) Info(_ context.Context, msg string, args ...any) {
	l.logger.Info(msg, zapFields(args)...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, args ...any) {
	l.logger.Warn(msg, zapFields(args)...)
}

func (l *zapLogger) Error(_ context.Context, msg string, args ...any) {
	l.logger.Error(msg, zapFields(args)...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{logger: l.logger.With(zapFields(args)...)}
}
