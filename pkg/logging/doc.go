// Package logging provides a minimal logging facade for the AqKanji2Koe and
// AquesTalk wrappers.
//
// The Logger interface wraps a subset of log/slog so applications can plug
// in the logging system they already run:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Implementations
//
//	logging.New(nil)                 // slog.Default()
//	logging.NewZap(zapLogger)        // go.uber.org/zap
//	logging.NewLogrus(logrusLogger)  // github.com/sirupsen/logrus
//	logging.Nop()                    // discards everything
//
// Arguments follow the slog convention of alternating keys and values;
// slog.Attr values are accepted as well.
//
// # Redaction
//
// License keys must never reach a log line. Use Redacted to record that a
// value was intentionally removed:
//
//	logger.Info(ctx, "license key applied", logging.Redacted("key"))
//	// Logs: key="[redacted]"
package logging
