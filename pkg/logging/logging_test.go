package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlogLoggerWritesRecords(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.With("component", "converter").Info(context.Background(), "created", "dic", "/opt/aq_dic", Redacted("key"))

	out := buf.String()
	assert.Contains(t, out, "msg=created")
	assert.Contains(t, out, "component=converter")
	assert.Contains(t, out, "dic=/opt/aq_dic")
	assert.Contains(t, out, "key="+Placeholder())
}

func TestNewNilUsesDefault(t *testing.T) {
	require.NotNil(t, New(nil))
}

func TestNopDiscards(t *testing.T) {
	l := Nop().With("a", 1)
	assert.NotPanics(t, func() {
		l.Debug(context.Background(), "x")
		l.Error(context.Background(), "y", "err", errors.New("boom"))
	})
}

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core)).With("component", "cli")

	l.Warn(context.Background(), "convert failed", "code", 201, "err", errors.New("bad dic"), Redacted("key"))

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, zapcore.WarnLevel, e.Level)
	assert.Equal(t, "convert failed", e.Message)

	fields := e.ContextMap()
	assert.Equal(t, "cli", fields["component"])
	assert.EqualValues(t, 201, fields["code"])
	assert.Equal(t, "bad dic", fields["err"])
	assert.Equal(t, Placeholder(), fields["key"])
}

func TestZapNilIsNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewZap(nil).Info(context.Background(), "ignored")
	})
}

func TestLogrusLoggerFields(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := NewLogrus(base).With("component", "example")

	l.Debug(context.Background(), "released", "handle", 7)

	require.Len(t, hook.Entries, 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, e.Level)
	assert.Equal(t, "released", e.Message)
	assert.Equal(t, "example", e.Data["component"])
	assert.Equal(t, 7, e.Data["handle"])
}

func TestPairsHandlesOddArguments(t *testing.T) {
	got := pairs([]any{"a", 1, 42, "dangling"})
	require.Len(t, got, 3)
	assert.Equal(t, kv{key: "a", value: 1}, got[0])
	assert.Equal(t, kv{key: "!BADKEY", value: 42}, got[1])
	assert.Equal(t, kv{key: "!BADKEY", value: "dangling"}, got[2])
}
