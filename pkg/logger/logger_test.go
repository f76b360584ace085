package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func keyExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, keyExtractor, nil).With("component", "test")

	log.InfoContext(context.WithValue(context.Background(), ctxKey{}, "r-1"), "hello")
	line := decode(t, &buf)
	assert.Equal(t, "r-1", line["request_id"])
	assert.Equal(t, "test", line["component"])

	buf.Reset()
	log.Info("no request")
	line = decode(t, &buf)
	assert.NotContains(t, line, "request_id")

	buf.Reset()
	log.Debug("filtered")
	assert.Zero(t, buf.Len())
}

func TestFanout(t *testing.T) {
	t.Parallel()

	var all, errs bytes.Buffer
	log := slog.New(fanout{
		jsonHandler(&all, slog.LevelDebug),
		jsonHandler(&errs, slog.LevelError),
	}).WithGroup("req")

	log.Info("info", "path", "/media/intro")
	assert.NotZero(t, all.Len())
	assert.Zero(t, errs.Len())

	log.Error("failed")
	assert.NotZero(t, errs.Len())
	assert.Equal(t, "failed", decode(t, &errs)["msg"])
}

func TestSentryLogLevels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []slog.Level{slog.LevelWarn, slog.LevelError}, sentryLogLevels(slog.LevelWarn))
	assert.Len(t, sentryLogLevels(slog.LevelDebug), 4)
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()

	log := NewWithSentry(Config{Level: slog.LevelWarn})
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.NoError(t, SentryFlush()(context.Background()))
}
