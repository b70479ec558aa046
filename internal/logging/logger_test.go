package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStdLoggerLevelFiltering(t *testing.T) {
	var out bytes.Buffer
	logger := NewStdLogger(LevelWarn, &out)

	ctx := context.Background()
	logger.Debug(ctx, "too quiet")
	logger.Info(ctx, "still too quiet")
	logger.Warn(ctx, "noted")

	require.NotContains(t, out.String(), "too quiet")
	require.Contains(t, out.String(), "[WARN] noted")
}

func TestStdLoggerFieldsAndError(t *testing.T) {
	var out bytes.Buffer
	logger := NewStdLogger(LevelDebug, &out)

	logger.Error(context.Background(), "decode failed", errors.New("bad record"), Field("line", 7))

	require.Contains(t, out.String(), `[error="bad record"]`)
	require.Contains(t, out.String(), "decode failed")
	require.Contains(t, out.String(), "fields=[line=7]")
}

func TestStdLoggerWithFields(t *testing.T) {
	var out bytes.Buffer
	logger := NewStdLogger(LevelInfo, &out).WithFields(Field("mode", "tui"))

	logger.Info(context.Background(), "starting")
	require.Contains(t, out.String(), "mode=tui")
}

func TestStdLoggerSessionIDFromContext(t *testing.T) {
	var out bytes.Buffer
	logger := NewStdLogger(LevelInfo, &out)

	ctx := WithSessionID(context.Background(), "abc123")
	logger.Info(ctx, "hello")
	require.Contains(t, out.String(), "session_id=abc123")
}

func TestNilWriterDiscards(t *testing.T) {
	logger := NewStdLogger(LevelDebug, nil)
	logger.Info(context.Background(), "nowhere")
}
