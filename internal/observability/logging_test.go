package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestContextAttributes(t *testing.T) {
	buf := captureLogs(t)

	ctx := WithStage(WithRunID(context.Background(), "run-1"), "build")
	InfoContext(ctx, "Built sidebar", slog.String("sidebar", "docs"))

	out := buf.String()
	assert.Contains(t, out, "run_id=run-1")
	assert.Contains(t, out, "stage=build")
	assert.Contains(t, out, "sidebar=docs")
	assert.Equal(t, "run-1", RunID(ctx))
}

func TestStageOverridesKeepRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-2")
	ctx = WithStage(ctx, "build")
	ctx = WithStage(ctx, "export")

	lc := extractLogContext(ctx)
	assert.Equal(t, LogContext{RunID: "run-2", Stage: "export"}, lc)
}

func TestLevels(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.Background()

	DebugContext(ctx, "d")
	WarnContext(ctx, "w")
	ErrorContext(ctx, "e")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=d")
	assert.Contains(t, out, "level=WARN msg=w")
	assert.Contains(t, out, "level=ERROR msg=e")
	assert.Empty(t, RunID(ctx))
}
