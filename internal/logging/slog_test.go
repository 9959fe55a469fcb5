package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug, // чтобы логировался и Debug
	})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		attr  string
	}{
		{"DEBUG", "dbg", "a=1"},
		{"INFO", "inf", "b=2"},
		{"WARN", "wrn", "c=3"},
		{"ERROR", "err", "d=4"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.attr)
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("record", "GitHub").Warn(context.Background(), "dropped", "field", "remember")

	out := buf.String()
	assert.Contains(t, out, "record=GitHub")
	assert.Contains(t, out, "field=remember")
	assert.Contains(t, out, "level=WARN")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	var quiet, verbose bytes.Buffer
	ctx := context.Background()

	New(&quiet, false).Debug(ctx, "hidden")
	New(&verbose, true).Debug(ctx, "shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "msg=shown")
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	log := Discard()
	assert.NotPanics(t, func() {
		log.Info(context.TODO(), "ok")
		log.With("k", "v").Error(context.TODO(), "ok")
	})
}
