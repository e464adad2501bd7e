package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(b *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(b, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// TestLimiter_FirstN tests that only the first n records of an event are emitted.
func TestLimiter_FirstN(t *testing.T) {
	var out bytes.Buffer
	l := NewLimiter(newBufferLogger(&out))

	for i := range 10 {
		emitted := l.Limit("exhausted", 3, slog.LevelWarn, "pool exhausted", "i", i)
		assert.Equal(t, i < 3, emitted, "occurrence %d", i)
	}

	assert.Equal(t, 10, l.Count("exhausted"))
	assert.Equal(t, 3, strings.Count(out.String(), "pool exhausted"))
}

// TestLimiter_IndependentEvents tests that each event has its own budget.
func TestLimiter_IndependentEvents(t *testing.T) {
	var out bytes.Buffer
	l := NewLimiter(newBufferLogger(&out))

	require.True(t, l.Limit("a", 1, slog.LevelWarn, "event a"))
	require.False(t, l.Limit("a", 1, slog.LevelWarn, "event a"))
	require.True(t, l.Limit("b", 1, slog.LevelWarn, "event b"))

	assert.Equal(t, 2, l.Count("a"))
	assert.Equal(t, 1, l.Count("b"))
	assert.Equal(t, 0, l.Count("never"))
}

// TestLimiter_Loud tests that loud records are never suppressed.
func TestLimiter_Loud(t *testing.T) {
	var out bytes.Buffer
	l := NewLimiter(newBufferLogger(&out))

	for range 20 {
		l.Loud("oversized", "capture too large")
	}
	assert.Equal(t, 20, strings.Count(out.String(), "capture too large"))
	assert.Equal(t, 20, l.Count("oversized"))
}

// TestInit tests switching the global logger on and off.
func TestInit(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: true, JSON: true, Level: slog.LevelDebug, Output: &out})
	Info("hello", "k", 1)
	assert.Contains(t, out.String(), `"msg":"hello"`)

	out.Reset()
	Init(Options{})
	Warn("dropped")
	assert.Empty(t, out.String())
}
