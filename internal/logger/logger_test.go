package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLoggerCapturesLevels(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %d", 1)
	l.Info("info")
	l.Warn("cpu reading unavailable: %s", "timeout")
	l.Error("fatal")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, "debug 1", l.Messages[0].Message)
	assert.Equal(t, "warn", l.Messages[2].Level)
	assert.Equal(t, "cpu reading unavailable: timeout", l.Messages[2].Message)

	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("trace"))
}

func TestBufferLoggerClear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestNoopDiscards(t *testing.T) {
	l := Noop()
	// Must not panic or produce output
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Warn("captured")

	assert.True(t, buf.HasLevel("warn"))
}
