package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestContextLoggerCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", "info", &buf)

	reqLogger := WithSessionID(WithRequestID("abc123"), "sess-1")
	ctx := NewContext(context.Background(), &reqLogger)

	WithContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"abc123"`)
	assert.Contains(t, out, `"session_id":"sess-1"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestWithContextFallsBackToGlobal(t *testing.T) {
	assert.Same(t, Get(), WithContext(context.Background()))
}
