package security

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))
	logger.Log("write_started", map[string]any{"sheets": 2})
	assert.Contains(t, buf.String(), "write_started")
	assert.Contains(t, buf.String(), "sheets")
}

func TestNopLoggerDiscards(t *testing.T) {
	var l NopLogger
	l.Log("anything", map[string]any{"a": 1})
}
