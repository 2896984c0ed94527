package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "debug"}, &buf)

	log.Info().Str("pair", "abc").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pairscope", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "abc", entry["pair"])
	assert.Equal(t, "hello", entry["message"])
}

func TestColorizeLevel(t *testing.T) {
	assert.Equal(t, "\033[31merror\033[0m", colorizeLevel("error"))
	assert.Equal(t, "custom", colorizeLevel("custom"))
}
