package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerEmitsKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Info(context.Background(), "searching assignments", "keyword", "go", "page", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "searching assignments", entry["message"])
	assert.Equal(t, "go", entry["keyword"])
	assert.Equal(t, float64(2), entry["page"])
}

func TestZerologLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("component", "directory")

	log.Warn(context.Background(), "fetch failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "directory", entry["component"])
	assert.Equal(t, "warn", entry["level"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("garbage"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}
