package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, zerolog.InfoLevel)

	For("store").Info().Int("count", 3).Msg("loaded")
	For("store").Debug().Msg("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "loaded", entry["message"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Equal(t, "info", entry["level"])
}
