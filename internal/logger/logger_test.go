package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for name, want := range cases {
		assert.Equal(t, want, ParseLevel(name, false), name)
	}
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("error", true))
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("DataPrep", "record set loaded", map[string]interface{}{"rows": 3})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "DataPrep", entry["component"])
	assert.Equal(t, "record set loaded", entry["message"])
	assert.EqualValues(t, 3, entry["rows"])
}

func TestZerologAdapterErrorAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Export", "hidden", nil)
	log.Info("Export", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Error("Export", errors.New("disk full"), map[string]interface{}{"path": "graph_0.png"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "graph_0.png", entry["path"])
}
