package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghs/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{App: "test", Level: "DEBUG", Format: logging.FormatJSON, Out: &buf})
	require.NoError(t, err)

	log.Debug().Uint64("node", 3).Msg("merge won")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "test", rec["app"])
	assert.Equal(t, "debug", rec["level"])
	assert.Equal(t, "merge won", rec["message"])
	assert.EqualValues(t, 3, rec["node"])
	assert.Contains(t, rec, "time")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "warn", Format: logging.FormatJSON, Out: &buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())
	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), `"app":"ghsmst"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Out: &buf})
	require.NoError(t, err)

	log.Info().Str("run", "abc").Msg("started")
	assert.Contains(t, buf.String(), "started")
	assert.Contains(t, buf.String(), "run=")
	assert.Contains(t, buf.String(), "abc")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "loud"})
	assert.Error(t, err)

	_, err = logging.New(logging.Config{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrBadFormat)
}
