package logging

import (
	"bytes"
	"testing"

	"github.com/TomoakiAbebe/rac-tourist/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONHonoursLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "WARN", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Str("customer_id", "c1").Msg("session recovered")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"customer_id":"c1"`)
	assert.Contains(t, out, `"message":"session recovered"`)
}

func TestNewConsoleIsPlainForNonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Debug().Int("step", 2).Msg("venue selected")

	out := buf.String()
	assert.Contains(t, out, "venue selected")
	assert.Contains(t, out, "step=2")
	assert.NotContains(t, out, "\x1b[")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(config.LogConfig{Level: "loud", Format: "json"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}
