package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", "json")
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("theme", "solarized-dark").Msg("built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "built", entry["message"])
	require.Equal(t, "solarized-dark", entry["theme"])
	require.Equal(t, "themes", entry["component"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "DEBUG", "console")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	logger.Debug().Msg("loaded")
	require.Contains(t, buf.String(), "loaded")
}

func TestNewDefaultsEmptyLevelToWarn(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, "", "")
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "json")
	require.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}
