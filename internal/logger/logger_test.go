package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flyrell/burnbite/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"":        zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNewWritesJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	log := New(buf, zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	log.Info().Str("component", "test").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, `"time":`)
}

func TestOpenStderrRespectsLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	log, closeFn, err := Open(config.Default(), buf, false)
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	log.Info().Msg("quiet")
	log.Warn().Msg("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestOpenVerboseForcesDebug(t *testing.T) {
	buf := new(bytes.Buffer)
	log, closeFn, err := Open(&config.Config{LogLevel: "error"}, buf, true)
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	log.Debug().Msg("details")

	assert.Contains(t, buf.String(), "details")
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burnbite.log")
	log, closeFn, err := Open(&config.Config{LogLevel: "info", LogFile: path}, new(bytes.Buffer), false)
	require.NoError(t, err)

	log.Info().Msg("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestOpenInvalidLevel(t *testing.T) {
	_, _, err := Open(&config.Config{LogLevel: "chatty"}, new(bytes.Buffer), false)

	assert.Error(t, err)
}
