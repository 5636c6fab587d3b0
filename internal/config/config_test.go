package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "ANIMALSPOTTER_BASE_URL", "ANIMALSPOTTER_LOG_LEVEL", "ANIMALSPOTTER_DEVSERVER_ADDR")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://lambdaanimalspotter.vapor.cloud/api", cfg.BaseURL)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.Equal(t, ":8080", cfg.DevServerAddr)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ANIMALSPOTTER_BASE_URL", "http://localhost:9000")
	t.Setenv("ANIMALSPOTTER_LOG_LEVEL", "DEBUG")
	t.Setenv("ANIMALSPOTTER_DEVSERVER_ADDR", "127.0.0.1:0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, "127.0.0.1:0", cfg.DevServerAddr)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		" Info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"ERROR":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestInitLoggerTo(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	InitLoggerTo(&buf)
	SetLogLevel(zerolog.WarnLevel)

	log.Info().Msg("hidden")
	log.Warn().Str("k", "v").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "k=v")
	assert.NotContains(t, out, "\x1b[", "console output must not be coloured")
}
