package config_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scmforge/config"
)

func TestLoadEnv_Defaults(t *testing.T) {
	for _, k := range []string{"SCMFORGE_SAMPLE_SIZE", "SCMFORGE_SEED", "SCMFORGE_LOG_LEVEL", "SCMFORGE_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	e, err := config.LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 1000, e.SampleSize)
	assert.Equal(t, uint64(0), e.Seed)
	assert.Equal(t, "info", e.LogLevel)
	assert.Equal(t, "text", e.LogFormat)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("SCMFORGE_SAMPLE_SIZE", "250")
	t.Setenv("SCMFORGE_SEED", "17")
	t.Setenv("SCMFORGE_LOG_LEVEL", "debug")
	t.Setenv("SCMFORGE_LOG_FORMAT", "json")
	e, err := config.LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 250, e.SampleSize)
	assert.Equal(t, uint64(17), e.Seed)

	level, err := e.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	var buf bytes.Buffer
	log, err := e.Logger(&buf)
	require.NoError(t, err)
	log.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestLoadEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"SCMFORGE_SAMPLE_SIZE": "0",
		"SCMFORGE_LOG_LEVEL":   "loud",
		"SCMFORGE_LOG_FORMAT":  "xml",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := config.LoadEnv()
			assert.ErrorIs(t, err, config.ErrInvalidEnv)
		})
	}

	t.Run("unparsable", func(t *testing.T) {
		t.Setenv("SCMFORGE_SEED", "-3")
		_, err := config.LoadEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})
}
