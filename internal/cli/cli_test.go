package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full flag set", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{
			"-manifest", "aliases.hcl",
			"-strict",
			"-log-format", "text",
			"-log-level", "debug",
			"db", "cache",
		}, &out)
		require.NoError(t, err)
		require.False(t, exit)
		require.NotNil(t, cfg)

		assert.Equal(t, "aliases.hcl", cfg.ManifestPath)
		assert.Equal(t, []string{"db", "cache"}, cfg.Names)
		assert.True(t, cfg.Strict)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("shorthand manifest flag", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"-m", "dir/"}, &out)
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "dir/", cfg.ManifestPath)
		assert.Empty(t, cfg.Names)
		assert.False(t, cfg.Strict)
	})

	t.Run("no manifest prints usage and exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("invalid log format", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"-m", "x.hcl", "-log-format", "xml"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log level", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"-m", "x.hcl", "-log-level", "loud"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("unknown flag", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"-bogus"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}
