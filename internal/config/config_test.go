package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoConfigFilePresent(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "IBM", cfg.Ticker)
	assert.False(t, cfg.TradeActive)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "-", cfg.Output)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BOOKENGINE_TICKER", "VAL")
	t.Setenv("BOOKENGINE_TRADE_ACTIVE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "VAL", cfg.Ticker)
	assert.True(t, cfg.TradeActive)
}
