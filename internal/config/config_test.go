package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"ecommerce-eda-lab/internal/data"
	"ecommerce-eda-lab/internal/render"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, data.DefaultRows, cfg.Rows)
	assert.Equal(t, uint64(data.DefaultSeed), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, render.DefaultOptions(), cfg.RenderOptions())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EDA_ROWS", "250")
	t.Setenv("EDA_SEED", "7")
	t.Setenv("EDA_OUTPUT", "out.png")
	t.Setenv("EDA_DPI", "72")
	t.Setenv("EDA_WIDTH_INCHES", "10")
	t.Setenv("EDA_HEIGHT_INCHES", "12.5")
	t.Setenv("EDA_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, data.SeedConfig{Rows: 250, Seed: 7}, cfg.Seeding())
	opts := cfg.RenderOptions()
	assert.Equal(t, "out.png", opts.Path)
	assert.Equal(t, 72, opts.DPI)
	assert.Equal(t, 10*vg.Inch, opts.Width)
	assert.Equal(t, 12.5*vg.Inch, opts.Height)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero rows", "EDA_ROWS", "0"},
		{"negative rows", "EDA_ROWS", "-3"},
		{"blank output", "EDA_OUTPUT", "  "},
		{"zero dpi", "EDA_DPI", "0"},
		{"negative width", "EDA_WIDTH_INCHES", "-1"},
		{"unknown level", "EDA_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoad_Unparsable(t *testing.T) {
	t.Setenv("EDA_ROWS", "many")
	_, err := Load()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}
