package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), false)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, ChartText, cfg.Chart.Mode)
	assert.Equal(t, "cash_flows.png", cfg.Chart.Path)
	assert.Equal(t, 50, cfg.Chart.Width)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DCF_LOG_LEVEL", "DEBUG")
	t.Setenv("DCF_CHART_MODE", "image")
	t.Setenv("DCF_CHART_PATH", "/tmp/out.svg")
	t.Setenv("DCF_CHART_WIDTH", "30")
	t.Setenv("DCF_CURRENCY_SYMBOL", "€")

	cfg, err := load(viper.New(), false)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ChartImage, cfg.Chart.Mode)
	assert.Equal(t, "/tmp/out.svg", cfg.Chart.Path)
	assert.Equal(t, 30, cfg.Chart.Width)
	assert.Equal(t, "€", cfg.CurrencySymbol)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "log level", env: map[string]string{"DCF_LOG_LEVEL": "loud"}},
		{name: "chart mode", env: map[string]string{"DCF_CHART_MODE": "window"}},
		{name: "chart width", env: map[string]string{"DCF_CHART_WIDTH": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load(viper.New(), false)
			assert.Error(t, err)
		})
	}
}

func TestValidate_ImageNeedsPath(t *testing.T) {
	cfg := Config{
		LogLevel: "info",
		Chart:    ChartConfig{Mode: ChartImage, Width: 10},
	}
	assert.Error(t, cfg.Validate())

	cfg.Chart.Path = "chart.png"
	assert.NoError(t, cfg.Validate())
}
