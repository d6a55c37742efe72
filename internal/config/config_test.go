package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultLogDir, c.LogDir)
	assert.Equal(t, time.Second, c.CandleInterval)
	assert.Equal(t, "timeline", c.Layout)
	assert.True(t, c.OpenBrowser)
	assert.NoError(t, c.Validate())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
log_dir: /var/sim/logs
candle_interval: 5s
layout: bands
palette:
  MyStrategy: "#abcdef"
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/sim/logs", c.LogDir)
	assert.Equal(t, 5*time.Second, c.CandleInterval)
	assert.Equal(t, "bands", c.Layout)
	assert.Equal(t, "#abcdef", c.Palette["MyStrategy"])
	// untouched keys keep their defaults
	assert.True(t, c.OpenBrowser)
	assert.Equal(t, "info", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoad_RelativeLogDir(t *testing.T) {
	path := writeConfig(t, "log_dir: logs\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "logs"), c.LogDir)
}

func TestLoad_EmptyFile(t *testing.T) {
	c, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"unknown key", writeConfig(t, "colour_scheme: dark\n")},
		{"bad duration", writeConfig(t, "candle_interval: soon\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestApplyFlags_OnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--layout=bands", "--no-browser", "--candle-interval=2s"}))

	c := Default()
	c.LogDir = "/from/file"
	require.NoError(t, c.ApplyFlags(fs))

	assert.Equal(t, "/from/file", c.LogDir)
	assert.Equal(t, "bands", c.Layout)
	assert.False(t, c.OpenBrowser)
	assert.Equal(t, 2*time.Second, c.CandleInterval)
	assert.Empty(t, c.RunID)
}

func TestApplyFlags_RunAndMetrics(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--run", "20250601_120000", "--metrics-file", "m.prom", "--log-level", "debug"}))

	c := Default()
	require.NoError(t, c.ApplyFlags(fs))
	assert.Equal(t, "20250601_120000", c.RunID)
	assert.Equal(t, "m.prom", c.MetricsFile)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty log dir", func(c *Config) { c.LogDir = " " }},
		{"zero interval", func(c *Config) { c.CandleInterval = 0 }},
		{"unknown layout", func(c *Config) { c.Layout = "grid" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"blank palette colour", func(c *Config) { c.Palette = map[string]string{"X": ""} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
