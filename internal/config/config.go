// Package config holds the report settings: defaults, an optional YAML file
// and command-line overrides, applied in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"price-impact-report/internal/domain"
	"price-impact-report/internal/reporting"
)

// ErrInvalidConfig is returned for unreadable or inconsistent settings.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultLogDir is where the simulator writes its logs, relative to the
// working directory of a checkout next to the simulator project.
const DefaultLogDir = "../PriceImpactSimulator/bin/Debug/net9.0/logs"

// Flag names.
const (
	FlagConfig         = "config"
	FlagLogDir         = "log-dir"
	FlagRun            = "run"
	FlagLayout         = "layout"
	FlagCandleInterval = "candle-interval"
	FlagNoBrowser      = "no-browser"
	FlagMetricsFile    = "metrics-file"
	FlagLogLevel       = "log-level"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	LogDir string `yaml:"log_dir"`
	// RunID pins a run instead of picking the newest one.
	RunID          string            `yaml:"run"`
	CandleInterval time.Duration     `yaml:"candle_interval"`
	Layout         string            `yaml:"layout"`
	OpenBrowser    bool              `yaml:"open_browser"`
	MetricsFile    string            `yaml:"metrics_file"`
	LogLevel       string            `yaml:"log_level"`
	Palette        map[string]string `yaml:"palette"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		LogDir:         DefaultLogDir,
		CandleInterval: domain.DefaultCandleInterval,
		Layout:         string(reporting.LayoutTimeline),
		OpenBrowser:    true,
		LogLevel:       "info",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
// A relative log_dir is resolved against the directory of the file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}

	c := Default()
	fileDir := c.LogDir
	c.LogDir = ""

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	if c.LogDir == "" {
		c.LogDir = fileDir
	} else if !filepath.IsAbs(c.LogDir) {
		c.LogDir = filepath.Join(filepath.Dir(path), c.LogDir)
	}
	return c, nil
}

// RegisterFlags defines the override flags on fs with the defaults as values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "YAML config file")
	fs.String(FlagLogDir, d.LogDir, "directory holding the simulator CSV logs")
	fs.String(FlagRun, "", "run id to report on (default: newest run)")
	fs.String(FlagLayout, d.Layout, "strategy layout: timeline or bands")
	fs.Duration(FlagCandleInterval, d.CandleInterval, "candle width")
	fs.Bool(FlagNoBrowser, false, "write the report without opening it")
	fs.String(FlagMetricsFile, "", "write Prometheus metrics to this file")
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
}

// ApplyFlags overlays the flags the user set explicitly.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	str := func(name string, dst *string) {
		if err != nil || !fs.Changed(name) {
			return
		}
		*dst, err = fs.GetString(name)
	}
	str(FlagLogDir, &c.LogDir)
	str(FlagRun, &c.RunID)
	str(FlagLayout, &c.Layout)
	str(FlagMetricsFile, &c.MetricsFile)
	str(FlagLogLevel, &c.LogLevel)

	if err == nil && fs.Changed(FlagCandleInterval) {
		c.CandleInterval, err = fs.GetDuration(FlagCandleInterval)
	}
	if err == nil && fs.Changed(FlagNoBrowser) {
		var noBrowser bool
		noBrowser, err = fs.GetBool(FlagNoBrowser)
		if noBrowser {
			c.OpenBrowser = false
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.LogDir) == "" {
		return fmt.Errorf("%w: log_dir is required", ErrInvalidConfig)
	}
	if c.CandleInterval <= 0 {
		return fmt.Errorf("%w: candle_interval must be positive, got %s", ErrInvalidConfig, c.CandleInterval)
	}
	if !reporting.LayoutMode(c.Layout).IsValid() {
		return fmt.Errorf("%w: layout must be %q or %q, got %q",
			ErrInvalidConfig, reporting.LayoutTimeline, reporting.LayoutBands, c.Layout)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	for name, color := range c.Palette {
		if strings.TrimSpace(color) == "" {
			return fmt.Errorf("%w: palette entry %q has no colour", ErrInvalidConfig, name)
		}
	}
	return nil
}
