// Package config loads the application configuration of the registry CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"magazine-registry/internal/observability/logging"
	envconfig "magazine-registry/pkg/config"
)

// Environment variables that override values from the YAML file.
const (
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvSeedPath         = "REGISTRY_SEED_PATH"
	EnvTraceEnabled     = "REGISTRY_TRACE"
	EnvReportTitleWidth = "REGISTRY_REPORT_TITLE_WIDTH"
)

// AppConfig represents the registry application configuration.
type AppConfig struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Seed struct {
		Path string `yaml:"path"`
	} `yaml:"seed"`
	Trace struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"trace"`
	Report struct {
		// TitleWidth truncates article titles in reports. Zero disables truncation.
		TitleWidth int `yaml:"title_width"`
	} `yaml:"report"`
}

// Default returns the configuration used when no file is given.
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.Log.Level = "info"
	cfg.Log.Format = logging.FormatText
	return cfg
}

// Load reads the configuration from path, applies environment overrides and
// validates the result. An empty path yields the defaults plus overrides.
// The path parameter is expected to come from a trusted source (command-line argument).
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is provided by the operator via CLI flag
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	c.Log.Level = envconfig.GetEnvString(EnvLogLevel, c.Log.Level)
	c.Log.Format = envconfig.GetEnvString(EnvLogFormat, c.Log.Format)
	c.Seed.Path = envconfig.GetEnvString(EnvSeedPath, c.Seed.Path)
	c.Trace.Enabled = envconfig.GetEnvBool(EnvTraceEnabled, c.Trace.Enabled)
	c.Report.TitleWidth = envconfig.GetEnvInt(EnvReportTitleWidth, c.Report.TitleWidth)
}

// Validate checks the loaded configuration.
func (c *AppConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case logging.FormatJSON, logging.FormatText:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.Report.TitleWidth < 0 {
		return errors.New("report title_width must not be negative")
	}
	// anything shorter cannot hold the shortest valid title plus an ellipsis
	if c.Report.TitleWidth > 0 && c.Report.TitleWidth < 6 {
		return fmt.Errorf("report title_width must be 0 or at least 6, got %d", c.Report.TitleWidth)
	}
	return nil
}
