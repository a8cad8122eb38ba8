package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ChicagoDave/bodycomp/pkg/display"
	"github.com/ChicagoDave/bodycomp/pkg/units"
)

type Config struct {
	Units   string          `yaml:"units"`
	Display display.Options `yaml:"display"`
	Server  ServerConfig    `yaml:"server"`
	Logging LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Units:   string(units.Metric),
		Server:  ServerConfig{Port: 3000},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads configPath over the defaults. Variables from envPath (if the file
// exists) are loaded first so that ${VAR} references in the YAML resolve.
// An empty configPath returns the defaults.
func Load(configPath, envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	}

	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	if _, err := units.Parse(c.Units); err != nil {
		return fmt.Errorf("config units: %w", err)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config logging.format %q (want text or json)", c.Logging.Format)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config server.port %d out of range", c.Server.Port)
	}
	return nil
}

// UnitSystem returns the default unit selector for inputs that omit one.
func (c *Config) UnitSystem() units.System {
	sys, err := units.Parse(c.Units)
	if err != nil {
		return units.Metric
	}
	return sys
}

// SlogLevel maps the configured level name onto slog.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config logging.level %q is not a known level", l.Level)
}
