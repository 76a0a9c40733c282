// Package config loads the YAML settings shared by every emdtojson command.
package config

import (
	"log/slog"
	"os"

	"emdtojson/emd/dformat"
	"emdtojson/output"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		LogLevel string         `yaml:"log_level"`
		Output   output.Options `yaml:"output"`
		// Strict turns decode warnings into failures.
		Strict  bool  `yaml:"strict"`
		Workers int   `yaml:"workers"`
		Watch   Watch `yaml:"watch"`

		// FormatVersion forces the layout of that revision whatever version
		// byte the dumps declare.
		FormatVersion *uint8 `yaml:"format_version"`
	}
	Watch struct {
		Extension string `yaml:"extension"`
	}
)

const (
	DefaultExtension = ".emd"
	DefaultWorkers   = 4
)

var logLevels = []string{"debug", "info", "warn", "error"}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Output: output.Options{
			Format: output.FormatJSON,
			Indent: "  ",
		},
		Workers: DefaultWorkers,
		Watch: Watch{
			Extension: DefaultExtension,
		},
	}
}

// LoadConfig reads path over the defaults, so keys missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err := errors.Wrap(err, "config.LoadConfig error: read file")
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		err := errors.Wrapf(err, "config.LoadConfig error: parse %s", path)
		return nil, err
	}
	if err := config.Validate(); err != nil {
		err := errors.Wrapf(err, "config.LoadConfig error: %s", path)
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if !lo.Contains(logLevels, c.LogLevel) {
		return errors.Errorf("invalid log_level %q, expected one of %v", c.LogLevel, logLevels)
	}
	if _, err := output.ParseFormat(string(c.Output.Format)); err != nil {
		err := errors.Wrap(err, "invalid output.format")
		return err
	}
	if c.Workers < 1 {
		return errors.Errorf("invalid workers %d, expected at least 1", c.Workers)
	}
	if c.FormatVersion != nil {
		if _, err := dformat.Lookup(*c.FormatVersion); err != nil {
			err := errors.Wrap(err, "invalid format_version")
			return err
		}
	}
	if c.Watch.Extension == "" {
		return errors.New("watch.extension must not be empty")
	}
	return nil
}

func (c *Config) SlogLevel() slog.Level {
	level := slog.LevelInfo
	// Validate restricts LogLevel to names slog understands.
	_ = level.UnmarshalText([]byte(c.LogLevel))
	return level
}
