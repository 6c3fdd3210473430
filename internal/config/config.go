// Package config manages prompt configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/Veraticus/powerline/internal/powerline"
	"github.com/Veraticus/powerline/internal/terminal"
)

// ErrInvalidConfig is returned when configuration values are unusable.
var ErrInvalidConfig = errors.New("invalid config")

// AppName names the config directories and the environment prefix.
const AppName = "powerline"

// Config represents the prompt configuration.
type Config struct {
	Theme      string        `mapstructure:"theme"`
	ThemeFile  string        `mapstructure:"theme_file"`
	Shell      string        `mapstructure:"shell"`
	Separator  string        `mapstructure:"separator"`
	GitTimeout time.Duration `mapstructure:"git_timeout"`
	Rows       []Row         `mapstructure:"rows"`

	source string
}

// Row is one prompt line.
type Row struct {
	Left  []Segment `mapstructure:"left"`
	Right []Segment `mapstructure:"right"`
}

// Segment selects a module by Type; remaining keys are its options.
type Segment struct {
	Type    string         `mapstructure:"type"`
	Options map[string]any `mapstructure:",remain"`
}

// Source returns the path of the config file that was loaded, if any.
func (c *Config) Source() string { return c.source }

// Load loads configuration from the embedded defaults, a config file and
// environment variables. With an empty path it searches for config files in
// the following order:
// 1. /etc/powerline/config.{toml,yaml,yml,json}
// 2. $XDG_CONFIG_HOME/powerline/config.{toml,yaml,yml,json} (or ~/.config/powerline/)
//
// The working directory is never searched: the prompt renders in every
// directory the user visits.
//
// Environment variables override file settings using the prefix POWERLINE_
// For example: POWERLINE_THEME=simple.
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()

	defaults, err := defaultSettings()
	if err != nil {
		return nil, err
	}
	if err := v.MergeConfigMap(defaults); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/" + AppName + "/")
		v.AddConfigPath(XDGConfigPath())
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file is fine; defaults and env vars apply.
	}
	return v, nil
}

// LoadWithViper loads configuration using a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("%w: unmarshal config: %w", ErrInvalidConfig, err)
	}
	cfg.source = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		segmentShorthandHook,
	)
}

var segmentType = reflect.TypeOf(Segment{})

// segmentShorthandHook lets a row list a bare module name instead of a map.
func segmentShorthandHook(from, to reflect.Type, data any) (any, error) {
	if to != segmentType || from.Kind() != reflect.String {
		return data, nil
	}
	return map[string]any{"type": data}, nil
}

// Validate checks values that would otherwise fail at render time.
func (c *Config) Validate() error {
	if _, err := terminal.ParseDialect(c.Shell); err != nil {
		return fmt.Errorf("%w: shell: %w", ErrInvalidConfig, err)
	}
	if _, err := powerline.ParseSeparator(c.Separator); err != nil {
		return fmt.Errorf("%w: separator: %w", ErrInvalidConfig, err)
	}
	if c.GitTimeout < 0 {
		return fmt.Errorf("%w: git_timeout must not be negative, got %s", ErrInvalidConfig, c.GitTimeout)
	}
	if len(c.Rows) == 0 {
		return fmt.Errorf("%w: at least one row is required", ErrInvalidConfig)
	}
	for i, row := range c.Rows {
		if err := validateSegments(i, "left", row.Left); err != nil {
			return err
		}
		if err := validateSegments(i, "right", row.Right); err != nil {
			return err
		}
	}
	return nil
}

func validateSegments(row int, side string, segments []Segment) error {
	for j, seg := range segments {
		if strings.TrimSpace(seg.Type) == "" {
			return fmt.Errorf("%w: rows[%d].%s[%d]: missing type", ErrInvalidConfig, row, side, j)
		}
	}
	return nil
}

// XDGConfigPath returns the XDG config directory for powerline.
func XDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, AppName)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home
		return "."
	}

	return filepath.Join(homeDir, ".config", AppName)
}

// DefaultPath is where "config init" writes the default file.
func DefaultPath() string {
	return filepath.Join(XDGConfigPath(), "config.yaml")
}
