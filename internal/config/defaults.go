package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrConfigExists is returned by WriteDefault when the target is present.
var ErrConfigExists = errors.New("config file already exists")

// Formats accepted by MarshalDefault.
var Formats = []string{"yaml", "toml", "json"}

func defaultSettings() (map[string]any, error) {
	var settings map[string]any
	if err := yaml.Unmarshal(defaultYAML, &settings); err != nil {
		return nil, fmt.Errorf("parse default config: %w", err)
	}
	return settings, nil
}

// MarshalDefault renders the default configuration in the given format.
// YAML keeps the commented template; other formats are converted.
func MarshalDefault(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		return defaultYAML, nil
	case "toml":
		settings, err := defaultSettings()
		if err != nil {
			return nil, err
		}
		out, err := toml.Marshal(settings)
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return out, nil
	case "json":
		settings, err := defaultSettings()
		if err != nil {
			return nil, err
		}
		out, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("%w: unsupported format %q (want one of %s)",
		ErrInvalidConfig, format, strings.Join(Formats, ", "))
}

// WriteDefault writes the default configuration to path. The format follows
// the file extension. An existing file is kept unless force is set.
func WriteDefault(fs afero.Fs, path string, force bool) error {
	if !force {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return fmt.Errorf("check %s: %w", path, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := MarshalDefault(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
