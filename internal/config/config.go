// Package config loads optional settings for the arith CLI from a YAML
// file, layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings.
type Config struct {
	REPL   REPLConfig   `yaml:"repl"`
	Output OutputConfig `yaml:"output"`
}

// REPLConfig configures the interactive loop.
type REPLConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
}

// OutputConfig configures the non-interactive commands.
type OutputConfig struct {
	JSON bool `yaml:"json"` // default output mode for the tokens command
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		REPL: REPLConfig{
			Prompt:      "arith> ",
			HistoryFile: "~/.arith_history",
			Color:       true,
		},
	}
}

// Load reads the YAML file at path and layers it over the defaults: keys
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file named by $ARITH_CONFIG, falling back to
// ~/.arith.yaml. A missing file is not an error; the defaults are returned.
func LoadDefault() (Config, error) {
	path := os.Getenv("ARITH_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, ".arith.yaml")
	}
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	return cfg, nil
}

// ExpandPath expands a leading "~" to the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
