// Package config loads cbounds settings from YAML or TOML files.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/cbounds/internal/cbrules"
)

// FileNames are config names looked up by Find, in priority order.
var FileNames = []string{
	".cbounds.yaml",
	".cbounds.yml",
	"cbounds.toml",
}

// Config is the cbounds configuration.
type Config struct {
	// Disable lists rules whose findings are not reported.
	Disable []cbrules.Rule `yaml:"disable,omitempty" toml:"disable,omitempty"`

	// NoReturn lists functions that never return in addition to the
	// predefined ones, e.g. "github.com/x/log.Fatal" or
	// "github.com/x/log.(*Logger).Fatal".
	NoReturn []string `yaml:"noreturn,omitempty" toml:"noreturn,omitempty"`

	// Tests includes test files of packages.
	Tests bool `yaml:"tests" toml:"tests"`

	// Timeout limits package loading, 0 means no limit.
	Timeout time.Duration `yaml:"timeout" toml:"timeout"`

	// Concurrency is the number of functions analyzed at once, 0 means
	// the number of CPUs.
	Concurrency int `yaml:"concurrency" toml:"concurrency"`

	Output OutputConfig `yaml:"output" toml:"output"`
}

// OutputConfig controls dumps of the cfg command.
type OutputConfig struct {
	Format      OutputFormat `yaml:"format" toml:"format"`
	Color       ColorMode    `yaml:"color" toml:"color"`
	Signs       bool         `yaml:"signs" toml:"signs"`
	Unreachable bool         `yaml:"unreachable" toml:"unreachable"`
}

// Default returns the configuration used when there is no config file.
func Default() *Config {
	return &Config{
		Timeout: time.Minute,
		Output: OutputConfig{
			Format: OutputFormatText,
			Color:  ColorModeAuto,
			Signs:  true,
		},
	}
}

// Enabled tells whether findings of the rule are reported.
func (c *Config) Enabled(rule cbrules.Rule) bool {
	return !slices.Contains(c.Disable, rule)
}

// WithTimeout derives the context of a command run from the parent.
func (c *Config) WithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout == 0 {
		return context.WithCancel(parent)
	}

	return context.WithTimeout(parent, c.Timeout)
}

// Validate checks values that cannot be checked by types.
func (c *Config) Validate() error {
	var errs []error
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("negative timeout %s", c.Timeout))
	}
	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("negative concurrency %d", c.Concurrency))
	}

	return errors.Join(errs...)
}

// Load reads the config file over the defaults. The format is chosen by
// the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes config data of the format given by the extension, with
// or without the leading dot.
func Parse(ext string, data []byte) (*Config, error) {
	cfg := Default()

	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown toml keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

// Find looks up a config file in dir and its parents.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Marshal renders the config as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close yaml encoder: %w", err)
	}

	return buf.Bytes(), nil
}
