package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mygrep/internal/alphabet"
)

// Defaults applied to fields the file leaves out.
const (
	DefaultPreset   = "ascii"
	DefaultMinimize = true
	DefaultLogLevel = "info"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the mygrep configuration file.
type Config struct {
	// Alphabet lists the symbols '.' expands to, in order. It overrides Preset.
	Alphabet string `yaml:"alphabet"`
	// Preset names a built-in alphabet (ascii, lower, alnum).
	Preset string `yaml:"preset"`
	// Minimize runs Hopcroft minimisation on the compiled DFA.
	Minimize *bool `yaml:"minimize"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads, defaults and validates the file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func ApplyDefaults(cfg *Config) {
	if cfg.Preset == "" {
		cfg.Preset = DefaultPreset
	}
	if cfg.Minimize == nil {
		v := DefaultMinimize
		cfg.Minimize = &v
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

func Validate(cfg *Config) error {
	var problems []string
	if _, err := cfg.Symbols(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := cfg.Level(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Symbols builds the symbol source for the translator.
func (c *Config) Symbols() (*alphabet.Set, error) {
	if c.Alphabet != "" {
		return alphabet.FromString(c.Alphabet)
	}
	return alphabet.Preset(c.Preset)
}

// ShouldMinimize reports the effective minimize setting.
func (c *Config) ShouldMinimize() bool {
	return c.Minimize == nil || *c.Minimize
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}
