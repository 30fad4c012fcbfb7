// Package config loads matcalc settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	logging "github.com/ipfs/go-log/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcalc/matrix"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "MATCALC_CONFIG"

// Element kinds accepted by Engine.Numeric.
const (
	NumericFloat = "float"
	NumericInt   = "int"
)

var (
	// ErrUnknownFormat is returned for a config file that is neither TOML nor YAML.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds the complete application configuration.
type Config struct {
	Engine EngineConfig `toml:"engine" yaml:"engine"`
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// EngineConfig holds numeric settings.
type EngineConfig struct {
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
	Numeric   string  `toml:"numeric" yaml:"numeric"`
}

// REPLConfig holds interactive session settings.
type REPLConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
	Banner bool   `toml:"banner" yaml:"banner"`
	Color  bool   `toml:"color" yaml:"color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		REPL: REPLConfig{Banner: true, Color: true},
	}
	cfg.applyDefaults()

	return cfg
}

// Load reads the file at path. The format follows the extension: .toml, or
// .yaml/.yml. Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// DefaultPaths lists the files LoadFromEnv probes, in order.
func DefaultPaths() []string {
	paths := []string{"./matcalc.toml", "./matcalc.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "matcalc", "config.toml"))
	}

	return paths
}

// LoadFromEnv loads the file named by MATCALC_CONFIG, else the first existing
// default path, else returns Default(). The second result is the file used,
// empty for built-in defaults.
func LoadFromEnv() (*Config, string, error) {
	if path := os.Getenv(EnvVar); path != "" {
		cfg, err := Load(path)

		return cfg, path, err
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := Load(p)

			return cfg, p, err
		}
	}

	return Default(), "", nil
}

// Resolve loads path when it is set and falls back to LoadFromEnv otherwise.
func Resolve(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := Load(path)

		return cfg, path, err
	}

	return LoadFromEnv()
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Engine.Tolerance == 0 {
		c.Engine.Tolerance = matrix.DefaultTolerance
	}
	if c.Engine.Numeric == "" {
		c.Engine.Numeric = NumericFloat
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "> "
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate checks every field that has a restricted domain.
func (c *Config) Validate() error {
	if err := matrix.ValidateTolerance(c.Engine.Tolerance); err != nil {
		return fmt.Errorf("%w: engine.tolerance %v", ErrInvalid, c.Engine.Tolerance)
	}
	switch c.Engine.Numeric {
	case NumericFloat, NumericInt:
	default:
		return fmt.Errorf("%w: engine.numeric %q", ErrInvalid, c.Engine.Numeric)
	}
	if _, err := logging.LevelFromString(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// Integer reports whether sessions should use int64 elements.
func (c *Config) Integer() bool {
	return c.Engine.Numeric == NumericInt
}
