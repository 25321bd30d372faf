package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the optional config file looked up in the workflow directory.
const FileName = "itemsearch.yaml"

// Config holds the workflow settings.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Icons   IconsConfig   `yaml:"icons"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig holds catalog source settings.
type CatalogConfig struct {
	File string `yaml:"file"` // Relative to the workflow dir unless absolute
}

// IconsConfig holds icon path settings.
type IconsConfig struct {
	Dir   string `yaml:"dir"`   // Prefix for per-record icons
	Error string `yaml:"error"` // Icon for the error item
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (empty: logging off)
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// Load reads FileName from dir. A missing file yields Default().
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: failed to read %s: %w", ErrInvalidConfig, path, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, path, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Catalog.File == "" {
		c.Catalog.File = "items.json"
	}
	c.Icons.Dir = strings.TrimRight(c.Icons.Dir, "/")
	if c.Icons.Dir == "" {
		c.Icons.Dir = "icons"
	}
	if c.Icons.Error == "" {
		c.Icons.Error = "icon.png"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if _, _, err := ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// CatalogPath resolves the catalog file against the workflow directory.
func (c *Config) CatalogPath(dir string) string {
	if filepath.IsAbs(c.Catalog.File) {
		return c.Catalog.File
	}
	return filepath.Join(dir, c.Catalog.File)
}

// ParseLevel maps a level name to a slog.Level.
// The empty string means logging is disabled and returns enabled == false.
func ParseLevel(name string) (level slog.Level, enabled bool, err error) {
	switch strings.ToLower(name) {
	case "":
		return 0, false, nil
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return 0, false, fmt.Errorf("%w %q: must be one of debug, info, warn, error", ErrInvalidLogLevel, name)
	}
	return level, true, nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
