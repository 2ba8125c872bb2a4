// Package config loads the settings of the iso20022 command and its batch
// runner from YAML or TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	// Families restricts decoding to these message families. Empty means every
	// family compiled into the binary.
	Families []string      `yaml:"families" toml:"families"`
	Language string        `yaml:"language" toml:"language"` // "en" or "ja"
	Batch    BatchConfig   `yaml:"batch" toml:"batch"`
	Output   OutputConfig  `yaml:"output" toml:"output"`
	Logging  LoggingConfig `yaml:"logging" toml:"logging"`
	Metrics  MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// BatchConfig configures concurrent validation.
type BatchConfig struct {
	Workers int           `yaml:"workers" toml:"workers"`
	Timeout time.Duration `yaml:"timeout" toml:"timeout"`   // per document, 0 = none
	MaxSize int64         `yaml:"max_size" toml:"max_size"` // bytes per document, 0 = 16 MiB, -1 = no limit
}

// OutputConfig configures converted and generated documents.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"` // "xml" or "json"
	Indent string `yaml:"indent" toml:"indent"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

// MetricsConfig configures Prometheus metrics of the batch runner.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" toml:"enabled"`
	Namespace string `yaml:"namespace" toml:"namespace"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	return &cfg
}

// Load reads configuration from a .yaml, .yml or .toml file. Environment
// variables in the file are expanded and ISO20022_* variables override the
// file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case ".toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("read config: unsupported extension %q", ext)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings. Call it again after applying command-line
// overrides.
func (c *Config) Validate() error {
	if err := validate(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ISO20022_FAMILIES"); v != "" {
		cfg.Families = splitList(v)
	}
	if v := os.Getenv("ISO20022_LANGUAGE"); v != "" {
		cfg.Language = v
	}

	// Batch configuration
	if v := os.Getenv("ISO20022_BATCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Batch.Workers = n
		}
	}
	if v := os.Getenv("ISO20022_BATCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Batch.Timeout = d
		}
	}
	if v := os.Getenv("ISO20022_BATCH_MAX_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Batch.MaxSize = n
		}
	}

	// Output configuration
	if v := os.Getenv("ISO20022_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}

	// Logging configuration
	if v := os.Getenv("ISO20022_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ISO20022_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	// Metrics configuration
	if v := os.Getenv("ISO20022_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
}

func setDefaults(cfg *Config) {
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Batch.Workers <= 0 {
		cfg.Batch.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Batch.MaxSize == 0 {
		cfg.Batch.MaxSize = 16 << 20
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "xml"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "iso20022"
	}
}

func validate(cfg *Config) error {
	switch cfg.Language {
	case "en", "ja":
	default:
		return fmt.Errorf("language must be en or ja, got %q", cfg.Language)
	}
	switch cfg.Output.Format {
	case "xml", "json":
	default:
		return fmt.Errorf("output.format must be xml or json, got %q", cfg.Output.Format)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}
	if cfg.Batch.Timeout < 0 {
		return fmt.Errorf("batch.timeout must not be negative")
	}
	if cfg.Batch.MaxSize < -1 {
		return fmt.Errorf("batch.max_size must be positive, 0 for the default or -1 for no limit, got %d", cfg.Batch.MaxSize)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}
