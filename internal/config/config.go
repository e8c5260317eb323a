package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// CLIPrefix is prepended to every rendered command, e.g. "gm" to drive
	// GraphicsMagick's combined binary. Empty means the plain ImageMagick
	// tool names are used as-is.
	CLIPrefix string `yaml:"cli_prefix"`

	// TimeoutSeconds bounds each tool execution. Zero means no timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Debug enables startup/diagnostic logging to stderr.
	Debug bool `yaml:"debug"`
}

// Environment variables overriding file values.
const (
	envCLIPrefix = "MAGICK_MCP_CLI_PREFIX"
	envTimeout   = "MAGICK_MCP_TIMEOUT_SECONDS"
	envLogLevel  = "MAGICK_MCP_LOG_LEVEL"
)

// defaultTimeoutSeconds bounds tool runs unless configured otherwise; large
// composites on slow disks can legitimately take tens of seconds.
const defaultTimeoutSeconds = 60

// Defaults returns the configuration used when no file and no environment
// overrides are present.
func Defaults() Config {
	return Config{
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}

// Load reads the YAML file at path, falling back to Defaults when the file
// does not exist, then applies environment overrides. Settings are read once
// at startup and threaded into constructors; nothing re-reads them later.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Missing file is fine; defaults apply.
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.TimeoutSeconds < 0 {
		return Config{}, fmt.Errorf("timeout_seconds must not be negative (got %d)", cfg.TimeoutSeconds)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envCLIPrefix); ok {
		cfg.CLIPrefix = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(envTimeout); ok {
		var secs int
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d", &secs); err == nil {
			cfg.TimeoutSeconds = secs
		}
	}
	if os.Getenv(envLogLevel) == "debug" {
		cfg.Debug = true
	}
}

// Timeout returns the configured timeout as a duration; zero means none.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
