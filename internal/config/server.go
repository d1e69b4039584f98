// Package config loads service configuration from environment variables,
// with an optional YAML file for settings that are awkward as flat env vars.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server and pipeline tuning.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`

	RateLimit struct {
		Limit  int           `yaml:"limit"`
		Window time.Duration `yaml:"window"`
	} `yaml:"rate_limit"`

	Pipeline struct {
		ChunkSize   int `yaml:"chunk_size"`
		Parallelism int `yaml:"parallelism"`
	} `yaml:"pipeline"`
}

// defaultServerConfig returns the built-in defaults.
func defaultServerConfig() ServerConfig {
	cfg := ServerConfig{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    120 * time.Second,
		RequestTimeout:  90 * time.Second,
		ShutdownTimeout: 15 * time.Second,
		MaxBodyBytes:    32 << 20,
	}
	cfg.RateLimit.Limit = 30
	cfg.RateLimit.Window = time.Minute
	cfg.Pipeline.ChunkSize = 1000
	cfg.Pipeline.Parallelism = 4
	return cfg
}

// LoadServerConfig builds the server configuration. Defaults are overridden
// first by the YAML file named in CONFIG_FILE (if set), then by individual
// environment variables.
func LoadServerConfig() (ServerConfig, error) {
	cfg := defaultServerConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		// #nosec G304 -- path comes from the deployment environment, not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ServerConfig{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.Addr = getEnvOrDefault("SERVER_ADDR", cfg.Addr)
	cfg.RequestTimeout = getEnvDuration("SERVER_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.ShutdownTimeout = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.Pipeline.ChunkSize = getEnvInt("PIPELINE_CHUNK_SIZE", cfg.Pipeline.ChunkSize)
	cfg.Pipeline.Parallelism = getEnvInt("PIPELINE_PARALLELISM", cfg.Pipeline.Parallelism)

	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if c.Pipeline.ChunkSize <= 0 {
		return fmt.Errorf("pipeline chunk_size must be positive")
	}
	if c.Pipeline.Parallelism <= 0 {
		return fmt.Errorf("pipeline parallelism must be positive")
	}
	if c.RateLimit.Limit <= 0 {
		return fmt.Errorf("rate_limit limit must be positive")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
