package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration with environment overrides
// applied and validated. Used when no config file is given.
func Default() (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors and normalizes the
// extension allow-list (lowercase, leading dot removed, deduplicated).
func Validate(cfg *Config) error {
	if len(cfg.Extensions) == 0 {
		return errors.New("extensions: at least one extension is required")
	}

	seen := make(map[string]bool, len(cfg.Extensions))
	normalized := make([]string, 0, len(cfg.Extensions))
	for i, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			return fmt.Errorf("extensions[%d]: empty extension", i)
		}
		if strings.ContainsAny(ext, "./ ") {
			return fmt.Errorf("extensions[%d]: invalid extension %q", i, cfg.Extensions[i])
		}
		if !seen[ext] {
			seen[ext] = true
			normalized = append(normalized, ext)
		}
	}
	cfg.Extensions = normalized

	switch cfg.Output {
	case "", "text", "json":
	default:
		return fmt.Errorf("output: invalid format %q (must be text or json)", cfg.Output)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	if cfg.ProgressInterval < 0 {
		return errors.New("progress_interval: must be positive")
	}
	if cfg.ProgressInterval == 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}

	return nil
}
