package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"logsift/pkg/detector"
)

// Load reads and validates a configuration file. An empty path loads the
// defaults with environment overrides applied.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Analysis.WindowSize < 0 {
		return errors.New("analysis.window_size: must not be negative")
	}

	if err := validateGenerator(&cfg.Generator); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	return nil
}

func validateGenerator(gen *GeneratorConfig) error {
	if gen.Rate < 1 {
		return errors.New("rate must be >= 1")
	}

	if len(gen.Levels) == 0 {
		return errors.New("at least one level is required")
	}

	if len(gen.Services) == 0 {
		return errors.New("at least one service is required")
	}

	if len(gen.Formats) == 0 {
		return errors.New("at least one format is required")
	}
	for _, f := range gen.Formats {
		if _, ok := detector.Parse(f); !ok {
			return fmt.Errorf("invalid format %q (must be txt, json, or csv)", f)
		}
	}

	total := 0
	for _, level := range gen.Levels {
		w := gen.Distribution[level]
		if w < 0 {
			return fmt.Errorf("distribution weight for %s must not be negative", level)
		}
		total += w
	}
	if total == 0 {
		return errors.New("distribution: total weight over configured levels must be > 0")
	}

	if gen.Bursts.Enabled {
		if gen.Bursts.Frequency < 1 {
			return errors.New("bursts.frequency must be >= 1 minute")
		}
		if gen.Bursts.Duration < 1 {
			return errors.New("bursts.duration must be >= 1 second")
		}
		if gen.Bursts.Multiplier < 1 {
			return errors.New("bursts.multiplier must be >= 1")
		}
	}

	if gen.OutputFile == "" && !gen.ConsoleOutput {
		return errors.New("no output configured (set output_file or console_output)")
	}

	return nil
}
