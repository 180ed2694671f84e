package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CYCLECALC_CONFIG is set
//  3. env (prefix CYCLECALC_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CYCLECALC_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CYCLECALC_ADDR, CYCLECALC_QUEUE_SIZE, ...
	// Keys map to the koanf tags with underscores preserved.
	envProvider := env.Provider("CYCLECALC_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "cyclecalc_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot run with. Physical
// profile values are deliberately NOT validated here: the model documents
// NaN propagation for nonsensical physics instead of hiding it.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.QueueSize <= 0:
		return fmt.Errorf("%w: queue_size must be positive", ErrInvalidConfig)
	case c.WorkerCount <= 0:
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	case c.StoreSize <= 0:
		return fmt.Errorf("%w: store_size must be positive", ErrInvalidConfig)
	case c.DedupeSize <= 0:
		return fmt.Errorf("%w: dedupe_size must be positive", ErrInvalidConfig)
	case c.SolverMaxIterations <= 0:
		return fmt.Errorf("%w: solver_max_iterations must be positive", ErrInvalidConfig)
	case c.SolverEpsilon <= 0:
		return fmt.Errorf("%w: solver_epsilon must be positive", ErrInvalidConfig)
	case c.SolverBoundKmh <= 0:
		return fmt.Errorf("%w: solver_bound_kmh must be positive", ErrInvalidConfig)
	}
	return nil
}
