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
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if REPUTE_CONFIG is set
//  3. env (prefix REPUTE_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("REPUTE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: REPUTE_HISTORY_DAYS, REPUTE_LOG_LEVEL, ...
	// Keys map to flat koanf tags, underscores preserved.
	envProvider := env.Provider("REPUTE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "repute_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.HistoryDays <= 0 {
		return nil, fmt.Errorf("%w: history_days must be positive", ErrInvalidConfig)
	}
	if cfg.InactivityDays <= 0 {
		return nil, fmt.Errorf("%w: inactivity_days must be positive", ErrInvalidConfig)
	}
	if cfg.MaxTenureBonus < 0 {
		return nil, fmt.Errorf("%w: max_tenure_bonus must not be negative", ErrInvalidConfig)
	}
	if _, err := cfg.ParseStartDate(); err != nil {
		return nil, fmt.Errorf("%w: start_date: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}
