// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"time"
)

// Default simulation parameters.
const (
	defaultHistoryDays    = 30
	defaultInactivityDays = 7
	defaultStartDate      = "2025-07-18"
	defaultMaxTenureBonus = 20.0
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the optional Prometheus listen address,
	// e.g. ":9090". Empty disables the metrics listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// HistoryDays bounds the sliding event-history window.
	HistoryDays int `koanf:"history_days"`

	// InactivityDays is the inactivity threshold. Declared configuration;
	// no computation consumes it yet.
	InactivityDays int `koanf:"inactivity_days"`

	// StartDate is the initial simulated date in YYYY-MM-DD form.
	StartDate string `koanf:"start_date"`

	// MaxTenureBonus is the maximum account-age contribution in points.
	MaxTenureBonus float64 `koanf:"max_tenure_bonus"`

	// WeightOverrides replaces base weights of listed event types.
	WeightOverrides map[string]float64 `koanf:"weight_overrides"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		MetricsAddr:    "",
		HistoryDays:    defaultHistoryDays,
		InactivityDays: defaultInactivityDays,
		StartDate:      defaultStartDate,
		MaxTenureBonus: defaultMaxTenureBonus,
	}
}

// ParseStartDate returns the configured start date as a UTC midnight.
func (c *Config) ParseStartDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
