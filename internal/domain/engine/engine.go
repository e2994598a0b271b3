// Package engine owns the simulated clock, the participant registry, and
// the reputation aggregation algorithm.
//
// One Engine instance is one independent simulation: nothing here is
// ambient or global, so multiple engines can coexist in a process. The
// engine performs no synchronization of its own; when embedded in a
// concurrent host the whole instance (registry plus clock) must be
// treated as a single critical section.
package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/okian/repute/internal/adapters/repository"
	"github.com/okian/repute/internal/domain/catalog"
	"github.com/okian/repute/internal/domain/model"
	"github.com/okian/repute/internal/domain/tier"
)

// Default engine configuration constants.
const (
	defaultHistoryDays    = 30
	defaultInactivityDays = 7
	maxScore              = 100.0
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithCatalog sets the event-type catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(e *Engine) {
		if cat != nil {
			e.cat = cat
		}
	}
}

// WithTiers sets the badge table used for classification.
func WithTiers(tiers tier.Table) Option {
	return func(e *Engine) {
		if len(tiers) > 0 {
			e.tiers = tiers
		}
	}
}

// WithStore sets the participant registry.
func WithStore(store repository.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

// WithHistoryWindow sets the sliding history window in days.
func WithHistoryWindow(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.historyDays = days
		}
	}
}

// WithInactivityThreshold sets the inactivity threshold in days. The
// threshold is declared configuration; no computation consumes it yet.
func WithInactivityThreshold(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.inactivityDays = days
		}
	}
}

// WithStartDate sets the initial simulated date.
func WithStartDate(date time.Time) Option {
	return func(e *Engine) {
		if !date.IsZero() {
			e.now = date
		}
	}
}

// WithMaxTenureBonus sets the maximum tenure contribution in points.
func WithMaxTenureBonus(points float64) Option {
	return func(e *Engine) {
		if points >= 0 {
			e.maxTenureBonus = points
		}
	}
}

// Engine computes bounded, time-decaying reputation scores.
type Engine struct {
	cat   *catalog.Catalog
	tiers tier.Table
	store repository.Store

	now            time.Time
	historyDays    int
	inactivityDays int
	maxTenureBonus float64

	pruned int64
}

// New constructs an Engine with default configuration: the built-in
// catalog and badge table, a fresh in-memory registry, a 30-day window,
// and today (UTC midnight) as the simulated date.
func New(ctx context.Context, opts ...Option) *Engine {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	e := &Engine{
		cat:            catalog.Default(),
		tiers:          tier.Default(),
		store:          repository.NewMemStore(ctx),
		now:            today,
		historyDays:    defaultHistoryDays,
		inactivityDays: defaultInactivityDays,
		maxTenureBonus: defaultMaxTenureBonus,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Now returns the current simulated date.
func (e *Engine) Now() time.Time {
	return e.now
}

// Catalog returns the engine's event-type catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Store returns the participant registry.
func (e *Engine) Store() repository.Store {
	return e.store
}

// HistoryWindow returns the sliding window length in days.
func (e *Engine) HistoryWindow() int {
	return e.historyDays
}

// PrunedTotal returns how many records have been discarded by pruning
// since the engine was created.
func (e *Engine) PrunedTotal() int64 {
	return e.pruned
}

// GetOrCreate resolves a participant, creating it when absent. A zero
// creation date defaults to the current simulated date.
func (e *Engine) GetOrCreate(ctx context.Context, name string, class catalog.Role, createdAt time.Time) (*model.Participant, error) {
	if createdAt.IsZero() {
		createdAt = e.now
	}
	return e.store.GetOrCreate(ctx, name, class, createdAt)
}

// Recompute re-derives the participant's score and tier from its history.
//
// Records older than the history window are pruned first, permanently.
// The remaining contributions are summed as of the current date, the
// tenure bonus is added, and the result is clamped to [0,100] before
// tier classification.
func (e *Engine) Recompute(ctx context.Context, name string) (*model.Participant, error) {
	p, err := e.store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("recompute: %w", err)
	}

	cutoff := e.now.AddDate(0, 0, -e.historyDays)
	e.pruned += int64(p.PruneBefore(cutoff))

	var activity float64
	for _, r := range p.History {
		activity += r.EffectiveScore(e.now)
	}

	p.TenureBonus = e.tenureBonus(p.CreatedAt)
	raw := activity + p.TenureBonus
	p.Score = math.Max(0, math.Min(maxScore, raw))
	t := e.tiers.Classify(p.Score)
	p.Tier = &t
	return p, nil
}

// AdvanceTime moves the simulated clock forward and recomputes every
// registered participant in registration order. This is the only way the
// clock moves; the engine never reads wall-clock time while scoring.
func (e *Engine) AdvanceTime(ctx context.Context, days int) error {
	if days <= 0 {
		return fmt.Errorf("advance time: days must be positive, got %d", days)
	}
	e.now = e.now.AddDate(0, 0, days)
	for _, name := range e.store.Names(ctx) {
		if _, err := e.Recompute(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
