// Package app provides the reputation service that callers interact with.
// It wires the engine, dispatcher, catalog, tiers, and registry together,
// owns the serialization of access to them, and records logging and
// metrics around the pure domain core.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/okian/repute/internal/domain/catalog"
	"github.com/okian/repute/internal/domain/dispatch"
	"github.com/okian/repute/internal/domain/engine"
	"github.com/okian/repute/internal/domain/model"
	"github.com/okian/repute/internal/domain/tier"
	"github.com/okian/repute/internal/domain/types"
	"github.com/okian/repute/pkg/logger"
	"github.com/okian/repute/pkg/metrics"
)

// Service exposes submit, time-advance, and read operations over one
// engine instance. The engine performs no internal synchronization, so
// the service guards every operation with a single mutex: one Service is
// one critical section.
type Service struct {
	mu sync.Mutex

	engine     *engine.Engine
	dispatcher *dispatch.Dispatcher

	maxTenureBonus  float64
	historyDays     int
	inactivityDays  int
	startDate       time.Time
	weightOverrides map[string]float64
	tiers           tier.Table

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithHistoryWindow sets the sliding history window in days.
func WithHistoryWindow(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.historyDays = days
		}
	}
}

// WithInactivityThreshold sets the inactivity threshold in days.
func WithInactivityThreshold(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.inactivityDays = days
		}
	}
}

// WithStartDate sets the initial simulated date.
func WithStartDate(date time.Time) Option {
	return func(s *Service) {
		if !date.IsZero() {
			s.startDate = date
		}
	}
}

// WithMaxTenureBonus sets the maximum tenure contribution in points.
func WithMaxTenureBonus(points float64) Option {
	return func(s *Service) {
		if points >= 0 {
			s.maxTenureBonus = points
		}
	}
}

// WithWeightOverrides replaces base weights of listed event types.
func WithWeightOverrides(overrides map[string]float64) Option {
	return func(s *Service) {
		s.weightOverrides = overrides
	}
}

// WithTiers sets a custom badge table.
func WithTiers(tiers tier.Table) Option {
	return func(s *Service) {
		if len(tiers) > 0 {
			s.tiers = tiers
		}
	}
}

// New constructs a Service with default configuration.
func New(ctx context.Context, opts ...Option) *Service {
	s := &Service{
		maxTenureBonus: 20.0,
		historyDays:    30,
		inactivityDays: 7,
		tiers:          tier.Default(),
		log:            logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	cat := catalog.Default()
	if len(s.weightOverrides) > 0 {
		cat = catalog.Default(catalog.WithWeightOverrides(s.weightOverrides))
	}

	engineOpts := []engine.Option{
		engine.WithCatalog(cat),
		engine.WithTiers(s.tiers),
		engine.WithHistoryWindow(s.historyDays),
		engine.WithInactivityThreshold(s.inactivityDays),
		engine.WithMaxTenureBonus(s.maxTenureBonus),
	}
	if !s.startDate.IsZero() {
		engineOpts = append(engineOpts, engine.WithStartDate(s.startDate))
	}
	s.engine = engine.New(ctx, engineOpts...)
	s.dispatcher = dispatch.New(s.engine)

	s.log.Info(ctx, "reputation service ready",
		logger.Int("historyDays", s.historyDays),
		logger.String("startDate", s.engine.Now().Format("2006-01-02")),
	)
	return s
}

// Submit records an event occurrence and returns the acting participant's
// refreshed status. Policy rejections return the unchanged participant
// with a nil error.
func (s *Service) Submit(ctx context.Context, sub dispatch.Submission) (types.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, accepted, err := s.dispatcher.Submit(ctx, sub)
	if err != nil {
		metrics.RecordSubmitError()
		s.log.Warn(ctx, "submission failed",
			logger.String("actor", sub.Actor),
			logger.String("eventType", sub.EventType),
			logger.Error(err),
		)
		return types.Status{}, err
	}

	if !accepted {
		metrics.RecordEventRejected()
		s.log.Info(ctx, "submission rejected by role policy",
			logger.String("actor", sub.Actor),
			logger.String("class", string(p.Class)),
			logger.String("eventType", sub.EventType),
		)
		return s.statusOf(p), nil
	}

	metrics.RecordEventSubmitted()
	metrics.RecordRecompute(p.Score)
	s.log.Debug(ctx, "event recorded",
		logger.String("actor", sub.Actor),
		logger.String("eventType", sub.EventType),
		logger.Float64("score", p.Score),
	)
	s.refreshGauges(ctx)
	return s.statusOf(p), nil
}

// AdvanceTime moves the simulated clock forward and recomputes everyone.
func (s *Service) AdvanceTime(ctx context.Context, days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.AdvanceTime(ctx, days); err != nil {
		s.log.Warn(ctx, "time advance failed", logger.Int("days", days), logger.Error(err))
		return err
	}

	metrics.RecordTimeAdvance()
	s.log.Info(ctx, "time advanced",
		logger.Int("days", days),
		logger.String("now", s.engine.Now().Format("2006-01-02")),
	)
	s.refreshGauges(ctx)
	return nil
}

// Status returns a read-only snapshot of one participant.
func (s *Service) Status(ctx context.Context, name string) (types.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.engine.Store().Get(ctx, name)
	if err != nil {
		return types.Status{}, err
	}
	return s.statusOf(p), nil
}

// TopN returns the reputation ranking, best first.
func (s *Service) TopN(ctx context.Context, n int) ([]types.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.engine.Store().TopN(ctx, n)
	if err != nil {
		return nil, err
	}
	entries := make([]types.Entry, len(rows))
	for i, row := range rows {
		entries[i] = types.Entry{
			Rank:  row.Rank,
			Name:  row.Name,
			Score: row.Score,
			Tier:  row.Tier,
		}
	}
	return entries, nil
}

// CurrentDate returns the engine's simulated date.
func (s *Service) CurrentDate(_ context.Context) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Now()
}

// Count returns the number of registered participants.
func (s *Service) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Store().Count(ctx)
}

// statusOf snapshots participant state. Callers must hold s.mu.
func (s *Service) statusOf(p *model.Participant) types.Status {
	st := types.Status{
		Name:           p.Name,
		Class:          string(p.Class),
		Date:           s.engine.Now(),
		Score:          p.Score,
		TenureBonus:    p.TenureBonus,
		MaxTenureBonus: s.maxTenureBonus,
		Events:         len(p.History),
	}
	if p.Tier != nil {
		st.Tier = p.Tier.Name
		st.Perks = p.Tier.Perks
	}
	return st
}

// refreshGauges pushes registry-wide gauges. Callers must hold s.mu.
func (s *Service) refreshGauges(ctx context.Context) {
	metrics.UpdateParticipants(s.engine.Store().Count(ctx))
	metrics.UpdateSimulatedDay(s.engine.Now().Unix())
	metrics.UpdateRecordsPruned(s.engine.PrunedTotal())

	rows, err := s.engine.Store().TopN(ctx, s.engine.Store().Count(ctx))
	if err != nil {
		return
	}
	sizes := make(map[string]int)
	for _, row := range rows {
		sizes[row.Tier]++
	}
	for _, t := range s.tiers {
		metrics.UpdateTierSize(t.Name, sizes[t.Name])
	}
}
