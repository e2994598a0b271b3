// Package dispatch is the single entry point for recording events. It
// validates eligibility, writes the actor-side record, propagates the
// event to the target side when the type has a secondary party, and asks
// the engine to recompute every participant it touched.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/repute/internal/domain/catalog"
	"github.com/okian/repute/internal/domain/engine"
	"github.com/okian/repute/internal/domain/model"
)

// Submission describes one event occurrence to record.
type Submission struct {
	Actor          string
	ActorClass     catalog.Role
	ActorCreatedAt time.Time

	EventType string

	// Date of the occurrence. Zero means the engine's current date.
	Date time.Time

	// DelayDays is the elapsed delay in whole days, meaningful only for
	// event types that declare a delay factor.
	DelayDays int

	// Target names the secondary party for dual-party event types. Empty
	// means the target side is skipped.
	Target          string
	TargetClass     catalog.Role
	TargetCreatedAt time.Time

	// TargetDelayDays overrides DelayDays on the target record when set.
	TargetDelayDays int
}

// Dispatcher records submissions against one engine instance.
type Dispatcher struct {
	engine *engine.Engine
}

// New creates a Dispatcher bound to the given engine.
func New(e *engine.Engine) *Dispatcher {
	return &Dispatcher{engine: e}
}

// Submit records an event occurrence.
//
// The returned bool reports whether the actor-side record was created:
// false with a nil error is a policy rejection (the actor's role class
// may not originate this event type), which leaves the participant
// unchanged. An unknown event type or a role-class mismatch fails with
// the respective sentinel and mutates nothing on the failing side.
//
// For dual-party types a missing target name is accepted half-completion:
// the actor side stays committed and the target side is never created.
// A target-side role mismatch surfaces as an error after the actor side
// has already been committed, mirroring the same half-completion rule.
func (d *Dispatcher) Submit(ctx context.Context, sub Submission) (*model.Participant, bool, error) {
	et, err := d.engine.Catalog().Get(sub.EventType)
	if err != nil {
		return nil, false, fmt.Errorf("submit: %w", err)
	}

	date := sub.Date
	if date.IsZero() {
		date = d.engine.Now()
	}

	actor, err := d.engine.GetOrCreate(ctx, sub.Actor, sub.ActorClass, sub.ActorCreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("submit: %w", err)
	}

	if !et.Allows(actor.Class) {
		// Policy rejection, not an error: the caller gets the participant
		// back untouched.
		return actor, false, nil
	}

	rec, err := model.NewRecord(d.engine.Catalog(), sub.EventType, date, model.RoleActor, sub.DelayDays)
	if err != nil {
		return nil, false, fmt.Errorf("submit: %w", err)
	}
	actor.AddRecord(rec)
	if actor, err = d.engine.Recompute(ctx, actor.Name); err != nil {
		return nil, false, fmt.Errorf("submit: %w", err)
	}

	if !et.AffectsTarget || sub.Target == "" {
		return actor, true, nil
	}

	target, err := d.engine.GetOrCreate(ctx, sub.Target, sub.TargetClass, sub.TargetCreatedAt)
	if err != nil {
		return nil, true, fmt.Errorf("submit target: %w", err)
	}

	targetDelay := sub.TargetDelayDays
	if targetDelay == 0 {
		targetDelay = sub.DelayDays
	}
	targetRec, err := model.NewRecord(d.engine.Catalog(), sub.EventType, date, model.RoleTarget, targetDelay)
	if err != nil {
		return nil, true, fmt.Errorf("submit target: %w", err)
	}
	target.AddRecord(targetRec)
	if _, err := d.engine.Recompute(ctx, target.Name); err != nil {
		return nil, true, fmt.Errorf("submit target: %w", err)
	}

	return actor, true, nil
}
