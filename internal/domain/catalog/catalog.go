// Package catalog holds the static event-type table that drives scoring.
//
// Every event type carries its scoring parameters: the actor-side weight,
// the optional target-side weight, the daily decay rate, the role classes
// allowed to originate it, and an optional delay-penalty factor. The
// catalog is built once and read-only afterwards.
package catalog

import "fmt"

// Role classifies a participant and gates which events it may originate.
type Role string

// Known role classes.
const (
	RoleCommon     Role = "common"
	RoleAdvertiser Role = "advertiser"
)

// EventType describes the scoring parameters of one event category.
type EventType struct {
	// Weight is the actor-side contribution. May be negative for penalties.
	Weight float64

	// TargetWeight is the target-side contribution. Only meaningful when
	// AffectsTarget is true; a target record of a type without a target
	// weight contributes zero.
	TargetWeight float64

	// Decay is the daily decay rate in [0,1). Zero is a sentinel for
	// "never decays", not "decays instantly".
	Decay float64

	// AllowedFor lists the role classes that may originate this event.
	AllowedFor []Role

	// AffectsTarget marks events with a secondary party.
	AffectsTarget bool

	// DelayFactor is the per-day delay penalty in (0,1]. Zero means unset:
	// no delay penalty is applied.
	DelayFactor float64
}

// Allows reports whether the given role class may originate this event.
func (e EventType) Allows(role Role) bool {
	for _, r := range e.AllowedFor {
		if r == role {
			return true
		}
	}
	return false
}

// Catalog is an immutable lookup table of event types keyed by identifier.
type Catalog struct {
	types map[string]EventType
}

// Option applies a configuration option while building a Catalog.
type Option func(map[string]EventType)

// WithWeightOverrides replaces the actor-side weight of listed event types.
// Unknown identifiers are ignored so a stale override cannot grow the table.
func WithWeightOverrides(overrides map[string]float64) Option {
	return func(types map[string]EventType) {
		for id, weight := range overrides {
			et, ok := types[id]
			if !ok {
				continue
			}
			et.Weight = weight
			types[id] = et
		}
	}
}

// New builds a Catalog from the given table. The table is copied, so the
// caller's map cannot mutate the catalog afterwards.
func New(types map[string]EventType, opts ...Option) *Catalog {
	cp := make(map[string]EventType, len(types))
	for id, et := range types {
		cp[id] = et
	}
	for _, opt := range opts {
		opt(cp)
	}
	return &Catalog{types: cp}
}

// Get returns the event type for id, or ErrUnknownEventType.
func (c *Catalog) Get(id string) (EventType, error) {
	et, ok := c.types[id]
	if !ok {
		return EventType{}, fmt.Errorf("%w: %q", ErrUnknownEventType, id)
	}
	return et, nil
}

// Has reports whether id is a known event type.
func (c *Catalog) Has(id string) bool {
	_, ok := c.types[id]
	return ok
}

// Len returns the number of event types in the catalog.
func (c *Catalog) Len() int {
	return len(c.types)
}
