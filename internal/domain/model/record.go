// Package model contains the domain records passed between layers.
package model

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/okian/repute/internal/domain/catalog"
)

// EventRole marks which side of an occurrence a record belongs to. A single
// real-world occurrence produces at most two records, one per involved
// participant.
type EventRole string

// Record roles.
const (
	RoleActor  EventRole = "actor"
	RoleTarget EventRole = "target"
)

// Record is one occurrence of an event in a participant's history. The
// scoring parameters of its event type are captured at creation, so a
// record stays self-contained once appended.
type Record struct {
	ID        string
	Type      string
	Date      time.Time
	Role      EventRole
	DelayDays int

	params catalog.EventType
}

// NewRecord builds a record for the given event type, validating the type
// against the catalog. delayDays is the elapsed delay in whole days; it
// only matters for types that declare a delay factor.
func NewRecord(cat *catalog.Catalog, eventType string, date time.Time, role EventRole, delayDays int) (Record, error) {
	params, err := cat.Get(eventType)
	if err != nil {
		return Record{}, fmt.Errorf("new record: %w", err)
	}
	return Record{
		ID:        uuid.NewString(),
		Type:      eventType,
		Date:      date,
		Role:      role,
		DelayDays: delayDays,
		params:    params,
	}, nil
}

// Params returns the captured event-type parameters.
func (r Record) Params() catalog.EventType {
	return r.params
}

// EffectiveScore returns the record's contribution as of the given date.
//
// The role selects the weight: actor records use the base weight, target
// records use the target weight (zero when the type declares none). A
// record dated after asOf counts as zero days old rather than amplifying
// the score. Temporal decay and the delay penalty are independent
// multiplicative reductions and both apply when both are configured.
func (r Record) EffectiveScore(asOf time.Time) float64 {
	daysOld := DaysBetween(r.Date, asOf)
	if daysOld < 0 {
		daysOld = 0
	}

	score := r.params.Weight
	if r.Role == RoleTarget {
		score = r.params.TargetWeight
	}

	if r.params.Decay > 0 {
		score *= math.Pow(1-r.params.Decay, float64(daysOld))
	}
	if r.DelayDays > 0 && r.params.DelayFactor > 0 && r.params.DelayFactor < 1 {
		score *= math.Pow(r.params.DelayFactor, float64(r.DelayDays))
	}
	return score
}

// DaysBetween returns the whole days elapsed from one date to another.
// Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
