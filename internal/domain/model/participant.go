package model

import (
	"time"

	"github.com/okian/repute/internal/domain/catalog"
	"github.com/okian/repute/internal/domain/tier"
)

// Participant is one marketplace account: its role class, tenure anchor,
// event history, and the derived reputation state written by the engine.
type Participant struct {
	Name      string
	Class     catalog.Role
	CreatedAt time.Time

	// History keeps records in insertion order. Pruning rewrites it.
	History []Record

	// Derived state, valid after the first recompute.
	Score       float64
	TenureBonus float64
	Tier        *tier.Tier

	// LastEventAt is the latest record date seen, zero before any event.
	LastEventAt time.Time
}

// NewParticipant creates a participant. Role class and creation date are
// fixed for the participant's lifetime.
func NewParticipant(name string, class catalog.Role, createdAt time.Time) *Participant {
	return &Participant{
		Name:      name,
		Class:     class,
		CreatedAt: createdAt,
	}
}

// AddRecord appends a record and bumps LastEventAt when the record is
// strictly newer. It does not recompute the score; mutation and
// aggregation are separate steps owned by different callers.
func (p *Participant) AddRecord(r Record) {
	p.History = append(p.History, r)
	if p.LastEventAt.IsZero() || r.Date.After(p.LastEventAt) {
		p.LastEventAt = r.Date
	}
}

// PruneBefore drops every record dated before cutoff and returns how many
// were removed. The truncation is permanent: expired records are gone, not
// merely skipped.
func (p *Participant) PruneBefore(cutoff time.Time) int {
	kept := p.History[:0]
	for _, r := range p.History {
		if !r.Date.Before(cutoff) {
			kept = append(kept, r)
		}
	}
	removed := len(p.History) - len(kept)
	p.History = kept
	return removed
}
