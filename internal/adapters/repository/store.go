// Package repository defines the participant registry interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/okian/repute/internal/domain/catalog"
	"github.com/okian/repute/internal/domain/model"
)

// Entry is one row of the reputation ranking.
type Entry struct {
	Rank  int
	Name  string
	Class catalog.Role
	Score float64
	Tier  string
}

// Store provides access to the participant registry. Participants are
// created on first reference and live for the process lifetime.
type Store interface {
	// GetOrCreate resolves a participant by name, creating it when absent.
	// Resolving an existing name under a different role class fails with
	// ErrRoleMismatch and leaves the existing participant untouched. An
	// empty class matches any existing participant.
	GetOrCreate(ctx context.Context, name string, class catalog.Role, createdAt time.Time) (*model.Participant, error)

	// Get returns the participant by name, or ErrNotFound.
	Get(ctx context.Context, name string) (*model.Participant, error)

	// Names returns participant names in registration order.
	Names(ctx context.Context) []string

	// Count returns the number of registered participants.
	Count(ctx context.Context) int

	// TopN returns up to n entries ordered by score desc, then name asc
	// (deterministic ordering).
	TopN(ctx context.Context, n int) ([]Entry, error)
}
