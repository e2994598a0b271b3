package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/okian/repute/internal/domain/catalog"
	"github.com/okian/repute/internal/domain/model"
)

// MemStore is the in-memory Store implementation. It preserves
// registration order, which drives the recompute order on time advances.
//
// MemStore itself is not synchronized; the engine instance owning it is a
// single critical section and callers embedding it in a concurrent host
// must serialize access at that level.
type MemStore struct {
	byName map[string]*model.Participant
	order  []string
}

// NewMemStore creates an empty registry.
func NewMemStore(_ context.Context) *MemStore {
	return &MemStore{
		byName: make(map[string]*model.Participant),
	}
}

// GetOrCreate resolves a participant by name, creating it when absent.
func (s *MemStore) GetOrCreate(_ context.Context, name string, class catalog.Role, createdAt time.Time) (*model.Participant, error) {
	if p, ok := s.byName[name]; ok {
		if class != "" && p.Class != class {
			return nil, fmt.Errorf("%w: %q is %q, not %q", ErrRoleMismatch, name, p.Class, class)
		}
		return p, nil
	}
	p := model.NewParticipant(name, class, createdAt)
	s.byName[name] = p
	s.order = append(s.order, name)
	return p, nil
}

// Get returns the participant by name, or ErrNotFound.
func (s *MemStore) Get(_ context.Context, name string) (*model.Participant, error) {
	p, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p, nil
}

// Names returns participant names in registration order.
func (s *MemStore) Names(_ context.Context) []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Count returns the number of registered participants.
func (s *MemStore) Count(_ context.Context) int {
	return len(s.byName)
}

// TopN returns up to n ranking entries ordered by score desc, name asc.
func (s *MemStore) TopN(_ context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}

	entries := make([]Entry, 0, len(s.order))
	for _, name := range s.order {
		p := s.byName[name]
		e := Entry{Name: p.Name, Class: p.Class, Score: p.Score}
		if p.Tier != nil {
			e.Tier = p.Tier.Name
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
