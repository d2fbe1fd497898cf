package profile

import (
	"context"
	"sync"

	"github.com/questhq/questagent/core"
)

type record struct {
	profile core.Profile
	needs   []string
}

// InMemoryStore is a map-backed core.ProfileStore with the same merge
// semantics as the Postgres store: scalar saves keep the prior value when the
// incoming field is empty, skill and need writes append unconditionally.
// Safe for concurrent use.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*record
}

// NewInMemoryStore creates an empty in-process profile store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]*record)}
}

func (s *InMemoryStore) get(userID string) *record {
	r, ok := s.records[userID]
	if !ok {
		r = &record{}
		s.records[userID] = r
	}
	return r
}

// SaveProfile merges the non-empty scalar fields of p into the user's record,
// creating it on first write. The skill list of p is ignored; skills only
// enter the store through AddSkill.
func (s *InMemoryStore) SaveProfile(_ context.Context, userID string, p core.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.get(userID)
	mergeScalar(&r.profile.Name, p.Name)
	mergeScalar(&r.profile.Role, p.Role)
	mergeScalar(&r.profile.Company, p.Company)
	mergeScalar(&r.profile.Location, p.Location)
	mergeScalar(&r.profile.DayRate, p.DayRate)
	mergeScalar(&r.profile.Availability, p.Availability)
	mergeScalar(&r.profile.WorkStyle, p.WorkStyle)
	return nil
}

// AddSkill appends one skill row for the user.
func (s *InMemoryStore) AddSkill(_ context.Context, userID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.get(userID)
	r.profile.Skills = append(r.profile.Skills, name)
	return nil
}

// AddNeed appends one need row for the user.
func (s *InMemoryStore) AddNeed(_ context.Context, userID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.get(userID)
	r.needs = append(r.needs, name)
	return nil
}

// LoadProfile returns a deep copy of the user's record, or core.ErrNoProfile
// when nothing has ever been written for the user.
func (s *InMemoryStore) LoadProfile(_ context.Context, userID string) (core.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[userID]
	if !ok {
		return core.Profile{}, core.ErrNoProfile
	}
	return r.profile.Clone(), nil
}

// Needs returns a copy of the user's recorded needs. Not part of the gateway
// interface; exposed for inspection in tests and demos.
func (s *InMemoryStore) Needs(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[userID]
	if !ok {
		return nil
	}
	needs := make([]string, len(r.needs))
	copy(needs, r.needs)
	return needs
}

func mergeScalar(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
