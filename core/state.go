package core

import (
	"fmt"
	"sync"
	"time"
)

// AnonymousUserID is the sentinel user identifier for an unauthenticated,
// ephemeral session. Database-backed tools short-circuit on it without
// touching any gateway.
const AnonymousUserID = "anonymous"

// Stage is a named conversation phase. It is advanced only by an explicit
// tool call, never automatically.
type Stage string

const (
	// StageOnboarding is the initial phase for a fresh session.
	StageOnboarding Stage = "onboarding"
	// StageEnrichment is the phase where profile details are collected.
	StageEnrichment Stage = "enrichment"
	// StageTrinity is the final phase (role, rate and availability known).
	StageTrinity Stage = "trinity"
)

// Stages returns the declared conversation phases in order.
func Stages() []Stage { return []Stage{StageOnboarding, StageEnrichment, StageTrinity} }

// Valid reports whether s is one of the declared phases.
func (s Stage) Valid() bool {
	return s == StageOnboarding || s == StageEnrichment || s == StageTrinity
}

// Profile holds the optional scalar career fields plus the ordered,
// append-only skill list. An empty string means the field is unset.
type Profile struct {
	Name         string   `json:"name,omitempty"`
	Role         string   `json:"role,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	DayRate      string   `json:"day_rate,omitempty"`
	Availability string   `json:"availability,omitempty"`
	WorkStyle    string   `json:"work_style,omitempty"`
	Skills       []string `json:"skills"`
}

// Clone returns a deep copy of the profile safe for independent mutation.
func (p Profile) Clone() Profile {
	c := p
	c.Skills = make([]string, len(p.Skills))
	copy(c.Skills, p.Skills)
	return c
}

// ProfilePatch is a merge-write against Profile scalars. An empty field means
// "no change"; a non-empty field overwrites the current value. Skills are
// never part of a patch since the list has its own append/replace operations.
type ProfilePatch struct {
	Name         string `json:"name,omitempty"`
	Role         string `json:"role,omitempty"`
	Company      string `json:"company,omitempty"`
	Location     string `json:"location,omitempty"`
	DayRate      string `json:"day_rate,omitempty"`
	Availability string `json:"availability,omitempty"`
	WorkStyle    string `json:"work_style,omitempty"`
}

// IsZero reports whether the patch carries no changes at all.
func (p ProfilePatch) IsZero() bool { return p == ProfilePatch{} }

func merge(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Snapshot is a full, detached copy of a session's State at one point in
// time. Its JSON shape is the externally visible session state forwarded to
// the driving runtime's observers.
type Snapshot struct {
	UserID    string          `json:"user_id"`
	Stage     Stage           `json:"stage"`
	Profile   Profile         `json:"profile"`
	Consents  map[string]bool `json:"consents"`
	JobsShown int             `json:"jobs_shown"`
}

// ErrUnknownStage is returned when a stage write names an undeclared phase.
// The state is left unchanged in that case.
var ErrUnknownStage = fmt.Errorf("unknown stage")

// State is the structured, per-conversation mutable session record. One live
// instance exists per conversation; it is constructed at session start,
// handed by reference into every tool call and discarded when the session
// ends. It has no persistence of its own: database writes are opt-in via the
// ProfileStore-backed tools.
//
// Contract:
//   - Only tool operations mutate it; each mutator applies atomically
//   - The skill list never shrinks except via ReplaceSkills
//   - Consent keys are added, never removed
//   - The stage is always one of the declared phases
//
// Access is guarded by an RWMutex. Dispatch is strictly sequential per
// session, so the lock only matters for cross-session readers (observers).
type State struct {
	mu        sync.RWMutex
	userID    string
	stage     Stage
	profile   Profile
	consents  map[string]bool
	jobsShown int
	created   time.Time
	updated   time.Time
}

// NewState creates an all-default anonymous session state.
func NewState() *State { return NewStateForUser(AnonymousUserID) }

// NewStateForUser creates a fresh session state bound to the given user id.
func NewStateForUser(userID string) *State {
	if userID == "" {
		userID = AnonymousUserID
	}
	now := time.Now()
	return &State{
		userID:   userID,
		stage:    StageOnboarding,
		consents: map[string]bool{},
		created:  now,
		updated:  now,
	}
}

// UserID returns the session's user identifier.
func (s *State) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Anonymous reports whether the session is unauthenticated.
func (s *State) Anonymous() bool { return s.UserID() == AnonymousUserID }

// Stage returns the current conversation phase.
func (s *State) Stage() Stage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stage
}

// SetStage overwrites the conversation phase. Undeclared phases are rejected
// with ErrUnknownStage and the state is left untouched.
func (s *State) SetStage(stage Stage) error {
	if !stage.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStage, stage)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = stage
	s.updated = time.Now()
	return nil
}

// Profile returns a deep copy of the current profile.
func (s *State) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// ApplyPatch merges all non-empty patch fields into the profile. Empty fields
// leave the prior value untouched. The merge applies as a whole under one
// lock acquisition.
func (s *State) ApplyPatch(p ProfilePatch) {
	if p.IsZero() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merge(&s.profile.Name, p.Name)
	merge(&s.profile.Role, p.Role)
	merge(&s.profile.Company, p.Company)
	merge(&s.profile.Location, p.Location)
	merge(&s.profile.DayRate, p.DayRate)
	merge(&s.profile.Availability, p.Availability)
	merge(&s.profile.WorkStyle, p.WorkStyle)
	s.updated = time.Now()
}

// AppendSkills appends the given skills in order. No deduplication.
func (s *State) AppendSkills(skills []string) {
	if len(skills) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Skills = append(s.profile.Skills, skills...)
	s.updated = time.Now()
}

// ReplaceSkills discards the current skill list and installs the given one.
func (s *State) ReplaceSkills(skills []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Skills = make([]string, len(skills))
	copy(s.profile.Skills, skills)
	s.updated = time.Now()
}

// Skills returns a copy of the current skill list.
func (s *State) Skills() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	skills := make([]string, len(s.profile.Skills))
	copy(skills, s.profile.Skills)
	return skills
}

// SetConsent records a consent decision. Last write wins.
func (s *State) SetConsent(kind string, granted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consents[kind] = granted
	s.updated = time.Now()
}

// Consent reports whether consent of the given kind has been granted. A key
// never written reads false.
func (s *State) Consent(kind string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.consents[kind]
}

// Consents returns a copy of the consent map.
func (s *State) Consents() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := make(map[string]bool, len(s.consents))
	for k, v := range s.consents {
		c[k] = v
	}
	return c
}

// SetJobsShown overwrites the count of results surfaced by the last search.
func (s *State) SetJobsShown(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobsShown = n
	s.updated = time.Now()
}

// JobsShown returns the count of results surfaced by the last search.
func (s *State) JobsShown() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobsShown
}

// Updated returns the time of the last mutation.
func (s *State) Updated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}

// Snapshot returns a full, detached copy of the state. Mutating the returned
// value never affects the live session.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	consents := make(map[string]bool, len(s.consents))
	for k, v := range s.consents {
		consents[k] = v
	}
	return Snapshot{
		UserID:    s.userID,
		Stage:     s.stage,
		Profile:   s.profile.Clone(),
		Consents:  consents,
		JobsShown: s.jobsShown,
	}
}
