package session

import (
	"fmt"
	"sync"

	"github.com/questhq/questagent/core"
)

// InMemoryStore is a volatile SessionStore implementation keeping live State
// instances in a process local map. It is safe for concurrent access. States
// are handed out by reference, never cloned: the store scopes lifetimes, it
// does not snapshot. Observers wanting a detached view call State.Snapshot.
type InMemoryStore struct {
	mu     sync.RWMutex
	states map[string]*core.State
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{states: make(map[string]*core.State)}
}

// Create constructs a fresh all-default state bound to userID, replacing any
// existing state for the session.
func (s *InMemoryStore) Create(sessionID, userID string) (*core.State, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	state := core.NewStateForUser(userID)
	s.states[sessionID] = state
	return state, nil
}

// Get returns the live state for the session or core.ErrNoSession.
func (s *InMemoryStore) Get(sessionID string) (*core.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrNoSession, sessionID)
	}
	return state, nil
}

// GetOrCreate returns the live state, constructing an anonymous one when the
// session has not been seen before.
func (s *InMemoryStore) GetOrCreate(sessionID string) (*core.State, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.states[sessionID]; ok {
		return state, nil
	}
	state := core.NewState()
	s.states[sessionID] = state
	return state, nil
}

// Delete discards the session's state. Deleting an unknown session is a
// no-op.
func (s *InMemoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}
