package core

import (
	"context"
	"errors"
)

// MemoryHit is one ranked message returned by a memory search.
type MemoryHit struct {
	Role    string  `json:"role,omitempty"`
	Content string  `json:"content"`
	Score   float64 `json:"score,omitempty"`
}

// Fact is a structured statement written to the knowledge graph.
type Fact struct {
	Kind      string `json:"kind"`      // e.g. "skill", "preference", "goal"
	Statement string `json:"statement"` // natural language fact text
}

// MemoryGateway adapts tool intents into single calls against the hosted
// conversational memory service. Implementations are stateless; each method
// issues exactly one outbound call with no retries or batching. A read
// against a session the service has never seen is a normal no-data result
// (empty return, nil error), not a failure.
type MemoryGateway interface {
	// AddMessage stores one conversation message under the session.
	AddMessage(ctx context.Context, sessionID, role, content string) error
	// Context returns the service's synthesized memory context for the
	// session, or "" when none exists yet.
	Context(ctx context.Context, sessionID string) (string, error)
	// Search returns up to limit messages relevant to the query, ranked.
	Search(ctx context.Context, sessionID, query string, limit int) ([]MemoryHit, error)
}

// GraphGateway adapts tool intents into single calls against the hosted
// knowledge-graph service, keyed by user rather than session.
type GraphGateway interface {
	// AddFact writes one structured fact to the user's graph.
	AddFact(ctx context.Context, userID string, fact Fact) error
	// Search returns up to limit fact statements relevant to the query.
	Search(ctx context.Context, userID, query string, limit int) ([]string, error)
	// UserFacts returns everything the graph knows about the user.
	UserFacts(ctx context.Context, userID string) ([]string, error)
}

// ErrNoProfile is returned by ProfileStore.LoadProfile when no persisted
// record exists for the user.
var ErrNoProfile = errors.New("no profile record")

// ProfileStore persists career profiles in the relational store. A persisted
// record outlives any single session and is only written by tools invoked
// with a non-sentinel user id. Scalar writes are COALESCE-style merges that
// preserve existing values when the new value is unset; skills and needs are
// append-only inserts. Each call acquires a connection, commits its
// statements together and releases on all exit paths.
type ProfileStore interface {
	// SaveProfile upserts the profile scalars (name plus the current-state
	// row) for the user.
	SaveProfile(ctx context.Context, userID string, p Profile) error
	// AddSkill appends one skill row for the user.
	AddSkill(ctx context.Context, userID, name string) error
	// AddNeed appends one need row for the user.
	AddNeed(ctx context.Context, userID, name string) error
	// LoadProfile returns the last-known profile fields and skills for the
	// user, or ErrNoProfile when no record exists.
	LoadProfile(ctx context.Context, userID string) (Profile, error)
}

// SessionStore tracks the live State instance for each open conversation.
// State has no independent persistence; the store only scopes lifetimes.
type SessionStore interface {
	// Create constructs a fresh all-default state for the session, replacing
	// any existing one.
	Create(sessionID, userID string) (*State, error)
	// Get returns the live state for the session or ErrNoSession.
	Get(sessionID string) (*State, error)
	// GetOrCreate returns the live state, constructing an anonymous one on
	// first use.
	GetOrCreate(sessionID string) (*State, error)
	// Delete discards the session's state.
	Delete(sessionID string) error
}

// ErrNoSession is returned by SessionStore.Get for unknown sessions.
var ErrNoSession = errors.New("no such session")
