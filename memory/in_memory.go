package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/questhq/questagent/core"
)

// storedMessage is the internal representation persisted by InMemoryStore.
type storedMessage struct {
	Role    string
	Content string
}

// InMemoryStore is a naive process-local MemoryGateway. It keeps messages
// per session and answers Context with a flat transcript and Search with a
// case-insensitive substring scan assigning a constant score of 1.0 to every
// hit. Suitable only for tests and demos; swap for the Zep adapter for
// production recall.
//
// Concurrency: protected by RWMutex.
type InMemoryStore struct {
	mu       sync.RWMutex
	messages map[string][]storedMessage // sessionID -> ordered messages
}

// NewInMemoryStore creates an empty in-memory memory gateway.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{messages: make(map[string][]storedMessage)}
}

// AddMessage appends one message under the session.
func (m *InMemoryStore) AddMessage(_ context.Context, sessionID, role, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[sessionID] = append(m.messages[sessionID], storedMessage{Role: role, Content: content})
	return nil
}

// Context returns a flat transcript of the session's messages, or "" for a
// session never written to (a normal no-data condition).
func (m *InMemoryStore) Context(_ context.Context, sessionID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs, exists := m.messages[sessionID]
	if !exists || len(msgs) == 0 {
		return "", nil
	}
	lines := make([]string, len(msgs))
	for i, msg := range msgs {
		lines[i] = fmt.Sprintf("%s: %s", msg.Role, msg.Content)
	}
	return strings.Join(lines, "\n"), nil
}

// Search performs a case-insensitive substring match over the session's
// messages. Results keep insertion order up to the provided limit.
func (m *InMemoryStore) Search(_ context.Context, sessionID, query string, limit int) ([]core.MemoryHit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs, exists := m.messages[sessionID]
	if !exists {
		return []core.MemoryHit{}, nil
	}
	needle := strings.ToLower(query)
	hits := make([]core.MemoryHit, 0, limit)
	for _, msg := range msgs {
		if limit > 0 && len(hits) >= limit {
			break
		}
		if query == "" || strings.Contains(strings.ToLower(msg.Content), needle) {
			hits = append(hits, core.MemoryHit{Role: msg.Role, Content: msg.Content, Score: 1.0})
		}
	}
	return hits, nil
}

// InMemoryGraph is a naive process-local GraphGateway storing fact
// statements per user with the same substring search semantics as
// InMemoryStore.
type InMemoryGraph struct {
	mu    sync.RWMutex
	facts map[string][]core.Fact // userID -> ordered facts
}

// NewInMemoryGraph creates an empty in-memory graph gateway.
func NewInMemoryGraph() *InMemoryGraph {
	return &InMemoryGraph{facts: make(map[string][]core.Fact)}
}

// AddFact appends one fact to the user's graph.
func (g *InMemoryGraph) AddFact(_ context.Context, userID string, fact core.Fact) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.facts[userID] = append(g.facts[userID], fact)
	return nil
}

// Search returns fact statements containing the query, case-insensitively.
func (g *InMemoryGraph) Search(_ context.Context, userID, query string, limit int) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	needle := strings.ToLower(query)
	var statements []string
	for _, fact := range g.facts[userID] {
		if limit > 0 && len(statements) >= limit {
			break
		}
		if query == "" || strings.Contains(strings.ToLower(fact.Statement), needle) {
			statements = append(statements, fact.Statement)
		}
	}
	return statements, nil
}

// UserFacts returns every fact statement stored for the user.
func (g *InMemoryGraph) UserFacts(_ context.Context, userID string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	facts := g.facts[userID]
	statements := make([]string, len(facts))
	for i, fact := range facts {
		statements[i] = fact.Statement
	}
	return statements, nil
}
