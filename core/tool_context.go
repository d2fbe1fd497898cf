package core

import (
	"context"
	"fmt"

	"github.com/questhq/questagent/logging"
)

// Gateways bundles the external collaborators available to tool
// implementations. Any field may be nil; the corresponding ToolContext
// helpers then fail with a "not configured" error instead of panicking.
// Gateway clients are process-wide, read-only after construction and safe
// for concurrent use by independent sessions.
type Gateways struct {
	Memory   MemoryGateway
	Graph    GraphGateway
	Profiles ProfileStore
}

// ToolContext provides a constrained, auditable surface for tool
// implementations invoked by the dispatcher. It carries the ambient
// cancellation context, the live session State reference, the configured
// gateways and a per-call correlation id. Gateway calls are the only
// suspension points of a tool invocation; state mutation itself never
// suspends.
type ToolContext struct {
	ctx       context.Context
	sessionID string
	callID    string
	state     *State
	gateways  Gateways

	*loggerAdapter
}

// NewToolContext constructs a tool context bound to one session and one
// function call.
func NewToolContext(
	ctx context.Context,
	sessionID string,
	state *State,
	gateways Gateways,
	logger logging.Logger,
) *ToolContext {
	return &ToolContext{
		ctx:           ctx,
		sessionID:     sessionID,
		callID:        NewID(),
		state:         state,
		gateways:      gateways,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Context returns the context associated with the tool invocation.
func (tc *ToolContext) Context() context.Context { return tc.ctx }

// SessionID returns the session the tool invocation belongs to.
func (tc *ToolContext) SessionID() string { return tc.sessionID }

// FunctionCallID returns the correlation id for this tool invocation.
func (tc *ToolContext) FunctionCallID() string { return tc.callID }

// Logger returns the logger associated with the tool invocation.
func (tc *ToolContext) Logger() logging.Logger { return tc.loggerAdapter.Logger() }

// State returns the live session state reference.
func (tc *ToolContext) State() *State { return tc.state }

// SaveMemory stores one conversation message in the memory service.
func (tc *ToolContext) SaveMemory(role, content string) error {
	if tc.gateways.Memory == nil {
		return fmt.Errorf("memory gateway not configured")
	}
	return tc.gateways.Memory.AddMessage(tc.ctx, tc.sessionID, role, content)
}

// MemoryContext returns the synthesized memory context for the session, or
// "" when the service has none yet.
func (tc *ToolContext) MemoryContext() (string, error) {
	if tc.gateways.Memory == nil {
		return "", fmt.Errorf("memory gateway not configured")
	}
	return tc.gateways.Memory.Context(tc.ctx, tc.sessionID)
}

// SearchMemory performs a recall query against the memory service.
func (tc *ToolContext) SearchMemory(query string, limit int) ([]MemoryHit, error) {
	if tc.gateways.Memory == nil {
		return nil, fmt.Errorf("memory gateway not configured")
	}
	return tc.gateways.Memory.Search(tc.ctx, tc.sessionID, query, limit)
}

// AddFact writes one structured fact to the user's knowledge graph.
func (tc *ToolContext) AddFact(userID string, fact Fact) error {
	if tc.gateways.Graph == nil {
		return fmt.Errorf("graph gateway not configured")
	}
	return tc.gateways.Graph.AddFact(tc.ctx, userID, fact)
}

// SearchGraph queries the user's knowledge graph.
func (tc *ToolContext) SearchGraph(userID, query string, limit int) ([]string, error) {
	if tc.gateways.Graph == nil {
		return nil, fmt.Errorf("graph gateway not configured")
	}
	return tc.gateways.Graph.Search(tc.ctx, userID, query, limit)
}

// UserFacts returns everything the graph knows about the user.
func (tc *ToolContext) UserFacts(userID string) ([]string, error) {
	if tc.gateways.Graph == nil {
		return nil, fmt.Errorf("graph gateway not configured")
	}
	return tc.gateways.Graph.UserFacts(tc.ctx, userID)
}

// Profiles returns the relational profile store, or an error when none is
// configured.
func (tc *ToolContext) Profiles() (ProfileStore, error) {
	if tc.gateways.Profiles == nil {
		return nil, fmt.Errorf("profile store not configured")
	}
	return tc.gateways.Profiles, nil
}

// Validate performs a structural sanity check of the context.
func (tc *ToolContext) Validate() error {
	if tc.state == nil || tc.sessionID == "" || tc.callID == "" {
		return fmt.Errorf("invalid ToolContext")
	}
	return nil
}
