package core

import (
	"time"

	"github.com/google/uuid"
)

// EventKind labels the semantic category of an Event.
type EventKind string

const (
	// EventKindStateSnapshot tags an event carrying a full state copy emitted
	// after a mutating tool call.
	EventKindStateSnapshot EventKind = "state_snapshot"
	// EventKindToolResult tags an event carrying the plain return value of a
	// non-mutating tool call.
	EventKindToolResult EventKind = "tool_result"
)

// Event is the unit of communication between the dispatcher and external
// observers (e.g. a UI keeping its rendered state in sync). After emission it
// should be treated as immutable. The embedded snapshot reflects the session
// state at the moment the originating tool call completed, not an earlier or
// later point.
type Event struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Tool      string    `json:"tool"`
	Kind      EventKind `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  *Snapshot `json:"snapshot,omitempty"`
	Value     any       `json:"value,omitempty"`
}

// NewID generates a unique identifier for events and function call
// correlation.
func NewID() string { return uuid.NewString() }

func newEvent(sessionID, tool string, kind EventKind) Event {
	return Event{
		ID:        NewID(),
		SessionID: sessionID,
		Tool:      tool,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
	}
}

// NewStateSnapshotEvent wraps a detached state copy into a snapshot event.
func NewStateSnapshotEvent(sessionID, tool string, snap Snapshot) Event {
	e := newEvent(sessionID, tool, EventKindStateSnapshot)
	e.Snapshot = &snap
	return e
}

// NewToolResultEvent records the plain return value of a tool call.
func NewToolResultEvent(sessionID, tool string, value any) Event {
	e := newEvent(sessionID, tool, EventKindToolResult)
	e.Value = value
	return e
}

// IsSnapshot reports whether the event carries a state snapshot.
func (e Event) IsSnapshot() bool { return e.Kind == EventKindStateSnapshot && e.Snapshot != nil }
