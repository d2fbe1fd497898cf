package core

// ResultKind discriminates the two shapes a tool call may return.
type ResultKind string

const (
	// KindData marks an opaque informational return value.
	KindData ResultKind = "data"
	// KindStateChanged marks a return carrying a full state snapshot after a
	// mutation.
	KindStateChanged ResultKind = "state_changed"
)

// Result is the tagged return value of every tool invocation. Read-only and
// external-call tools return Data results; mutating tools return a
// StateChanged result whose snapshot reflects the state at the moment the
// call completed. The dispatcher decides uniformly from Kind whether a
// snapshot event must be forwarded, without inspecting ad hoc shapes.
type Result struct {
	Kind     ResultKind `json:"kind"`
	Value    any        `json:"value,omitempty"`
	Snapshot *Snapshot  `json:"snapshot,omitempty"`
}

// DataResult wraps a plain return value.
func DataResult(v any) Result {
	return Result{Kind: KindData, Value: v}
}

// StateResult captures a snapshot of the given state. The copy is taken here,
// at call completion, so later mutations do not leak into the result.
func StateResult(s *State) Result {
	snap := s.Snapshot()
	return Result{Kind: KindStateChanged, Snapshot: &snap}
}

// StateResultWithValue captures a snapshot and additionally attaches an
// informational value (e.g. the fabricated listings of a job search).
func StateResultWithValue(s *State, v any) Result {
	r := StateResult(s)
	r.Value = v
	return r
}

// StateChanged reports whether the result carries a snapshot.
func (r Result) StateChanged() bool { return r.Kind == KindStateChanged }
