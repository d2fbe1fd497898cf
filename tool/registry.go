package tool

import (
	"fmt"
	"sort"
	"sync"

	"github.com/questhq/questagent/core"
)

// Registry holds the fixed set of named tools exposed to the driving runtime
// and implements the dispatch contract: the runtime selects a tool by name,
// the registry validates and invokes it against the live session state, and
// the caller receives a tagged core.Result it can forward uniformly (snapshot
// events for StateChanged results, plain data otherwise).
//
// Registration happens at startup; after that the registry is read-only and
// safe for concurrent dispatch across independent sessions.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// NewDefaultRegistry constructs a registry with the full Quest tool set
// registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, t := range All() {
		r.MustRegister(t)
	}
	return r
}

// Register adds a tool, rejecting duplicate names.
func (r *Registry) Register(t Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.Name()]; exists {
		return fmt.Errorf("tool %q already registered", t.Name())
	}
	r.tools[t.Name()] = t
	return nil
}

// MustRegister adds a tool and panics on duplicate names. Intended for
// startup wiring where a duplicate is a programming error.
func (r *Registry) MustRegister(t Tool) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tools returns the registered tools ordered by name.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Dispatch invokes the named tool with the given arguments. Unknown names
// yield a *ToolError with code UNKNOWN_TOOL; everything else follows the
// tool's own Call contract.
func (r *Registry) Dispatch(toolCtx *core.ToolContext, name string, args map[string]any) (core.Result, error) {
	t, ok := r.Get(name)
	if !ok {
		return core.Result{}, &ToolError{
			Tool:    name,
			Message: fmt.Sprintf("no tool registered under %q", name),
			Code:    "UNKNOWN_TOOL",
		}
	}
	if args == nil {
		args = map[string]any{}
	}
	return t.Call(toolCtx, args)
}

// All returns one instance of every Quest tool, in declaration order.
func All() []Tool {
	return []Tool{
		NewGetProfileTool(),
		NewAddSkillsTool(),
		NewSetSkillsTool(),
		NewUpdateProfileTool(),
		NewSetConsentTool(),
		NewCheckConsentTool(),
		NewSetStageTool(),
		NewSearchJobsTool(),
		NewSaveToMemoryTool(),
		NewGetMemoryTool(),
		NewSearchMemoryTool(),
		NewAddGraphFactTool(),
		NewSearchGraphTool(),
		NewGetUserContextTool(),
		NewSaveProfileTool(),
		NewAddSkillRecordTool(),
		NewAddNeedRecordTool(),
		NewLoadProfileTool(),
	}
}
