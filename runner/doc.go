// Package runner implements the dispatch layer between the driving LLM
// runtime and the tool registry.
//
// The Runner resolves the session's live State, builds a ToolContext, invokes
// the named tool through the registry and fans the outcome out to observers:
// a mutating tool call produces a state snapshot event, a read-only call a
// tool result event. Dispatch is strictly sequential per session; concurrent
// calls for independent sessions are fine.
package runner
