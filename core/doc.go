// Package core provides the foundational domain types, interfaces and execution
// contexts used by Quest Agent. It defines the core abstractions for:
//
//   - State (the structured per-conversation session record)
//   - Results (the discriminated data / state-changed return contract)
//   - Events (snapshot + tool result records forwarded to observers)
//   - ToolContext (scoped execution surface handed to tool implementations)
//   - Pluggable gateways for memory recall, knowledge-graph facts and the
//     relational profile store
//
// The package intentionally keeps implementation concerns (concrete gateway
// backends, dispatch, tool schemas) out of scope, exposing small interfaces to
// enable custom backends and extensions.
package core
