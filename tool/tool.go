// Package tool implements the tool calling subsystem that exposes Quest's
// capabilities to the driving LLM runtime: schema validated arguments,
// a fixed registry with a uniform dispatch contract, and the enumerated
// session-state, memory, graph and database tools.
package tool

import (
	"fmt"

	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// Tool defines the interface for a named, independently invocable operation
// exposed to the driving LLM runtime.
//
// Every tool receives a ToolContext carrying the live session State reference
// and the configured gateways, and returns a tagged core.Result: a Data value
// for read-only and external-call tools, a StateChanged snapshot for mutating
// tools. A tool performs at most one outbound gateway call and/or one
// in-place state mutation per invocation.
//
// External-call failures never escape a tool as errors: they are converted
// into descriptive string results at the tool boundary so a failed service
// call cannot abort the conversation turn. The error return is reserved for
// contract violations (unknown tool, argument validation).
type Tool interface {
	// Name returns the unique identifier for this tool (snake_case).
	Name() string

	// Description returns a human-readable description of what this tool does.
	// It is provided to the LLM to help it decide when to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected input format.
	Parameters() map[string]any

	// Call executes the tool with validated arguments and the ToolContext.
	Call(toolCtx *core.ToolContext, args map[string]any) (core.Result, error)
}

// ValidationError represents parameter validation errors with detailed information.
type ValidationError = util.ValidationError

// ToolError represents errors that occur during tool dispatch.
type ToolError struct {
	Tool    string `json:"tool"`              // Name of the tool that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}
