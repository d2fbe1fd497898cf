// Package model normalizes tool declarations for LLM providers. The tool
// registry is the single source of truth for names, descriptions and
// parameter schemas; this package converts the registered set into one
// vendor-neutral shape that the provider subpackages translate into their
// SDK's tool-param types.
package model

import (
	"github.com/questhq/questagent/tool"
)

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the
// model. Parameters is a JSON Schema object (minimal subset).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Declaration converts one tool into its neutral definition.
func Declaration(t tool.Tool) ToolDefinition {
	return ToolDefinition{
		Type: "function",
		Function: FunctionDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		},
	}
}

// Declarations converts the registry's tool set, preserving the registry's
// name ordering.
func Declarations(r *tool.Registry) []ToolDefinition {
	tools := r.Tools()
	defs := make([]ToolDefinition, len(tools))
	for i, t := range tools {
		defs[i] = Declaration(t)
	}
	return defs
}
