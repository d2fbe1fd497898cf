// Package anthropic translates the neutral tool declarations into Anthropic
// Messages API tool params.
package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"

	"github.com/questhq/questagent/model"
)

// ToolParams converts neutral tool definitions into Messages API tool
// params.
func ToolParams(defs []model.ToolDefinition) []anthropic.ToolUnionParam {
	tools := make([]anthropic.ToolUnionParam, len(defs))
	for i, def := range defs {
		inputSchema := anthropic.ToolInputSchemaParam{
			Type: constant.Object("object"),
		}
		if params := def.Function.Parameters; params != nil {
			if properties, exists := params["properties"]; exists {
				inputSchema.Properties = properties
			}
			if required, exists := params["required"]; exists {
				inputSchema.Required = requiredNames(required)
			}
		}
		tools[i] = anthropic.ToolUnionParamOfTool(inputSchema, def.Function.Name)
	}
	return tools
}

// requiredNames normalizes the schema's required list, which may be either
// []string or []any depending on how the schema was produced.
func requiredNames(required any) []string {
	switch req := required.(type) {
	case []string:
		return req
	case []any:
		names := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				names = append(names, s)
			}
		}
		return names
	default:
		return nil
	}
}
