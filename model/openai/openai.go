// Package openai translates the neutral tool declarations into OpenAI Chat
// Completions tool params, so a caller driving the conversation through the
// OpenAI SDK can hand the registry's tool set straight to the API.
package openai

import (
	"github.com/openai/openai-go"

	"github.com/questhq/questagent/model"
)

// ToolParams converts neutral tool definitions into Chat Completions tool
// params.
func ToolParams(defs []model.ToolDefinition) []openai.ChatCompletionToolParam {
	tools := make([]openai.ChatCompletionToolParam, len(defs))
	for i, def := range defs {
		tools[i] = openai.ChatCompletionToolParam{
			Type: "function",
			Function: openai.FunctionDefinitionParam{
				Name:        def.Function.Name,
				Description: openai.String(def.Function.Description),
				Parameters:  def.Function.Parameters,
			},
		}
	}
	return tools
}
