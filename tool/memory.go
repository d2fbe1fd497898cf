package tool

import (
	"fmt"
	"strings"

	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// Sentinel results for the no-data conditions of memory and graph reads.
// Querying before any data exists is a normal outcome, never an error.
const (
	MsgNoMemory           = "No memory found for this session."
	MsgNoRelevantMemories = "No relevant memories found."
	MsgNoRelevantInfo     = "No relevant information found."
	MsgNoUserContext      = "No user context found."
)

// defaultSearchLimit bounds memory and graph searches when the model does
// not pass one.
const defaultSearchLimit = 5

// truncate shortens content for confirmation strings.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// NewSaveToMemoryTool returns the tool writing one message to the hosted
// memory service. Failures are reported as a descriptive string, never as an
// error that could abort the turn.
func NewSaveToMemoryTool() *FunctionTool {
	return NewFunctionTool(
		"save_to_memory",
		"Save a message to long-term memory for this session. Use this to remember important information about the user.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"content": map[string]any{
					"type":        "string",
					"description": "The message content to remember",
				},
				"role": map[string]any{
					"type":        "string",
					"description": "Message role, defaults to user",
				},
			},
			"required": []string{"content"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			content := util.StringArg(args, "content")
			role := util.StringArg(args, "role")
			if role == "" {
				role = "user"
			}

			if err := tc.SaveMemory(role, content); err != nil {
				tc.LogWarn("memory.add.failed", "session_id", tc.SessionID(), "error", err.Error())
				return core.DataResult(fmt.Sprintf("Error saving to memory: %v", err)), nil
			}

			return core.DataResult(fmt.Sprintf("Saved to memory: %s", truncate(content, 50))), nil
		},
	)
}

// NewGetMemoryTool returns the tool recalling the synthesized memory context
// for the session. A session the service has never seen yields the no-memory
// sentinel, not a failure.
func NewGetMemoryTool() *FunctionTool {
	return NewFunctionTool(
		"get_memory",
		"Retrieve the memory context for this session. Use this to recall what you know about the user.",
		map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		func(tc *core.ToolContext, _ map[string]any) (core.Result, error) {
			memoryCtx, err := tc.MemoryContext()
			if err != nil {
				tc.LogWarn("memory.get.failed", "session_id", tc.SessionID(), "error", err.Error())
				return core.DataResult(fmt.Sprintf("No memory found (session may be new): %v", err)), nil
			}
			if memoryCtx == "" {
				return core.DataResult(MsgNoMemory), nil
			}
			return core.DataResult(memoryCtx), nil
		},
	)
}

// NewSearchMemoryTool returns the ranked recall search over session memory.
func NewSearchMemoryTool() *FunctionTool {
	return NewFunctionTool(
		"search_memory",
		"Search this session's memory for information relevant to a query.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "What to look for",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results (default: 5)",
					"default":     defaultSearchLimit,
				},
			},
			"required": []string{"query"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			query := util.StringArg(args, "query")
			limit := util.IntArg(args, "limit", defaultSearchLimit)

			hits, err := tc.SearchMemory(query, limit)
			if err != nil {
				tc.LogWarn("memory.search.failed", "session_id", tc.SessionID(), "error", err.Error())
				return core.DataResult(fmt.Sprintf("Error searching memory: %v", err)), nil
			}
			if len(hits) == 0 {
				return core.DataResult(MsgNoRelevantMemories), nil
			}

			lines := make([]string, len(hits))
			for i, hit := range hits {
				lines[i] = hit.Content
			}
			return core.DataResult(strings.Join(lines, "\n")), nil
		},
	)
}
