package tool

import (
	"fmt"
	"strings"

	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// NewAddGraphFactTool returns the tool writing one structured fact to the
// user's knowledge graph. The graph is keyed by user, not session, so facts
// survive across conversations.
func NewAddGraphFactTool() *FunctionTool {
	return NewFunctionTool(
		"add_graph_fact",
		"Record a structured fact about the user in the knowledge graph, e.g. a skill, preference or goal.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind": map[string]any{
					"type":        "string",
					"description": "Fact category, e.g. skill, preference, goal",
				},
				"statement": map[string]any{
					"type":        "string",
					"description": "The fact as a short natural language statement",
				},
			},
			"required": []string{"kind", "statement"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			fact := core.Fact{
				Kind:      util.StringArg(args, "kind"),
				Statement: util.StringArg(args, "statement"),
			}

			userID := tc.State().UserID()
			if err := tc.AddFact(userID, fact); err != nil {
				tc.LogWarn("graph.add.failed", "user_id", userID, "error", err.Error())
				return core.DataResult(fmt.Sprintf("Error adding fact: %v", err)), nil
			}

			return core.DataResult(fmt.Sprintf("Recorded: %s", truncate(fact.Statement, 50))), nil
		},
	)
}

// NewSearchGraphTool returns the relevance search over the user's graph.
func NewSearchGraphTool() *FunctionTool {
	return NewFunctionTool(
		"search_graph",
		"Search the knowledge graph for facts about the user relevant to a query.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "What to look for",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of facts (default: 5)",
					"default":     defaultSearchLimit,
				},
			},
			"required": []string{"query"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			query := util.StringArg(args, "query")
			limit := util.IntArg(args, "limit", defaultSearchLimit)

			userID := tc.State().UserID()
			facts, err := tc.SearchGraph(userID, query, limit)
			if err != nil {
				tc.LogWarn("graph.search.failed", "user_id", userID, "error", err.Error())
				return core.DataResult(fmt.Sprintf("Error searching graph: %v", err)), nil
			}
			if len(facts) == 0 {
				return core.DataResult(MsgNoRelevantInfo), nil
			}

			return core.DataResult(strings.Join(facts, "\n")), nil
		},
	)
}

// NewGetUserContextTool returns the user-level read surfacing everything the
// graph knows about the user.
func NewGetUserContextTool() *FunctionTool {
	return NewFunctionTool(
		"get_user_context",
		"Get everything known about the user from the knowledge graph.",
		map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		func(tc *core.ToolContext, _ map[string]any) (core.Result, error) {
			userID := tc.State().UserID()
			facts, err := tc.UserFacts(userID)
			if err != nil {
				tc.LogWarn("graph.user_facts.failed", "user_id", userID, "error", err.Error())
				return core.DataResult(fmt.Sprintf("No user context found: %v", err)), nil
			}
			if len(facts) == 0 {
				return core.DataResult(MsgNoUserContext), nil
			}

			return core.DataResult(strings.Join(facts, "\n")), nil
		},
	)
}
