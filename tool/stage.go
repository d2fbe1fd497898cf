package tool

import (
	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// NewSetStageTool returns the tool advancing the conversation phase. Stages
// never change automatically; this is the only operation that writes them.
// An undeclared stage is rejected with a descriptive result and the state is
// left unchanged.
func NewSetStageTool() *FunctionTool {
	return NewFunctionTool(
		"set_stage",
		"Move the conversation to a different stage: onboarding, enrichment or trinity.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"stage": map[string]any{
					"type":        "string",
					"enum":        []string{string(core.StageOnboarding), string(core.StageEnrichment), string(core.StageTrinity)},
					"description": "The stage to move to",
				},
			},
			"required": []string{"stage"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			stage := core.Stage(util.StringArg(args, "stage"))
			// Schema enum validation already rejects undeclared stages; the
			// state guard stays authoritative for direct callers.
			if err := tc.State().SetStage(stage); err != nil {
				return core.Result{}, err
			}
			return core.StateResult(tc.State()), nil
		},
	)
}
