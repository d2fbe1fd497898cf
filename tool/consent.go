package tool

import (
	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// NewSetConsentTool returns the tool recording a consent decision. Last
// write wins; keys are added, never removed.
func NewSetConsentTool() *FunctionTool {
	return NewFunctionTool(
		"set_consent",
		"Record whether the user granted or declined a specific consent, e.g. memory_storage or job_alerts.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind": map[string]any{
					"type":        "string",
					"description": "Consent type identifier",
				},
				"granted": map[string]any{
					"type":        "boolean",
					"description": "Whether consent was granted",
				},
			},
			"required": []string{"kind", "granted"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			tc.State().SetConsent(util.StringArg(args, "kind"), util.BoolArg(args, "granted"))
			return core.StateResult(tc.State()), nil
		},
	)
}

// NewCheckConsentTool returns the read-only consent lookup. A consent never
// written reads false; it never defaults to granted.
func NewCheckConsentTool() *FunctionTool {
	return NewFunctionTool(
		"check_consent",
		"Check whether the user has granted a specific consent. Returns false when never asked.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind": map[string]any{
					"type":        "string",
					"description": "Consent type identifier",
				},
			},
			"required": []string{"kind"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			return core.DataResult(tc.State().Consent(util.StringArg(args, "kind"))), nil
		},
	)
}
