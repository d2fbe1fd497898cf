package tool

import (
	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// NewSearchJobsTool returns the placeholder job search. No external board is
// wired yet, so it fabricates a fixed-shape result set of three listings
// matching the requested role and location, and records how many were shown.
//
// TODO: replace the fabricated listings once a job board gateway lands.
func NewSearchJobsTool() *FunctionTool {
	return NewFunctionTool(
		"search_jobs",
		"Search for fractional and interim roles matching a role title and location.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"role": map[string]any{
					"type":        "string",
					"description": "Role title to search for, e.g. Engineer",
				},
				"location": map[string]any{
					"type":        "string",
					"description": "Preferred location, e.g. London or Remote",
				},
			},
			"required": []string{"role", "location"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			role := util.StringArg(args, "role")
			location := util.StringArg(args, "location")

			jobs := []core.Job{
				{Title: "Fractional " + role, Company: "Meridian Partners", Location: location, DayRate: "£850"},
				{Title: "Interim " + role, Company: "Northgate Ventures", Location: location, DayRate: "£780"},
				{Title: role + " (Contract)", Company: "Bluestone Digital", Location: location, DayRate: "£720"},
			}

			tc.State().SetJobsShown(len(jobs))

			return core.StateResultWithValue(tc.State(), jobs), nil
		},
	)
}
