package tool

import (
	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// NewGetProfileTool returns the read-only tool surfacing the current session
// profile, including the skill list. The result may be entirely empty for a
// fresh session; that is a normal return, not an error.
func NewGetProfileTool() *FunctionTool {
	return NewFunctionTool(
		"get_profile",
		"Get the user's current profile: name, role, company, location, day rate, availability, work style and skills. "+
			"Always call this before discussing or updating profile details.",
		map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		func(tc *core.ToolContext, _ map[string]any) (core.Result, error) {
			return core.DataResult(tc.State().Profile()), nil
		},
	)
}

// NewAddSkillsTool returns the tool appending skills to the session list.
// Appends are monotonic: nothing is deduplicated or removed.
func NewAddSkillsTool() *FunctionTool {
	return NewFunctionTool(
		"add_skills",
		"Add one or more skills to the user's skill list. Existing skills are kept.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"skills": map[string]any{
					"type":        "array",
					"description": "Skills to append, in order",
				},
			},
			"required": []string{"skills"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			tc.State().AppendSkills(util.StringSliceArg(args, "skills"))
			return core.StateResult(tc.State()), nil
		},
	)
}

// NewSetSkillsTool returns the tool replacing the whole skill list. This is
// the only operation that can shrink it.
func NewSetSkillsTool() *FunctionTool {
	return NewFunctionTool(
		"set_skills",
		"Replace the user's entire skill list with the given one.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"skills": map[string]any{
					"type":        "array",
					"description": "The complete new skill list",
				},
			},
			"required": []string{"skills"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			tc.State().ReplaceSkills(util.StringSliceArg(args, "skills"))
			return core.StateResult(tc.State()), nil
		},
	)
}

// updateProfileArgs is the patch surface of update_profile. Every field is
// optional; an omitted or empty field leaves the current value untouched.
type updateProfileArgs struct {
	Name         string `json:"name,omitempty" description:"The user's name"`
	Role         string `json:"role,omitempty" description:"Target role or title, e.g. CTO"`
	Company      string `json:"company,omitempty" description:"Current or most recent company"`
	Location     string `json:"location,omitempty" description:"Preferred work location"`
	DayRate      string `json:"day_rate,omitempty" description:"Target day rate, e.g. £800"`
	Availability string `json:"availability,omitempty" description:"Availability, e.g. 3 days/week from March"`
	WorkStyle    string `json:"work_style,omitempty" description:"Preferred work style, e.g. remote, hybrid"`
}

// NewUpdateProfileTool returns the merge-write tool for profile scalars.
// Supplied non-empty fields overwrite; everything else is preserved. The
// merge applies as a whole or not at all.
func NewUpdateProfileTool() *FunctionTool {
	return NewFunctionToolFromStruct(
		"update_profile",
		"Update profile fields the user has mentioned. Only pass fields with new values; omitted fields are kept.",
		updateProfileArgs{},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			tc.State().ApplyPatch(core.ProfilePatch{
				Name:         util.StringArg(args, "name"),
				Role:         util.StringArg(args, "role"),
				Company:      util.StringArg(args, "company"),
				Location:     util.StringArg(args, "location"),
				DayRate:      util.StringArg(args, "day_rate"),
				Availability: util.StringArg(args, "availability"),
				WorkStyle:    util.StringArg(args, "work_style"),
			})
			return core.StateResult(tc.State()), nil
		},
	)
}
