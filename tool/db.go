package tool

import (
	"errors"
	"fmt"

	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// Sentinel results for database-backed tools invoked on an anonymous
// session. The short-circuit happens before any gateway call.
const (
	MsgNotLoggedInSave = "Not logged in - profile kept for this session only."
	MsgNotLoggedInLoad = "Not logged in - using the session profile only."
	MsgNoSavedProfile  = "No saved profile found."
)

// NewSaveProfileTool returns the tool persisting the session profile to the
// relational store. Scalar writes merge COALESCE-style so an unset session
// field never blanks a previously saved value.
func NewSaveProfileTool() *FunctionTool {
	return NewFunctionTool(
		"save_profile_to_db",
		"Persist the user's current profile so it survives beyond this session. Requires a logged-in user.",
		map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		func(tc *core.ToolContext, _ map[string]any) (core.Result, error) {
			state := tc.State()
			if state.Anonymous() {
				return core.DataResult(MsgNotLoggedInSave), nil
			}

			profiles, err := tc.Profiles()
			if err != nil {
				return core.DataResult(fmt.Sprintf("Error saving profile: %v", err)), nil
			}

			userID := state.UserID()
			if err := profiles.SaveProfile(tc.Context(), userID, state.Profile()); err != nil {
				tc.LogWarn("db.save_profile.failed", "user_id", userID, "error", err.Error())
				return core.DataResult(fmt.Sprintf("Error saving profile: %v", err)), nil
			}

			return core.DataResult("Profile saved."), nil
		},
	)
}

// NewAddSkillRecordTool returns the tool appending one skill row to the
// relational store. The skills table is append-only.
func NewAddSkillRecordTool() *FunctionTool {
	return NewFunctionTool(
		"add_skill_to_db",
		"Persist one skill to the user's saved record. Requires a logged-in user.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "The skill name",
				},
			},
			"required": []string{"name"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			state := tc.State()
			if state.Anonymous() {
				return core.DataResult(MsgNotLoggedInSave), nil
			}

			profiles, err := tc.Profiles()
			if err != nil {
				return core.DataResult(fmt.Sprintf("Error saving skill: %v", err)), nil
			}

			name := util.StringArg(args, "name")
			userID := state.UserID()
			if err := profiles.AddSkill(tc.Context(), userID, name); err != nil {
				tc.LogWarn("db.add_skill.failed", "user_id", userID, "error", err.Error())
				return core.DataResult(fmt.Sprintf("Error saving skill: %v", err)), nil
			}

			return core.DataResult(fmt.Sprintf("Skill saved: %s", name)), nil
		},
	)
}

// NewAddNeedRecordTool returns the tool appending one need row to the
// relational store. Needs mirror skills: append-only, keyed by user.
func NewAddNeedRecordTool() *FunctionTool {
	return NewFunctionTool(
		"add_need_to_db",
		"Persist something the user is looking for (a need) to their saved record. Requires a logged-in user.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "The need, e.g. 'part-time CTO role'",
				},
			},
			"required": []string{"name"},
		},
		func(tc *core.ToolContext, args map[string]any) (core.Result, error) {
			state := tc.State()
			if state.Anonymous() {
				return core.DataResult(MsgNotLoggedInSave), nil
			}

			profiles, err := tc.Profiles()
			if err != nil {
				return core.DataResult(fmt.Sprintf("Error saving need: %v", err)), nil
			}

			name := util.StringArg(args, "name")
			userID := state.UserID()
			if err := profiles.AddNeed(tc.Context(), userID, name); err != nil {
				tc.LogWarn("db.add_need.failed", "user_id", userID, "error", err.Error())
				return core.DataResult(fmt.Sprintf("Error saving need: %v", err)), nil
			}

			return core.DataResult(fmt.Sprintf("Need saved: %s", name)), nil
		},
	)
}

// NewLoadProfileTool returns the tool merging the user's saved record into
// the live session state. Saved scalars fill in via the usual merge rule and
// saved skills are appended, skipping ones the session already lists, so the
// skill list stays append-only.
func NewLoadProfileTool() *FunctionTool {
	return NewFunctionTool(
		"load_profile_from_db",
		"Load the user's saved profile into this session. Requires a logged-in user.",
		map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		func(tc *core.ToolContext, _ map[string]any) (core.Result, error) {
			state := tc.State()
			if state.Anonymous() {
				return core.DataResult(MsgNotLoggedInLoad), nil
			}

			profiles, err := tc.Profiles()
			if err != nil {
				return core.DataResult(fmt.Sprintf("Error loading profile: %v", err)), nil
			}

			userID := state.UserID()
			saved, err := profiles.LoadProfile(tc.Context(), userID)
			if err != nil {
				if errors.Is(err, core.ErrNoProfile) {
					return core.DataResult(MsgNoSavedProfile), nil
				}
				tc.LogWarn("db.load_profile.failed", "user_id", userID, "error", err.Error())
				return core.DataResult(fmt.Sprintf("Error loading profile: %v", err)), nil
			}

			state.ApplyPatch(core.ProfilePatch{
				Name:         saved.Name,
				Role:         saved.Role,
				Company:      saved.Company,
				Location:     saved.Location,
				DayRate:      saved.DayRate,
				Availability: saved.Availability,
				WorkStyle:    saved.WorkStyle,
			})
			state.AppendSkills(missingSkills(state.Skills(), saved.Skills))

			return core.StateResultWithValue(state, "Profile loaded from your saved record."), nil
		},
	)
}

// missingSkills returns the saved skills not already present in the session
// list, preserving their saved order.
func missingSkills(current, saved []string) []string {
	have := make(map[string]bool, len(current))
	for _, s := range current {
		have[s] = true
	}
	var missing []string
	for _, s := range saved {
		if !have[s] {
			missing = append(missing, s)
		}
	}
	return missing
}
