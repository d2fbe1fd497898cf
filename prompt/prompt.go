// Package prompt assembles the system prompt for the conversational career
// assistant. The user-context paragraph is built from the persisted profile
// so the model can reference known facts instead of re-asking for them.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// Context sentences for users without usable profile data.
const (
	ContextNewUser    = "New user - no profile data yet. Ask them about their role and location."
	ContextNoData     = "User has an account but no profile data yet."
	ContextLoadFailed = "Unable to load user profile."
)

const systemTemplate = `You are Quest, a friendly career assistant for fractional and interim professionals.

USER CONTEXT:
{{.UserContext}}

GUIDELINES:
- Be conversational and warm - this is a voice conversation
- Keep responses concise (2-3 sentences max) since you're speaking
- If you know their role/location, reference it naturally
- Help them find fractional/interim job opportunities
- If they mention new info (name, role, location, skills), acknowledge it
- Ask clarifying questions when needed
- Be encouraging about their career journey

Remember: You're having a spoken conversation, so be natural and brief.`

// BuildSystemPrompt renders the assistant's system prompt around the given
// user-context paragraph.
func BuildSystemPrompt(userContext string) string {
	rendered, err := util.RenderTemplate(systemTemplate, map[string]any{
		"UserContext": userContext,
	})
	if err != nil {
		// The template is a compile-time constant; a render failure here is a
		// programming error, so fall back to the raw skeleton.
		return strings.ReplaceAll(systemTemplate, "{{.UserContext}}", userContext)
	}
	return rendered
}

// FormatUserContext flattens the known profile fields into the sentence list
// the system prompt embeds. Unset fields are skipped; a profile with nothing
// set yields ContextNoData.
func FormatUserContext(p core.Profile) string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", label, value))
		}
	}
	add("User's name", p.Name)
	add("Target role", p.Role)
	add("Preferred location", p.Location)
	add("Day rate", p.DayRate)
	add("Availability", p.Availability)
	add("Work style", p.WorkStyle)
	if len(p.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(p.Skills, ", "))
	}
	if len(parts) == 0 {
		return ContextNoData
	}
	return strings.Join(parts, ". ") + "."
}

// UserContext resolves the context paragraph for a session: the new-user
// sentence for anonymous sessions, the formatted saved profile for known
// users, and fallbacks for missing or unreadable records.
func UserContext(ctx context.Context, state *core.State, store core.ProfileStore) string {
	if state.Anonymous() {
		return ContextNewUser
	}
	if store == nil {
		return FormatUserContext(state.Profile())
	}
	saved, err := store.LoadProfile(ctx, state.UserID())
	if errors.Is(err, core.ErrNoProfile) {
		return ContextNoData
	}
	if err != nil {
		return ContextLoadFailed
	}
	return FormatUserContext(saved)
}
