package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/profile"
)

func TestBuildSystemPrompt(t *testing.T) {
	got := BuildSystemPrompt("User's name: Ada. Target role: CTO.")

	assert.Contains(t, got, "You are Quest, a friendly career assistant")
	assert.Contains(t, got, "USER CONTEXT:\nUser's name: Ada. Target role: CTO.")
	assert.Contains(t, got, "GUIDELINES:")
	assert.NotContains(t, got, "{{")
}

func TestFormatUserContext(t *testing.T) {
	p := core.Profile{
		Name:     "Ada",
		Role:     "Fractional CTO",
		Location: "London",
		Skills:   []string{"Go", "Leadership"},
	}

	got := FormatUserContext(p)
	assert.Equal(t,
		"User's name: Ada. Target role: Fractional CTO. Preferred location: London. Skills: Go, Leadership.",
		got)
}

func TestFormatUserContext_Empty(t *testing.T) {
	assert.Equal(t, ContextNoData, FormatUserContext(core.Profile{}))
}

func TestUserContext_Anonymous(t *testing.T) {
	state := core.NewState()

	got := UserContext(context.Background(), state, profile.NewInMemoryStore())
	assert.Equal(t, ContextNewUser, got)
}

func TestUserContext_KnownUser(t *testing.T) {
	ctx := context.Background()
	store := profile.NewInMemoryStore()
	assert.NoError(t, store.SaveProfile(ctx, "user-1", core.Profile{Name: "Ada", Role: "CTO"}))

	state := core.NewStateForUser("user-1")

	got := UserContext(ctx, state, store)
	assert.Equal(t, "User's name: Ada. Target role: CTO.", got)
}

func TestUserContext_NoRecord(t *testing.T) {
	state := core.NewStateForUser("user-1")

	got := UserContext(context.Background(), state, profile.NewInMemoryStore())
	assert.Equal(t, ContextNoData, got)
}
