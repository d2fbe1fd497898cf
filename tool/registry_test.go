package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questhq/questagent/core"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	assert.NoError(t, r.Register(NewGetProfileTool()))
	assert.Error(t, r.Register(NewGetProfileTool()), "duplicate names are rejected")

	tl, ok := r.Get("get_profile")
	assert.True(t, ok)
	assert.Equal(t, "get_profile", tl.Name())

	_, ok = r.Get("nope")
	assert.False(t, ok)
}

func TestRegistry_DefaultToolSet(t *testing.T) {
	r := NewDefaultRegistry()

	expected := []string{
		"add_graph_fact",
		"add_need_to_db",
		"add_skill_to_db",
		"add_skills",
		"check_consent",
		"get_memory",
		"get_profile",
		"get_user_context",
		"load_profile_from_db",
		"save_profile_to_db",
		"save_to_memory",
		"search_graph",
		"search_jobs",
		"search_memory",
		"set_consent",
		"set_skills",
		"set_stage",
		"update_profile",
	}
	assert.Equal(t, expected, r.Names())
	assert.Len(t, r.Tools(), len(expected))
}

func TestRegistry_DispatchUnknownTool(t *testing.T) {
	r := NewDefaultRegistry()
	tc := newTestContext(nil, core.Gateways{})

	_, err := r.Dispatch(tc, "fly_to_mars", nil)

	var toolErr *ToolError
	assert.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "UNKNOWN_TOOL", toolErr.Code)
}

func TestRegistry_DispatchResultKinds(t *testing.T) {
	r := NewDefaultRegistry()
	tc := newTestContext(nil, core.Gateways{})

	// Read-only tool -> Data.
	res, err := r.Dispatch(tc, "get_profile", nil)
	assert.NoError(t, err)
	assert.Equal(t, core.KindData, res.Kind)
	assert.Nil(t, res.Snapshot)

	// Mutating tool -> StateChanged with snapshot.
	res, err = r.Dispatch(tc, "add_skills", map[string]any{"skills": []any{"Go"}})
	assert.NoError(t, err)
	assert.True(t, res.StateChanged())
	assert.Equal(t, tc.State().Snapshot(), *res.Snapshot)
}

func TestRegistry_DeclarationsCarrySchemas(t *testing.T) {
	for _, tl := range All() {
		assert.NotEmpty(t, tl.Name())
		assert.NotEmpty(t, tl.Description())
		params := tl.Parameters()
		assert.Equal(t, "object", params["type"], tl.Name())
		_, ok := params["properties"]
		assert.True(t, ok, tl.Name())
	}
}
