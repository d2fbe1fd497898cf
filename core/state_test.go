package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Defaults(t *testing.T) {
	s := NewState()

	assert.Equal(t, AnonymousUserID, s.UserID())
	assert.True(t, s.Anonymous())
	assert.Equal(t, StageOnboarding, s.Stage())
	assert.Empty(t, s.Skills())
	assert.Equal(t, 0, s.JobsShown())
}

func TestState_AppendSkillsGrowsMonotonically(t *testing.T) {
	s := NewState()

	s.AppendSkills([]string{"Go", "SQL"})
	s.AppendSkills([]string{"Go"}) // duplicates are kept
	s.AppendSkills(nil)

	assert.Equal(t, []string{"Go", "SQL", "Go"}, s.Skills())
}

func TestState_ReplaceSkillsDiscardsPrior(t *testing.T) {
	s := NewState()
	s.AppendSkills([]string{"Go", "SQL", "Kubernetes"})

	s.ReplaceSkills([]string{"Rust"})

	assert.Equal(t, []string{"Rust"}, s.Skills())
}

func TestState_ApplyPatchMerges(t *testing.T) {
	s := NewState()

	s.ApplyPatch(ProfilePatch{Role: "CTO"})
	s.ApplyPatch(ProfilePatch{Location: "Remote"})

	p := s.Profile()
	assert.Equal(t, "CTO", p.Role)
	assert.Equal(t, "Remote", p.Location)

	// All-absent patch is a true no-op.
	s.ApplyPatch(ProfilePatch{})
	assert.Equal(t, p, s.Profile())
}

func TestState_ApplyPatchEmptyFieldLeavesValue(t *testing.T) {
	s := NewState()
	s.ApplyPatch(ProfilePatch{Name: "Ada", Role: "CTO"})

	s.ApplyPatch(ProfilePatch{Role: "Advisor", Name: ""})

	p := s.Profile()
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "Advisor", p.Role)
}

func TestState_Consents(t *testing.T) {
	s := NewState()

	assert.False(t, s.Consent("memory_storage"))

	s.SetConsent("memory_storage", true)
	assert.True(t, s.Consent("memory_storage"))

	// Last write wins, no merge.
	s.SetConsent("memory_storage", false)
	assert.False(t, s.Consent("memory_storage"))

	s.SetConsent("job_alerts", true)
	assert.Len(t, s.Consents(), 2)
}

func TestState_SetStage(t *testing.T) {
	s := NewState()

	assert.NoError(t, s.SetStage(StageEnrichment))
	assert.Equal(t, StageEnrichment, s.Stage())

	err := s.SetStage(Stage("retirement"))
	assert.ErrorIs(t, err, ErrUnknownStage)
	assert.Equal(t, StageEnrichment, s.Stage())
}

func TestState_SnapshotIsDetached(t *testing.T) {
	s := NewStateForUser("user-1")
	s.AppendSkills([]string{"Go"})
	s.SetConsent("memory_storage", true)
	s.SetJobsShown(3)

	snap := s.Snapshot()
	assert.Equal(t, "user-1", snap.UserID)
	assert.Equal(t, []string{"Go"}, snap.Profile.Skills)
	assert.True(t, snap.Consents["memory_storage"])
	assert.Equal(t, 3, snap.JobsShown)

	// Mutating the snapshot must not leak into the live state.
	snap.Profile.Skills[0] = "Rust"
	snap.Consents["memory_storage"] = false
	assert.Equal(t, []string{"Go"}, s.Skills())
	assert.True(t, s.Consent("memory_storage"))

	// And later state mutations must not appear in the earlier snapshot.
	s.AppendSkills([]string{"SQL"})
	assert.Len(t, snap.Profile.Skills, 1)
}

func TestStage_Valid(t *testing.T) {
	for _, st := range Stages() {
		assert.True(t, st.Valid())
	}
	assert.False(t, Stage("").Valid())
	assert.False(t, Stage("Onboarding").Valid())
}
