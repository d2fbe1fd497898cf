package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questhq/questagent/core"
)

func TestInMemoryStore_GetUnknown(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, core.ErrNoSession)
}

func TestInMemoryStore_CreateAndGet(t *testing.T) {
	store := NewInMemoryStore()

	created, err := store.Create("sess-1", "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", created.UserID())
	assert.Equal(t, core.StageOnboarding, created.Stage())

	got, err := store.Get("sess-1")
	assert.NoError(t, err)
	assert.Same(t, created, got, "store must hand out the live instance")
}

func TestInMemoryStore_CreateReplaces(t *testing.T) {
	store := NewInMemoryStore()

	first, err := store.Create("sess-1", "user-1")
	assert.NoError(t, err)
	first.AppendSkills([]string{"Go"})

	second, err := store.Create("sess-1", "user-1")
	assert.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Empty(t, second.Skills())
}

func TestInMemoryStore_GetOrCreateAnonymous(t *testing.T) {
	store := NewInMemoryStore()

	state, err := store.GetOrCreate("sess-1")
	assert.NoError(t, err)
	assert.True(t, state.Anonymous())

	again, err := store.GetOrCreate("sess-1")
	assert.NoError(t, err)
	assert.Same(t, state, again)
}

func TestInMemoryStore_EmptySessionID(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Create("", "user-1")
	assert.Error(t, err)

	_, err = store.GetOrCreate("")
	assert.Error(t, err)
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Create("sess-1", "user-1")
	assert.NoError(t, err)

	assert.NoError(t, store.Delete("sess-1"))
	_, err = store.Get("sess-1")
	assert.ErrorIs(t, err, core.ErrNoSession)

	assert.NoError(t, store.Delete("sess-1"), "deleting twice is a no-op")
}
