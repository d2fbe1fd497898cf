package tool

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/questhq/questagent/core"
)

// mockMemoryGateway is a testify mock of core.MemoryGateway.
type mockMemoryGateway struct {
	mock.Mock
}

func (m *mockMemoryGateway) AddMessage(ctx context.Context, sessionID, role, content string) error {
	args := m.Called(ctx, sessionID, role, content)
	return args.Error(0)
}

func (m *mockMemoryGateway) Context(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *mockMemoryGateway) Search(ctx context.Context, sessionID, query string, limit int) ([]core.MemoryHit, error) {
	args := m.Called(ctx, sessionID, query, limit)
	hits, _ := args.Get(0).([]core.MemoryHit)
	return hits, args.Error(1)
}

// mockGraphGateway is a testify mock of core.GraphGateway.
type mockGraphGateway struct {
	mock.Mock
}

func (m *mockGraphGateway) AddFact(ctx context.Context, userID string, fact core.Fact) error {
	args := m.Called(ctx, userID, fact)
	return args.Error(0)
}

func (m *mockGraphGateway) Search(ctx context.Context, userID, query string, limit int) ([]string, error) {
	args := m.Called(ctx, userID, query, limit)
	facts, _ := args.Get(0).([]string)
	return facts, args.Error(1)
}

func (m *mockGraphGateway) UserFacts(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	facts, _ := args.Get(0).([]string)
	return facts, args.Error(1)
}

// mockProfileStore is a testify mock of core.ProfileStore.
type mockProfileStore struct {
	mock.Mock
}

func (m *mockProfileStore) SaveProfile(ctx context.Context, userID string, p core.Profile) error {
	args := m.Called(ctx, userID, p)
	return args.Error(0)
}

func (m *mockProfileStore) AddSkill(ctx context.Context, userID, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func (m *mockProfileStore) AddNeed(ctx context.Context, userID, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func (m *mockProfileStore) LoadProfile(ctx context.Context, userID string) (core.Profile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(core.Profile)
	return p, args.Error(1)
}

// newTestContext builds a ToolContext around a fresh or given state.
func newTestContext(state *core.State, gateways core.Gateways) *core.ToolContext {
	if state == nil {
		state = core.NewState()
	}
	return core.NewToolContext(context.Background(), "sess-test", state, gateways, nil)
}
