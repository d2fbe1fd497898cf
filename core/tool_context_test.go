package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolContext_Accessors(t *testing.T) {
	state := NewState()
	tc := NewToolContext(context.Background(), "sess-1", state, Gateways{}, nil)

	assert.NoError(t, tc.Validate())
	assert.Equal(t, "sess-1", tc.SessionID())
	assert.Same(t, state, tc.State())
	assert.NotEmpty(t, tc.FunctionCallID())
	assert.NotNil(t, tc.Logger()) // nil logger is substituted with NoOp
	assert.NotNil(t, tc.Context())
}

func TestToolContext_UnconfiguredGateways(t *testing.T) {
	tc := NewToolContext(context.Background(), "sess-1", NewState(), Gateways{}, nil)

	err := tc.SaveMemory("user", "hello")
	assert.ErrorContains(t, err, "memory gateway not configured")

	_, err = tc.MemoryContext()
	assert.Error(t, err)

	_, err = tc.SearchMemory("query", 5)
	assert.Error(t, err)

	err = tc.AddFact("user-1", Fact{Kind: "skill", Statement: "knows Go"})
	assert.ErrorContains(t, err, "graph gateway not configured")

	_, err = tc.SearchGraph("user-1", "query", 5)
	assert.Error(t, err)

	_, err = tc.UserFacts("user-1")
	assert.Error(t, err)

	_, err = tc.Profiles()
	assert.ErrorContains(t, err, "profile store not configured")
}

func TestToolContext_Validate(t *testing.T) {
	tc := NewToolContext(context.Background(), "", NewState(), Gateways{}, nil)
	assert.Error(t, tc.Validate())

	tc = NewToolContext(context.Background(), "sess-1", nil, Gateways{}, nil)
	assert.Error(t, tc.Validate())
}
