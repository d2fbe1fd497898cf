package tool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/questhq/questagent/core"
)

func TestAddGraphFact_KeyedByUser(t *testing.T) {
	graph := &mockGraphGateway{}
	graph.On("AddFact", mock.Anything, "user-1", core.Fact{Kind: "skill", Statement: "ships Go services"}).
		Return(nil)
	tc := newTestContext(core.NewStateForUser("user-1"), core.Gateways{Graph: graph})

	res, err := NewAddGraphFactTool().Call(tc, map[string]any{"kind": "skill", "statement": "ships Go services"})

	assert.NoError(t, err)
	assert.Equal(t, "Recorded: ships Go services", res.Value)
	graph.AssertExpectations(t)
}

func TestAddGraphFact_FailureBecomesString(t *testing.T) {
	graph := &mockGraphGateway{}
	graph.On("AddFact", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))
	tc := newTestContext(nil, core.Gateways{Graph: graph})

	res, err := NewAddGraphFactTool().Call(tc, map[string]any{"kind": "goal", "statement": "x"})

	assert.NoError(t, err)
	assert.Equal(t, "Error adding fact: quota exceeded", res.Value)
}

func TestSearchGraph_NoHitsSentinel(t *testing.T) {
	graph := &mockGraphGateway{}
	graph.On("Search", mock.Anything, core.AnonymousUserID, "azure", 5).Return([]string{}, nil)
	tc := newTestContext(nil, core.Gateways{Graph: graph})

	res, err := NewSearchGraphTool().Call(tc, map[string]any{"query": "azure"})

	assert.NoError(t, err)
	assert.Equal(t, MsgNoRelevantInfo, res.Value)
}

func TestSearchGraph_JoinsFacts(t *testing.T) {
	graph := &mockGraphGateway{}
	graph.On("Search", mock.Anything, "user-1", "cloud", 5).
		Return([]string{"knows AWS", "prefers serverless"}, nil)
	tc := newTestContext(core.NewStateForUser("user-1"), core.Gateways{Graph: graph})

	res, err := NewSearchGraphTool().Call(tc, map[string]any{"query": "cloud"})

	assert.NoError(t, err)
	assert.Equal(t, "knows AWS\nprefers serverless", res.Value)
}

func TestGetUserContext_EmptySentinel(t *testing.T) {
	graph := &mockGraphGateway{}
	graph.On("UserFacts", mock.Anything, "user-1").Return([]string{}, nil)
	tc := newTestContext(core.NewStateForUser("user-1"), core.Gateways{Graph: graph})

	res, err := NewGetUserContextTool().Call(tc, map[string]any{})

	assert.NoError(t, err)
	assert.Equal(t, MsgNoUserContext, res.Value)
}

func TestGetUserContext_FailureBecomesString(t *testing.T) {
	graph := &mockGraphGateway{}
	graph.On("UserFacts", mock.Anything, mock.Anything).Return(nil, errors.New("unauthorized"))
	tc := newTestContext(nil, core.Gateways{Graph: graph})

	res, err := NewGetUserContextTool().Call(tc, map[string]any{})

	assert.NoError(t, err)
	assert.Contains(t, res.Value, "No user context found")
}
