// Package zep adapts the hosted Zep memory and knowledge-graph service to
// the core gateway interfaces. Each method issues exactly one API call with
// no retries or batching; cancellation and timeouts are inherited from the
// caller's context and the SDK's own semantics.
package zep

import (
	"context"
	"encoding/json"
	"fmt"

	zep "github.com/getzep/zep-go/v2"
	zepclient "github.com/getzep/zep-go/v2/client"
	"github.com/getzep/zep-go/v2/option"

	"github.com/questhq/questagent/core"
)

// NewClient creates a Zep cloud client authenticated with the given API key.
// Pass the result to both NewMemoryStore and NewGraphStore; the client is
// safe for concurrent use.
func NewClient(apiKey string) *zepclient.Client {
	return zepclient.NewClient(option.WithAPIKey(apiKey))
}

// MemoryStore implements core.MemoryGateway over Zep session memory.
type MemoryStore struct {
	client *zepclient.Client
}

// NewMemoryStore creates a MemoryStore backed by the given client.
func NewMemoryStore(client *zepclient.Client) *MemoryStore {
	return &MemoryStore{client: client}
}

// AddMessage stores one conversation message under the session.
func (s *MemoryStore) AddMessage(ctx context.Context, sessionID, role, content string) error {
	roleType, err := roleTypeFor(role)
	if err != nil {
		return err
	}
	_, err = s.client.Memory.Add(ctx, sessionID, &zep.AddMemoryRequest{
		Messages: []*zep.Message{{RoleType: roleType, Content: content}},
	})
	return err
}

// Context returns Zep's synthesized memory context for the session, or ""
// when the service has none yet.
func (s *MemoryStore) Context(ctx context.Context, sessionID string) (string, error) {
	mem, err := s.client.Memory.Get(ctx, sessionID, nil)
	if err != nil {
		return "", err
	}
	if mem == nil || mem.Context == nil {
		return "", nil
	}
	return *mem.Context, nil
}

// Search returns up to limit messages relevant to the query, ranked by the
// service.
func (s *MemoryStore) Search(ctx context.Context, sessionID, query string, limit int) ([]core.MemoryHit, error) {
	resp, err := s.client.Memory.SearchSessions(ctx, &zep.SessionSearchQuery{
		SessionIDs: []string{sessionID},
		Text:       query,
		Limit:      zep.Int(limit),
	})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return []core.MemoryHit{}, nil
	}

	hits := make([]core.MemoryHit, 0, len(resp.Results))
	for _, result := range resp.Results {
		if result == nil || result.Message == nil {
			continue
		}
		hit := core.MemoryHit{
			Role:    string(result.Message.RoleType),
			Content: result.Message.Content,
		}
		if result.Score != nil {
			hit.Score = *result.Score
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// GraphStore implements core.GraphGateway over the Zep knowledge graph.
type GraphStore struct {
	client *zepclient.Client
}

// NewGraphStore creates a GraphStore backed by the given client.
func NewGraphStore(client *zepclient.Client) *GraphStore {
	return &GraphStore{client: client}
}

// AddFact writes one structured fact to the user's graph as a JSON payload.
func (s *GraphStore) AddFact(ctx context.Context, userID string, fact core.Fact) error {
	payload, err := json.Marshal(fact)
	if err != nil {
		return err
	}
	_, err = s.client.Graph.Add(ctx, &zep.AddDataRequest{
		UserID: zep.String(userID),
		Type:   zep.GraphDataTypeJSON,
		Data:   string(payload),
	})
	return err
}

// Search returns up to limit edge facts relevant to the query.
func (s *GraphStore) Search(ctx context.Context, userID, query string, limit int) ([]string, error) {
	results, err := s.client.Graph.Search(ctx, &zep.GraphSearchQuery{
		UserID: zep.String(userID),
		Query:  query,
		Limit:  zep.Int(limit),
	})
	if err != nil {
		return nil, err
	}
	if results == nil {
		return nil, nil
	}

	facts := make([]string, 0, len(results.Edges))
	for _, edge := range results.Edges {
		if edge == nil {
			continue
		}
		facts = append(facts, edge.Fact)
	}
	return facts, nil
}

// UserFacts returns everything the graph knows about the user.
func (s *GraphStore) UserFacts(ctx context.Context, userID string) ([]string, error) {
	resp, err := s.client.User.GetFacts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}

	facts := make([]string, 0, len(resp.Facts))
	for _, fact := range resp.Facts {
		if fact == nil {
			continue
		}
		facts = append(facts, fact.Fact)
	}
	return facts, nil
}

// roleTypeFor maps the tool-level role strings onto Zep role types.
func roleTypeFor(role string) (zep.RoleType, error) {
	switch role {
	case "user", "":
		return zep.RoleTypeUserRole, nil
	case "assistant":
		return zep.RoleTypeAssistantRole, nil
	case "system":
		return zep.RoleTypeSystemRole, nil
	case "tool":
		return zep.RoleTypeToolRole, nil
	default:
		return "", fmt.Errorf("unsupported message role %q", role)
	}
}
