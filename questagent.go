// Package questagent provides a high-level façade over the tool dispatch
// runner and service abstractions (sessions, memory, graph, profiles &
// logging) enabling rapid construction of the Quest conversational career
// agent. Most applications interact with this package by:
//  1. Creating a Quest via New() (optionally overriding default in-memory services)
//  2. Handing the tool declarations to their LLM provider of choice
//  3. Dispatching the model's tool calls and observing the emitted events
//
// The façade delegates orchestration to runner.Runner while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply the Zep gateways, a
// Postgres profile store and a structured logger.
package questagent

import (
	"context"

	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/logging"
	"github.com/questhq/questagent/memory"
	"github.com/questhq/questagent/model"
	"github.com/questhq/questagent/profile"
	"github.com/questhq/questagent/prompt"
	"github.com/questhq/questagent/runner"
	"github.com/questhq/questagent/session"
	"github.com/questhq/questagent/tool"
)

// Options configures the Quest instance.
type Options struct {
	// Registry supplies the dispatchable tool set. Defaults to the full
	// built-in set.
	Registry *tool.Registry

	// EventBufferSize sets the channel buffer size for observer
	// subscriptions. A subscriber that stops draining loses events rather
	// than stalling dispatch.
	EventBufferSize int

	// Stores and gateways (default to in-memory implementations if not
	// provided).
	SessionStore core.SessionStore
	Memory       core.MemoryGateway
	Graph        core.GraphGateway
	Profiles     core.ProfileStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Quest is the high-level façade aggregating the underlying runner and
// services.
type Quest struct {
	opts   Options
	runner *runner.Runner
}

// New creates a new Quest instance with optional overrides. Any unset service
// is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Quest {
	opts := Options{
		Registry:        tool.NewDefaultRegistry(),
		EventBufferSize: 100,
		SessionStore:    session.NewInMemoryStore(),
		Memory:          memory.NewInMemoryStore(),
		Graph:           memory.NewInMemoryGraph(),
		Profiles:        profile.NewInMemoryStore(),
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	r := runner.New(func(o *runner.Options) {
		o.Registry = opts.Registry
		o.SessionStore = opts.SessionStore
		o.Gateways = core.Gateways{
			Memory:   opts.Memory,
			Graph:    opts.Graph,
			Profiles: opts.Profiles,
		}
		o.EventBufferSize = opts.EventBufferSize
		o.Logger = opts.Logger
	})

	return &Quest{opts: opts, runner: r}
}

// StartSession constructs a fresh session state bound to userID, replacing
// any existing state for the session. Pass core.AnonymousUserID (or "") for
// an unauthenticated session.
func (q *Quest) StartSession(sessionID, userID string) (*core.State, error) {
	return q.opts.SessionStore.Create(sessionID, userID)
}

// EndSession discards the session's state and closes its subscriptions.
func (q *Quest) EndSession(sessionID string) error {
	return q.runner.EndSession(sessionID)
}

// Dispatch invokes the named tool against the session's live state and
// returns the tagged result. The session is created anonymously on first use.
func (q *Quest) Dispatch(ctx context.Context, sessionID, name string, args map[string]any) (core.Result, error) {
	return q.runner.Dispatch(ctx, sessionID, name, args)
}

// Subscribe registers an observer for the session's events; snapshot events
// carry the full state after each mutating tool call. The returned cancel
// function releases the subscription and closes the channel.
func (q *Quest) Subscribe(sessionID string) (<-chan core.Event, func()) {
	return q.runner.Subscribe(sessionID)
}

// Declarations returns the neutral tool definitions for the configured
// registry, ready for conversion into a provider's tool-param type.
func (q *Quest) Declarations() []model.ToolDefinition {
	return model.Declarations(q.opts.Registry)
}

// SystemPrompt assembles the assistant's system prompt for the session,
// embedding the user context resolved from the profile store.
func (q *Quest) SystemPrompt(ctx context.Context, sessionID string) (string, error) {
	state, err := q.opts.SessionStore.GetOrCreate(sessionID)
	if err != nil {
		return "", err
	}
	return prompt.BuildSystemPrompt(prompt.UserContext(ctx, state, q.opts.Profiles)), nil
}
