package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/logging"
	"github.com/questhq/questagent/session"
	"github.com/questhq/questagent/tool"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Registry supplies the dispatchable tool set.
	Registry *tool.Registry
	// SessionStore scopes live session state.
	SessionStore core.SessionStore
	// Gateways are the external collaborators handed to every tool call.
	Gateways core.Gateways
	// EventBufferSize sets channel buffering for observer subscriptions.
	EventBufferSize int
	// Logging services.
	Logger logging.Logger
}

// Runner coordinates tool dispatch: resolves the session's live state, builds
// the per-call tool context, invokes the registry and forwards the outcome to
// subscribed observers. Public methods are safe for concurrent use; dispatch
// for any single session is serialized.
type Runner struct {
	registry        *tool.Registry
	sessions        core.SessionStore
	gateways        core.Gateways
	eventBufferSize int
	logger          logging.Logger

	sessionLocks sync.Map // sessionID -> *sync.Mutex

	mu          sync.RWMutex
	subscribers map[string]map[string]chan core.Event
}

// New constructs a Runner with optional overrides.
func New(optFns ...func(o *Options)) *Runner {
	opts := Options{
		Registry:        tool.NewDefaultRegistry(),
		SessionStore:    session.NewInMemoryStore(),
		EventBufferSize: 100,
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		registry:        opts.Registry,
		sessions:        opts.SessionStore,
		gateways:        opts.Gateways,
		eventBufferSize: opts.EventBufferSize,
		logger:          opts.Logger,
		subscribers:     make(map[string]map[string]chan core.Event),
	}
}

// Registry returns the dispatchable tool set.
func (r *Runner) Registry() *tool.Registry { return r.registry }

// Sessions returns the session store.
func (r *Runner) Sessions() core.SessionStore { return r.sessions }

// Dispatch invokes the named tool against the session's live state. The
// session is created anonymously on first use. On a mutating result the full
// state snapshot is forwarded to the session's observers before Dispatch
// returns; read-only results are forwarded as tool result events.
func (r *Runner) Dispatch(ctx context.Context, sessionID, name string, args map[string]any) (core.Result, error) {
	state, err := r.sessions.GetOrCreate(sessionID)
	if err != nil {
		return core.Result{}, fmt.Errorf("failed to resolve session: %w", err)
	}

	lock := r.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	toolCtx := core.NewToolContext(ctx, sessionID, state, r.gateways, r.logger)

	result, err := r.registry.Dispatch(toolCtx, name, args)
	if err != nil {
		return core.Result{}, err
	}

	if result.StateChanged() && result.Snapshot != nil {
		r.emit(sessionID, core.NewStateSnapshotEvent(sessionID, name, *result.Snapshot))
	} else {
		r.emit(sessionID, core.NewToolResultEvent(sessionID, name, result.Value))
	}

	return result, nil
}

// Subscribe registers an observer for the session's events. The returned
// cancel function must be called to release the subscription; the channel is
// closed on cancel.
func (r *Runner) Subscribe(sessionID string) (<-chan core.Event, func()) {
	ch := make(chan core.Event, r.eventBufferSize)
	subID := core.NewID()

	r.mu.Lock()
	subs, ok := r.subscribers[sessionID]
	if !ok {
		subs = make(map[string]chan core.Event)
		r.subscribers[sessionID] = subs
	}
	subs[subID] = ch
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		subs, ok := r.subscribers[sessionID]
		if !ok {
			return
		}
		if ch, ok := subs[subID]; ok {
			delete(subs, subID)
			close(ch)
		}
		if len(subs) == 0 {
			delete(r.subscribers, sessionID)
		}
	}

	return ch, cancel
}

// EndSession discards the session's state and drops its subscriptions.
func (r *Runner) EndSession(sessionID string) error {
	r.mu.Lock()
	for subID, ch := range r.subscribers[sessionID] {
		delete(r.subscribers[sessionID], subID)
		close(ch)
	}
	delete(r.subscribers, sessionID)
	r.mu.Unlock()

	r.sessionLocks.Delete(sessionID)

	return r.sessions.Delete(sessionID)
}

func (r *Runner) sessionLock(sessionID string) *sync.Mutex {
	lock, _ := r.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// emit forwards the event to every observer of the session. A subscriber
// that stopped draining its channel loses events rather than stalling
// dispatch.
func (r *Runner) emit(sessionID string, ev core.Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for subID, ch := range r.subscribers[sessionID] {
		select {
		case ch <- ev:
		default:
			r.logger.Warn("runner dropped event subscriber=%s session_id=%s event_id=%s", subID, sessionID, ev.ID)
		}
	}
}
