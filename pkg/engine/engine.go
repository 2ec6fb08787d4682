// Package engine owns the current (scenario, state) pair and is the only
// component allowed to change it.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/zerohour/internal/logging"
	"github.com/aretw0/zerohour/pkg/config"
	"github.com/aretw0/zerohour/pkg/domain"
)

// Engine tracks the active scenario and escalation state.
// Safe for concurrent use.
type Engine struct {
	cfg config.Config

	mu          sync.RWMutex
	scenario    domain.Scenario
	state       domain.State
	lastUpdated time.Time

	now    func() time.Time
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithClock overrides the time source used for lastUpdated.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLifecycleHooks registers callbacks invoked after each successful transition.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger configures a logger for transition events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine positioned at the configured defaults.
func New(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		now:    time.Now,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.scenario = cfg.DefaultScenario
	e.state = cfg.DefaultState
	e.lastUpdated = e.now().UTC()
	return e
}

// Current returns a snapshot of the active scenario and state.
func (e *Engine) Current() domain.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot()
}

// snapshot must be called with e.mu held.
func (e *Engine) snapshot() domain.Snapshot {
	return domain.Snapshot{
		Scenario:    e.scenario,
		State:       e.state,
		StateIndex:  e.cfg.StateIndex(e.state),
		TotalStates: len(e.cfg.States),
		Timestamp:   e.lastUpdated,
	}
}

// SetScenario activates scenario and restarts its escalation at the default state.
// An unknown scenario leaves the engine untouched and yields a failed result
// together with an error wrapping domain.ErrInvalidScenario.
func (e *Engine) SetScenario(scenario domain.Scenario) (domain.TransitionResult, error) {
	return e.Activate(scenario, "")
}

// Activate switches to scenario and state in a single transition. An empty state
// means the default state. The scenario is validated first, then the state, and
// nothing changes unless both are valid.
func (e *Engine) Activate(scenario domain.Scenario, state domain.State) (domain.TransitionResult, error) {
	if !e.cfg.HasScenario(scenario) {
		err := &domain.ValidationError{Kind: domain.ErrInvalidScenario, Value: string(scenario), Valid: e.cfg.ScenarioNames()}
		e.logger.Debug("scenario rejected", "scenario", scenario)
		return domain.Failed(err), err
	}
	if state == "" {
		state = e.cfg.DefaultState
	}
	if !e.cfg.HasState(state) {
		err := &domain.ValidationError{Kind: domain.ErrInvalidState, Value: string(state), Valid: e.cfg.StateNames()}
		e.logger.Debug("state rejected", "state", state)
		return domain.Failed(err), err
	}

	return e.apply(domain.TransitionScenario, func() {
		e.scenario = scenario
		e.state = state
	}), nil
}

// SetState moves the active scenario to state. Any configured state may be set
// from any other; there is no ordering constraint.
func (e *Engine) SetState(state domain.State) (domain.TransitionResult, error) {
	if !e.cfg.HasState(state) {
		err := &domain.ValidationError{Kind: domain.ErrInvalidState, Value: string(state), Valid: e.cfg.StateNames()}
		e.logger.Debug("state rejected", "state", state)
		return domain.Failed(err), err
	}

	return e.apply(domain.TransitionState, func() {
		e.state = state
	}), nil
}

// Reset restores the configured default scenario and state.
func (e *Engine) Reset() domain.TransitionResult {
	return e.apply(domain.TransitionReset, func() {
		e.scenario = e.cfg.DefaultScenario
		e.state = e.cfg.DefaultState
	})
}

// Progression lists every state in order, marking the active one.
func (e *Engine) Progression() []domain.ProgressionStep {
	e.mu.RLock()
	current := e.state
	e.mu.RUnlock()

	steps := make([]domain.ProgressionStep, len(e.cfg.States))
	for i, s := range e.cfg.States {
		steps[i] = domain.ProgressionStep{
			Name:      s,
			IsCurrent: s == current,
			Index:     i,
		}
	}
	return steps
}

// apply runs mutate under the write lock and notifies hooks once the lock is released.
func (e *Engine) apply(kind domain.TransitionKind, mutate func()) domain.TransitionResult {
	e.mu.Lock()
	previous := e.snapshot()
	mutate()
	e.lastUpdated = e.now().UTC()
	current := e.snapshot()
	e.mu.Unlock()

	e.logger.Info("transition applied",
		"kind", kind,
		"scenario", current.Scenario,
		"state", current.State,
		"previous_scenario", previous.Scenario,
		"previous_state", previous.State,
	)

	if e.hooks.OnTransition != nil {
		e.hooks.OnTransition(domain.TransitionEvent{
			Kind:     kind,
			Previous: previous,
			Current:  current,
			At:       current.Timestamp,
		})
	}

	return domain.TransitionResult{
		Success:  true,
		Previous: &previous,
		Current:  &current,
	}
}
