package domain

import "time"

// TransitionKind names the write operation that produced an event.
type TransitionKind string

const (
	TransitionScenario TransitionKind = "scenario"
	TransitionState    TransitionKind = "state"
	TransitionReset    TransitionKind = "reset"
)

// TransitionEvent is emitted after every successful mutation of the engine.
type TransitionEvent struct {
	Kind     TransitionKind `json:"kind"`
	Previous Snapshot       `json:"previous"`
	Current  Snapshot       `json:"current"`
	At       time.Time      `json:"at"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTransition func(TransitionEvent)
}

// ChainHooks merges several hook sets. Callbacks run in the given order.
func ChainHooks(hooks ...LifecycleHooks) LifecycleHooks {
	var fns []func(TransitionEvent)
	for _, h := range hooks {
		if h.OnTransition != nil {
			fns = append(fns, h.OnTransition)
		}
	}
	if len(fns) == 0 {
		return LifecycleHooks{}
	}
	return LifecycleHooks{
		OnTransition: func(e TransitionEvent) {
			for _, fn := range fns {
				fn(e)
			}
		},
	}
}
