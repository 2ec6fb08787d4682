package domain

import "time"

// Snapshot is the current (scenario, state) pair as reported to callers.
type Snapshot struct {
	Scenario    Scenario  `json:"scenario"`
	State       State     `json:"state"`
	StateIndex  int       `json:"stateIndex"`
	TotalStates int       `json:"totalStates"`
	Timestamp   time.Time `json:"timestamp"`
}

// ProgressionStep is one entry of the escalation sequence with a current marker.
type ProgressionStep struct {
	Name      State `json:"name"`
	IsCurrent bool  `json:"isCurrent"`
	Index     int   `json:"index"`
}

// TransitionResult is the structured outcome of a write operation.
// Callers must check Success before trusting Previous and Current.
type TransitionResult struct {
	Success  bool      `json:"success"`
	Error    string    `json:"error,omitempty"`
	Message  string    `json:"message,omitempty"`
	Previous *Snapshot `json:"previous,omitempty"`
	Current  *Snapshot `json:"current,omitempty"`
}

// Failed builds an unsuccessful result from a validation error.
func Failed(err error) TransitionResult {
	return TransitionResult{Success: false, Error: err.Error()}
}
