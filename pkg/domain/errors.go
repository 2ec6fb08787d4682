package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidScenario is returned when a candidate scenario is not configured.
var ErrInvalidScenario = errors.New("invalid scenario")

// ErrInvalidState is returned when a candidate state is not configured.
var ErrInvalidState = errors.New("invalid state")

// ValidationError describes a rejected transition input.
// Its message enumerates the accepted values so it can be shown to operators as is.
type ValidationError struct {
	Kind  error
	Value string
	Valid []string
}

func (e *ValidationError) Error() string {
	label, plural := "state", "states"
	if errors.Is(e.Kind, ErrInvalidScenario) {
		label, plural = "scenario", "scenarios"
	}
	return fmt.Sprintf("Invalid %s: %s. Valid %s: %s", label, e.Value, plural, strings.Join(e.Valid, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
