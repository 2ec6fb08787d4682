package catalog

import (
	"math"
	"time"

	"github.com/aretw0/zerohour/pkg/domain"
)

// Countdown computes the disclosure clock from the current instant.
// The result changes on every call; scenario does not affect it.
func (c *Catalog) Countdown(scenario domain.Scenario, state domain.State) domain.Countdown {
	now := c.now().UTC()
	defaults := c.cfg.Countdown

	at := func(minutes int) string {
		return now.Add(time.Duration(minutes) * time.Minute).Format("15:04")
	}

	return domain.Countdown{
		Detected:         at(defaults.Detected),
		WindowCloses:     at(defaults.WindowCloses),
		ExposureLost:     at(defaults.ExposureLost),
		MinutesRemaining: minutesRemaining(defaults.WindowCloses, state),
		Date:             now.Format("2006.01.02") + " UTC",
	}
}

// minutesRemaining shrinks the window as the escalation progresses.
func minutesRemaining(window int, state domain.State) int {
	switch state {
	case domain.StateEscalationImminent:
		return max(5, floorDiv(window, 4))
	case domain.StateExposureWindowOpen:
		return floorDiv(window, 2)
	case domain.StateSignalConvergence:
		return int(math.Floor(float64(window) * 0.75))
	}
	return window
}

func floorDiv(a, b int) int {
	return int(math.Floor(float64(a) / float64(b)))
}
