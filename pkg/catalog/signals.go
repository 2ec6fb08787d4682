package catalog

import (
	"fmt"
	"time"

	"github.com/aretw0/zerohour/pkg/domain"
)

// trajectories holds one row of tags per state index. Row i tags template i.
var trajectories = [][]domain.Trajectory{
	{early, early, early, early, early, early},
	{detected, detected, early, early, early, early},
	{alignment, alignment, detected, detected, early, early},
	{exposure, exposure, alignment, alignment, detected, detected},
}

const (
	early     = domain.TrajectoryEarly
	detected  = domain.TrajectoryDetected
	alignment = domain.TrajectoryAlignment
	exposure  = domain.TrajectoryExposure
)

// highlightFrom is the first state index at which the last signal is highlighted.
const highlightFrom = 2

// ObservedSignals annotates the scenario's signal templates for state.
// An unknown scenario yields an empty slice.
func (c *Catalog) ObservedSignals(scenario domain.Scenario, state domain.State) []domain.Signal {
	def, ok := c.table[scenario]
	if !ok || !c.cfg.HasScenario(scenario) {
		return []domain.Signal{}
	}

	idx := c.cfg.StateIndex(state)
	row := trajectories[0]
	if idx >= 0 && idx < len(trajectories) {
		row = trajectories[idx]
	}

	today := c.now()
	signals := make([]domain.Signal, len(def.Signals))
	for i, tpl := range def.Signals {
		tag := early
		if i < len(row) {
			tag = row[i]
		}
		signals[i] = domain.Signal{
			Date:        formatSignalDate(today.AddDate(0, 0, -daysAgo(i))),
			Category:    tpl.Category,
			Title:       tpl.Title,
			Description: tpl.Description,
			Trajectory:  tag,
			Highlighted: idx >= highlightFrom && i == len(def.Signals)-1,
		}
	}
	return signals
}

// daysAgo spreads the cards over the last three days, two per day.
func daysAgo(i int) int {
	switch {
	case i < 2:
		return 2
	case i < 4:
		return 1
	}
	return 0
}

// formatSignalDate renders D/MM/YYYY.
func formatSignalDate(t time.Time) string {
	return fmt.Sprintf("%d/%02d/%d", t.Day(), int(t.Month()), t.Year())
}
