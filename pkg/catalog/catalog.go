// Package catalog projects a (scenario, state) pair into the views shown by the
// dashboard. The scenario table is read-only after construction and safe for
// concurrent readers.
package catalog

import (
	"slices"
	"time"

	"github.com/aretw0/zerohour/pkg/config"
	"github.com/aretw0/zerohour/pkg/domain"
)

// Catalog serves view projections from a validated scenario table.
type Catalog struct {
	cfg   config.Config
	table Table
	now   func() time.Time
}

// Option configures the Catalog.
type Option func(*Catalog)

// WithTable replaces the built-in scenario table.
func WithTable(t Table) Option {
	return func(c *Catalog) {
		c.table = t
	}
}

// WithClock overrides the time source for signal dates and the countdown.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// New builds a Catalog and validates its table against cfg.
func New(cfg config.Config, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.table == nil {
		c.table = DefaultTable()
	}
	if err := c.table.Validate(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// viewFor looks up the exact state first and falls back to the default state view.
func (c *Catalog) viewFor(scenario domain.Scenario, state domain.State) (StateView, bool) {
	if !c.cfg.HasScenario(scenario) {
		return StateView{}, false
	}
	def, ok := c.table[scenario]
	if !ok {
		return StateView{}, false
	}
	if view, ok := def.States[state]; ok {
		return view, true
	}
	view, ok := def.States[c.cfg.DefaultState]
	return view, ok
}

// ExposureSummary returns the headline posture. ok is false for an unknown scenario.
func (c *Catalog) ExposureSummary(scenario domain.Scenario, state domain.State) (*domain.Summary, bool) {
	view, ok := c.viewFor(scenario, state)
	if !ok {
		return nil, false
	}
	summary := view.Summary
	summary.Domains = slices.Clone(view.Summary.Domains)
	return &summary, true
}

// ExposureDomains returns the per-domain status. ok is false for an unknown scenario.
func (c *Catalog) ExposureDomains(scenario domain.Scenario, state domain.State) (*domain.Domains, bool) {
	view, ok := c.viewFor(scenario, state)
	if !ok {
		return nil, false
	}
	domains := view.Domains
	return &domains, true
}

// ExposureTimeline places state between its neighbours in the sequence.
// A state outside the sequence is treated as preceding it, so Next is the first state.
func (c *Catalog) ExposureTimeline(scenario domain.Scenario, state domain.State) (*domain.Timeline, bool) {
	if !c.cfg.HasScenario(scenario) {
		return nil, false
	}

	states := c.cfg.States
	idx := c.cfg.StateIndex(state)
	tl := &domain.Timeline{Present: state}
	if idx > 0 {
		past := states[idx-1]
		tl.Past = &past
	}
	if idx < len(states)-1 {
		next := states[idx+1]
		tl.Next = &next
	}
	return tl, true
}

// Scenarios returns the configured scenarios in order.
func (c *Catalog) Scenarios() []domain.Scenario {
	return slices.Clone(c.cfg.Scenarios)
}

// States returns the configured escalation sequence.
func (c *Catalog) States() []domain.State {
	return slices.Clone(c.cfg.States)
}

// Definition returns the name and description of a scenario.
func (c *Catalog) Definition(scenario domain.Scenario) (name, description string, ok bool) {
	def, ok := c.table[scenario]
	if !ok || !c.cfg.HasScenario(scenario) {
		return "", "", false
	}
	return def.Name, def.Description, true
}

// TargetEntity returns the monitored organization.
func (c *Catalog) TargetEntity() domain.TargetEntity {
	return c.cfg.Target
}
