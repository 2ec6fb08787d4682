package zerohour

import (
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/zerohour/internal/logging"
	"github.com/aretw0/zerohour/pkg/catalog"
	"github.com/aretw0/zerohour/pkg/config"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/aretw0/zerohour/pkg/engine"
)

// Version is the release of the module.
//
//go:embed VERSION
var Version string

// Dashboard is the high-level entry point: it pairs the state engine with the
// scenario catalog and projects the current pair into views.
type Dashboard struct {
	cfg     config.Config
	engine  *engine.Engine
	catalog *catalog.Catalog
	logger  *slog.Logger
}

type options struct {
	hooks  []domain.LifecycleHooks
	logger *slog.Logger
	clock  func() time.Time
	table  catalog.Table
}

// Option defines a functional option for configuring the Dashboard.
type Option func(*options)

// WithLifecycleHooks registers observability hooks. May be given several times.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = append(o.hooks, hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source of both the engine and the catalog.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithTable replaces the built-in scenario table.
func WithTable(t catalog.Table) Option {
	return func(o *options) {
		o.table = t
	}
}

// New validates cfg and builds a Dashboard positioned at the configured defaults.
func New(cfg config.Config, opts ...Option) (*Dashboard, error) {
	o := &options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	engineOpts := []engine.Option{
		engine.WithLogger(o.logger),
		engine.WithLifecycleHooks(domain.ChainHooks(o.hooks...)),
	}
	catalogOpts := []catalog.Option{}
	if o.clock != nil {
		engineOpts = append(engineOpts, engine.WithClock(o.clock))
		catalogOpts = append(catalogOpts, catalog.WithClock(o.clock))
	}
	if o.table != nil {
		catalogOpts = append(catalogOpts, catalog.WithTable(o.table))
	}

	cat, err := catalog.New(cfg, catalogOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario table: %w", err)
	}

	return &Dashboard{
		cfg:     cfg,
		engine:  engine.New(cfg, engineOpts...),
		catalog: cat,
		logger:  o.logger,
	}, nil
}

// Config returns the configuration the Dashboard was built with.
func (d *Dashboard) Config() config.Config { return d.cfg }

// Catalog exposes the projections for arbitrary pairs.
func (d *Dashboard) Catalog() *catalog.Catalog { return d.catalog }

// Current returns the active scenario and state.
func (d *Dashboard) Current() domain.Snapshot { return d.engine.Current() }

// Progression lists the escalation sequence with the current marker.
func (d *Dashboard) Progression() []domain.ProgressionStep { return d.engine.Progression() }

// Scenarios returns every configured scenario.
func (d *Dashboard) Scenarios() []domain.Scenario { return d.catalog.Scenarios() }

// States returns the escalation sequence.
func (d *Dashboard) States() []domain.State { return d.catalog.States() }

// Summary projects the current pair into the risk summary.
func (d *Dashboard) Summary() (*domain.Summary, bool) {
	cur := d.engine.Current()
	return d.catalog.ExposureSummary(cur.Scenario, cur.State)
}

// Domains projects the current pair into per-domain statuses.
func (d *Dashboard) Domains() (*domain.Domains, bool) {
	cur := d.engine.Current()
	return d.catalog.ExposureDomains(cur.Scenario, cur.State)
}

// Timeline projects the current pair into past/present/next.
func (d *Dashboard) Timeline() (*domain.Timeline, bool) {
	cur := d.engine.Current()
	return d.catalog.ExposureTimeline(cur.Scenario, cur.State)
}

// Signals projects the current pair into annotated signal cards.
func (d *Dashboard) Signals() []domain.Signal {
	cur := d.engine.Current()
	return d.catalog.ObservedSignals(cur.Scenario, cur.State)
}

// Target returns the monitored organization.
func (d *Dashboard) Target() domain.TargetEntity { return d.catalog.TargetEntity() }

// Countdown projects the current pair into the disclosure clock.
func (d *Dashboard) Countdown() domain.Countdown {
	cur := d.engine.Current()
	return d.catalog.Countdown(cur.Scenario, cur.State)
}

// SetScenario activates scenario and, when state is not empty, moves to state
// as one transition. The scenario is validated before the state and nothing
// changes unless both are valid.
func (d *Dashboard) SetScenario(scenario domain.Scenario, state domain.State) (domain.TransitionResult, error) {
	res, err := d.engine.Activate(scenario, state)
	if err != nil {
		return res, err
	}

	target := state
	if target == "" {
		target = d.cfg.DefaultState
	}
	res.Message = fmt.Sprintf("Scenario set to '%s', state set to '%s'", scenario, target)
	return res, nil
}

// SetState moves the active scenario to state.
func (d *Dashboard) SetState(state domain.State) (domain.TransitionResult, error) {
	res, err := d.engine.SetState(state)
	if err != nil {
		return res, err
	}
	res.Message = fmt.Sprintf("State set to '%s'", state)
	return res, nil
}

// Reset restores the defaults.
func (d *Dashboard) Reset() domain.TransitionResult {
	res := d.engine.Reset()
	res.Message = "Reset to default state"
	return res
}
