package zerohour_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aretw0/zerohour"
	"github.com/aretw0/zerohour/pkg/catalog"
	"github.com/aretw0/zerohour/pkg/config"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboard(t *testing.T, opts ...zerohour.Option) *zerohour.Dashboard {
	t.Helper()
	now := time.Date(2026, 3, 3, 10, 30, 0, 0, time.UTC)
	opts = append([]zerohour.Option{zerohour.WithClock(func() time.Time { return now })}, opts...)
	dash, err := zerohour.New(config.Default(), opts...)
	require.NoError(t, err)
	return dash
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(zerohour.Version))
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultScenario = "nope"

	_, err := zerohour.New(cfg)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestNew_InvalidTable(t *testing.T) {
	_, err := zerohour.New(config.Default(), zerohour.WithTable(catalog.Table{}))
	assert.ErrorContains(t, err, "invalid scenario table")
}

func TestDashboard_ProjectsCurrentPair(t *testing.T) {
	dash := newDashboard(t)

	s, ok := dash.Summary()
	require.True(t, ok)
	assert.Equal(t, domain.RiskLow, s.RiskLevel)

	_, err := dash.SetScenario(domain.ScenarioCyberBreach, domain.StateEscalationImminent)
	require.NoError(t, err)

	s, ok = dash.Summary()
	require.True(t, ok)
	assert.Equal(t, domain.RiskHigh, s.RiskLevel)

	tl, ok := dash.Timeline()
	require.True(t, ok)
	assert.Nil(t, tl.Next)

	signals := dash.Signals()
	require.Len(t, signals, 6)
	assert.True(t, signals[5].Highlighted)

	assert.Equal(t, 24, dash.Countdown().MinutesRemaining)

	d, ok := dash.Domains()
	require.True(t, ok)
	assert.Equal(t, domain.StatusActive, d.ThirdParty.Status)
}

func TestDashboard_SetScenarioWithState(t *testing.T) {
	dash := newDashboard(t)

	res, err := dash.SetScenario(domain.ScenarioNarrative, domain.StateSignalConvergence)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Scenario set to 'weaponized_public_narrative', state set to 'signal_convergence'", res.Message)
	assert.Equal(t, domain.ScenarioCyberBreach, res.Previous.Scenario)
	assert.Equal(t, domain.StateSignalConvergence, res.Current.State)
	assert.Equal(t, *res.Current, dash.Current())
}

func TestDashboard_SetScenarioDefaultState(t *testing.T) {
	dash := newDashboard(t)
	_, err := dash.SetState(domain.StateExposureWindowOpen)
	require.NoError(t, err)

	res, err := dash.SetScenario(domain.ScenarioLegal, "")
	require.NoError(t, err)
	assert.Equal(t, "Scenario set to 'legal_escalation_pre_filing', state set to 'normal'", res.Message)
	assert.Equal(t, domain.StateNormal, dash.Current().State)
}

func TestDashboard_SetScenarioInvalidStateChangesNothing(t *testing.T) {
	dash := newDashboard(t)
	before := dash.Current()

	res, err := dash.SetScenario(domain.ScenarioLegal, "invalid_state")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "Invalid state")
	assert.Equal(t, before, dash.Current())
}

func TestDashboard_SetScenarioWithStateEmitsOneEvent(t *testing.T) {
	var events []domain.TransitionEvent
	dash := newDashboard(t, zerohour.WithLifecycleHooks(domain.LifecycleHooks{
		OnTransition: func(e domain.TransitionEvent) { events = append(events, e) },
	}))

	_, err := dash.SetScenario(domain.ScenarioLegal, domain.StateEscalationImminent)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, domain.TransitionScenario, events[0].Kind)
	assert.Equal(t, domain.ScenarioCyberBreach, events[0].Previous.Scenario)
	assert.Equal(t, domain.ScenarioLegal, events[0].Current.Scenario)
	assert.Equal(t, domain.StateEscalationImminent, events[0].Current.State)
}

func TestDashboard_SetScenarioReportsScenarioBeforeState(t *testing.T) {
	dash := newDashboard(t)
	before := dash.Current()

	res, err := dash.SetScenario("bogus", "bogus")

	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
	assert.Contains(t, res.Error, "Invalid scenario: bogus")
	assert.Equal(t, before, dash.Current())
}

func TestDashboard_SetScenarioInvalidScenario(t *testing.T) {
	dash := newDashboard(t)

	res, err := dash.SetScenario("invalid_scenario", "")
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
	assert.Contains(t, res.Error, "Invalid scenario")
}

func TestDashboard_SetStateAndReset(t *testing.T) {
	var kinds []domain.TransitionKind
	dash := newDashboard(t, zerohour.WithLifecycleHooks(domain.LifecycleHooks{
		OnTransition: func(e domain.TransitionEvent) { kinds = append(kinds, e.Kind) },
	}))

	res, err := dash.SetState(domain.StateEscalationImminent)
	require.NoError(t, err)
	assert.Equal(t, "State set to 'escalation_imminent'", res.Message)

	reset := dash.Reset()
	assert.Equal(t, "Reset to default state", reset.Message)
	assert.Equal(t, domain.StateEscalationImminent, reset.Previous.State)
	assert.Equal(t, domain.StateNormal, dash.Current().State)

	assert.Equal(t, []domain.TransitionKind{domain.TransitionState, domain.TransitionReset}, kinds)
}

func TestDashboard_Enumerations(t *testing.T) {
	dash := newDashboard(t)
	assert.Equal(t, domain.Scenarios(), dash.Scenarios())
	assert.Equal(t, domain.States(), dash.States())
	assert.Len(t, dash.Progression(), 4)
	assert.Equal(t, "MERIDIAN HOLDINGS", dash.Target().Name)
}
