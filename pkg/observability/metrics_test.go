package observability_test

import (
	"testing"
	"time"

	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/aretw0/zerohour/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg, domain.Scenarios())
	hooks := m.Hooks()

	hooks.OnTransition(domain.TransitionEvent{
		Kind:    domain.TransitionScenario,
		Current: domain.Snapshot{Scenario: domain.ScenarioLegal, State: domain.StateNormal, StateIndex: 0},
	})
	hooks.OnTransition(domain.TransitionEvent{
		Kind:    domain.TransitionState,
		Current: domain.Snapshot{Scenario: domain.ScenarioLegal, State: domain.StateExposureWindowOpen, StateIndex: 2},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("scenario")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("state")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StateIndex))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveScenario.WithLabelValues(string(domain.ScenarioLegal))))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ActiveScenario.WithLabelValues(string(domain.ScenarioCyberBreach))))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg, domain.Scenarios())

	m.ObserveRequest("GET", "/exposure/summary", 200, 3*time.Millisecond)
	m.ObserveRequest("GET", "/exposure/summary", 200, 5*time.Millisecond)
	m.ObserveRequest("POST", "/admin/reset", 401, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/exposure/summary", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("POST", "/admin/reset", "401")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_SeedsScenarioLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg, domain.Scenarios())

	assert.Equal(t, 4, testutil.CollectAndCount(m.ActiveScenario))
}
