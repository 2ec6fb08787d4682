package observability

import (
	"strconv"
	"time"

	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups every collector exported by the service.
type Metrics struct {
	Transitions     *prometheus.CounterVec
	ActiveScenario  *prometheus.GaugeVec
	StateIndex      prometheus.Gauge
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	scenarios []domain.Scenario
}

// NewMetrics creates the collectors and registers them on reg.
// scenarios seeds the active-scenario gauge so every label is exported from the start.
func NewMetrics(reg prometheus.Registerer, scenarios []domain.Scenario) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zerohour_transitions_total",
				Help: "Total number of applied engine transitions",
			},
			[]string{"kind"},
		),
		ActiveScenario: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "zerohour_active_scenario",
				Help: "1 for the active scenario, 0 otherwise",
			},
			[]string{"scenario"},
		),
		StateIndex: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "zerohour_state_index",
				Help: "Position of the current state in the escalation sequence",
			},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zerohour_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "zerohour_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		scenarios: scenarios,
	}
	reg.MustRegister(m.Transitions, m.ActiveScenario, m.StateIndex, m.Requests, m.RequestDuration)
	for _, s := range scenarios {
		m.ActiveScenario.WithLabelValues(string(s)).Set(0)
	}
	return m
}

// Observe publishes the gauges for a snapshot.
func (m *Metrics) Observe(s domain.Snapshot) {
	for _, sc := range m.scenarios {
		v := 0.0
		if sc == s.Scenario {
			v = 1
		}
		m.ActiveScenario.WithLabelValues(string(sc)).Set(v)
	}
	m.StateIndex.Set(float64(s.StateIndex))
}

// Hooks returns lifecycle hooks that record transitions.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(e domain.TransitionEvent) {
			m.Transitions.WithLabelValues(string(e.Kind)).Inc()
			m.Observe(e.Current)
		},
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
