package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/zerohour/internal/presentation/graph"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(domain.States(), nil)

	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, `normal(("normal"))`)
	assert.Contains(t, out, `signal_convergence["signal_convergence"]`)
	assert.Contains(t, out, `escalation_imminent{{"escalation_imminent"}}`)
	assert.Contains(t, out, "normal --> signal_convergence")
	assert.Contains(t, out, "exposure_window_open --> escalation_imminent")
	assert.Contains(t, out, "escalation_imminent -. reset .-> normal")
	assert.NotContains(t, out, "normal -. reset")
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	out := graph.GenerateMermaid(domain.States(), &graph.Overlay{Current: domain.StateExposureWindowOpen})

	assert.Contains(t, out, "class normal passed")
	assert.Contains(t, out, "class signal_convergence passed")
	assert.Contains(t, out, "class exposure_window_open current")
	assert.NotContains(t, out, "class escalation_imminent")
}

func TestGenerateMermaid_SanitizesIDs(t *testing.T) {
	out := graph.GenerateMermaid([]domain.State{"pre-filing", "filed"}, nil)

	assert.Contains(t, out, `pre_filing(("pre-filing"))`)
	assert.Contains(t, out, "pre_filing --> filed")
}

func TestGenerateMermaid_Empty(t *testing.T) {
	assert.Equal(t, "graph LR\n", graph.GenerateMermaid(nil, nil))
}
