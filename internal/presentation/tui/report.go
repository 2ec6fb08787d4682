package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/zerohour/pkg/catalog"
	"github.com/aretw0/zerohour/pkg/domain"
)

// Report gathers every projection of one (scenario, state) pair.
type Report struct {
	Scenario    domain.Scenario
	Name        string
	Description string
	State       domain.State
	Summary     *domain.Summary
	Domains     *domain.Domains
	Timeline    *domain.Timeline
	Signals     []domain.Signal
	Target      domain.TargetEntity
	Countdown   domain.Countdown
}

// BuildReport projects the pair through the catalog.
func BuildReport(c *catalog.Catalog, scenario domain.Scenario, state domain.State) Report {
	name, desc, _ := c.Definition(scenario)
	summary, _ := c.ExposureSummary(scenario, state)
	domains, _ := c.ExposureDomains(scenario, state)
	timeline, _ := c.ExposureTimeline(scenario, state)

	return Report{
		Scenario:    scenario,
		Name:        name,
		Description: desc,
		State:       state,
		Summary:     summary,
		Domains:     domains,
		Timeline:    timeline,
		Signals:     c.ObservedSignals(scenario, state),
		Target:      c.TargetEntity(),
		Countdown:   c.Countdown(scenario, state),
	}
}

// Markdown renders the report as a markdown document.
func (r Report) Markdown() string {
	var b strings.Builder

	title := r.Name
	if title == "" {
		title = string(r.Scenario)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Description)
	}
	fmt.Fprintf(&b, "**Target:** %s (`%s`)  \n**State:** `%s`\n\n", r.Target.Name, r.Target.ID, r.State)

	if r.Summary == nil {
		b.WriteString("> Scenario data not found.\n")
		return b.String()
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Risk level:** %s\n", r.Summary.RiskLevel)
	fmt.Fprintf(&b, "- **Confidence:** %s\n", r.Summary.Confidence)
	fmt.Fprintf(&b, "- **Domains:** %s\n\n", joinDomains(r.Summary.Domains))
	fmt.Fprintf(&b, "%s\n\n", r.Summary.Summary)

	if r.Domains != nil {
		b.WriteString("## Domains\n\n| Domain | Status | Note |\n|---|---|---|\n")
		for _, name := range domain.AllDomains() {
			report, _ := r.Domains.Get(name)
			fmt.Fprintf(&b, "| %s | %s | %s |\n", name, report.Status, report.Note)
		}
		b.WriteString("\n")
	}

	if r.Timeline != nil {
		b.WriteString("## Timeline\n\n")
		fmt.Fprintf(&b, "`%s` → **%s** → `%s`\n\n", stateOrDash(r.Timeline.Past), r.Timeline.Present, stateOrDash(r.Timeline.Next))
	}

	if len(r.Signals) > 0 {
		b.WriteString("## Signals\n\n")
		for _, s := range r.Signals {
			marker := ""
			if s.Highlighted {
				marker = " ⚠"
			}
			fmt.Fprintf(&b, "- **%s**%s (%s, %s, %s): %s\n", s.Title, marker, s.Category, s.Date, s.Trajectory, s.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Countdown\n\n")
	fmt.Fprintf(&b, "| Detected | Window closes | Exposure lost | Minutes remaining |\n|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %d |\n\n", r.Countdown.Detected, r.Countdown.WindowCloses, r.Countdown.ExposureLost, r.Countdown.MinutesRemaining)
	fmt.Fprintf(&b, "_%s_\n", r.Countdown.Date)

	return b.String()
}

func joinDomains(ds []domain.Domain) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}

func stateOrDash(s *domain.State) string {
	if s == nil {
		return "-"
	}
	return string(*s)
}
