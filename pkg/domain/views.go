package domain

// Summary is the headline risk posture for a (scenario, state) pair.
type Summary struct {
	RiskLevel  RiskLevel  `json:"risk_level" yaml:"risk_level"`
	Confidence Confidence `json:"confidence" yaml:"confidence"`
	Domains    []Domain   `json:"domains" yaml:"domains"`
	Summary    string     `json:"summary" yaml:"summary"`
}

// DomainReport is the status of a single risk domain.
type DomainReport struct {
	Status DomainStatus `json:"status" yaml:"status"`
	Note   string       `json:"note" yaml:"note"`
}

// Domains reports every risk domain.
type Domains struct {
	Legal        DomainReport `json:"legal" yaml:"legal"`
	Cyber        DomainReport `json:"cyber" yaml:"cyber"`
	Reputational DomainReport `json:"reputational" yaml:"reputational"`
	ThirdParty   DomainReport `json:"third_party" yaml:"third_party"`
}

// Get returns the report of a domain by name.
func (d Domains) Get(name Domain) (DomainReport, bool) {
	switch name {
	case DomainLegal:
		return d.Legal, true
	case DomainCyber:
		return d.Cyber, true
	case DomainReputational:
		return d.Reputational, true
	case DomainThirdParty:
		return d.ThirdParty, true
	}
	return DomainReport{}, false
}

// Timeline places a state between its neighbours in the escalation sequence.
// Past is nil for the first state and Next is nil for the last.
type Timeline struct {
	Past    *State `json:"past"`
	Present State  `json:"present"`
	Next    *State `json:"next"`
}

// Signal is an observed signal card annotated for the current state.
type Signal struct {
	Date        string     `json:"date"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Trajectory  Trajectory `json:"trajectory"`
	Highlighted bool       `json:"highlighted"`
}

// TargetEntity is the monitored organization.
type TargetEntity struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

// Countdown is the disclosure clock shown on the dashboard.
type Countdown struct {
	Detected         string `json:"detected"`
	WindowCloses     string `json:"window_closes"`
	ExposureLost     string `json:"exposure_lost"`
	MinutesRemaining int    `json:"minutes_remaining"`
	Date             string `json:"date"`
}
