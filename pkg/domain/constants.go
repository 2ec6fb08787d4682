package domain

// Scenario identifies one of the pre-scripted incident storylines.
type Scenario string

const (
	ScenarioCyberBreach Scenario = "cyber_breach_pre_disclosure"
	ScenarioNarrative   Scenario = "weaponized_public_narrative"
	ScenarioLegal       Scenario = "legal_escalation_pre_filing"
	ScenarioThirdParty  Scenario = "third_party_exposure_event"
)

// State is an escalation level. States are ordered by severity.
type State string

const (
	StateNormal             State = "normal"
	StateSignalConvergence  State = "signal_convergence"
	StateExposureWindowOpen State = "exposure_window_open"
	StateEscalationImminent State = "escalation_imminent"
)

// Domain is one of the fixed risk categories.
type Domain string

const (
	DomainLegal        Domain = "legal"
	DomainCyber        Domain = "cyber"
	DomainReputational Domain = "reputational"
	DomainThirdParty   Domain = "third_party"
)

// RiskLevel, Confidence and DomainStatus are the labels used by the scenario table.
type (
	RiskLevel    string
	Confidence   string
	DomainStatus string
)

const (
	RiskLow      RiskLevel = "low"
	RiskElevated RiskLevel = "elevated"
	RiskHigh     RiskLevel = "high"

	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"

	StatusNeutral DomainStatus = "neutral"
	StatusForming DomainStatus = "forming"
	StatusActive  DomainStatus = "active"
)

// Trajectory tags how far along the escalation a signal's relevance has progressed.
type Trajectory string

const (
	TrajectoryEarly     Trajectory = "early"
	TrajectoryDetected  Trajectory = "detected"
	TrajectoryAlignment Trajectory = "alignment"
	TrajectoryExposure  Trajectory = "exposure"
)

// Scenarios returns the built-in scenarios in display order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioCyberBreach, ScenarioNarrative, ScenarioLegal, ScenarioThirdParty}
}

// States returns the built-in escalation sequence, least severe first.
func States() []State {
	return []State{StateNormal, StateSignalConvergence, StateExposureWindowOpen, StateEscalationImminent}
}

// AllDomains returns the fixed risk domains.
func AllDomains() []Domain {
	return []Domain{DomainLegal, DomainCyber, DomainReputational, DomainThirdParty}
}

// RiskLevels, ConfidenceLevels and DomainStatuses enumerate the accepted labels.
func RiskLevels() []RiskLevel { return []RiskLevel{RiskLow, RiskElevated, RiskHigh} }

func ConfidenceLevels() []Confidence { return []Confidence{ConfidenceMedium, ConfidenceHigh} }

func DomainStatuses() []DomainStatus {
	return []DomainStatus{StatusNeutral, StatusForming, StatusActive}
}
