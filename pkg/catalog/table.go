package catalog

import "github.com/aretw0/zerohour/pkg/domain"

// SignalTemplate is the static part of an observed signal card.
type SignalTemplate struct {
	Category    string `yaml:"category" json:"category"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// StateView is what the dashboard shows for one state of a scenario.
type StateView struct {
	Summary domain.Summary `yaml:"summary" json:"summary"`
	Domains domain.Domains `yaml:"domains" json:"domains"`
}

// ScenarioDefinition is the scripted storyline of one scenario.
type ScenarioDefinition struct {
	Name        string                     `yaml:"name" json:"name"`
	Description string                     `yaml:"description" json:"description"`
	States      map[domain.State]StateView `yaml:"states" json:"states"`
	Signals     []SignalTemplate           `yaml:"signals" json:"signals"`
}

// Table maps every scenario to its definition.
type Table map[domain.Scenario]ScenarioDefinition

func report(status domain.DomainStatus, note string) domain.DomainReport {
	return domain.DomainReport{Status: status, Note: note}
}

// DefaultTable returns the built-in demo storylines. Each call builds a fresh copy.
func DefaultTable() Table {
	return Table{
		domain.ScenarioCyberBreach: {
			Name:        "Cyber Breach Pre-Disclosure",
			Description: "Potential data breach detected before public disclosure",
			States: map[domain.State]StateView{
				domain.StateNormal: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskLow,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainCyber},
						Summary:    "No material exposure detected. Systems operating within normal parameters.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusNeutral, "No pending legal concerns."),
						Cyber:        report(domain.StatusNeutral, "Security posture stable."),
						Reputational: report(domain.StatusNeutral, "Public sentiment unchanged."),
						ThirdParty:   report(domain.StatusNeutral, "Vendor relationships secure."),
					},
				},
				domain.StateSignalConvergence: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskElevated,
						Confidence: domain.ConfidenceMedium,
						Domains:    []domain.Domain{domain.DomainCyber, domain.DomainLegal},
						Summary:    "Anomalous network activity aligning with potential intrusion indicators. Early-stage investigation warranted.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusForming, "Breach notification requirements under review."),
						Cyber:        report(domain.StatusActive, "Unusual data transfers detected; forensics initiated."),
						Reputational: report(domain.StatusNeutral, "No external visibility yet."),
						ThirdParty:   report(domain.StatusNeutral, "Vendor access audit in progress."),
					},
				},
				domain.StateExposureWindowOpen: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskHigh,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainCyber, domain.DomainLegal, domain.DomainReputational},
						Summary:    "Confirmed unauthorized access to sensitive data. Disclosure window is open and regulatory notification is imminent.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusActive, "Regulatory notification timeline triggered."),
						Cyber:        report(domain.StatusActive, "Containment in progress; exfiltration confirmed."),
						Reputational: report(domain.StatusForming, "Media inquiries beginning; statement preparation underway."),
						ThirdParty:   report(domain.StatusForming, "Partner notification protocols activated."),
					},
				},
				domain.StateEscalationImminent: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskHigh,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainCyber, domain.DomainLegal, domain.DomainReputational, domain.DomainThirdParty},
						Summary:    "Full breach exposure imminent. All stakeholders require immediate notification. Crisis protocol activated.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusActive, "Regulatory filings in progress; litigation risk elevated."),
						Cyber:        report(domain.StatusActive, "Active incident response; systems quarantined."),
						Reputational: report(domain.StatusActive, "Public disclosure required within hours."),
						ThirdParty:   report(domain.StatusActive, "Customer and partner notifications underway."),
					},
				},
			},
			Signals: []SignalTemplate{
				{"Cyber & Network Anomalies", "Anomalous Traffic Pattern Detected", "Network activity indicators are beginning to diverge from established baseline behavior across multiple vectors."},
				{"Corporate & Third-Party Behavior", "Behavioral Shift Across Dependent Entities", "Multiple third-party entities are exhibiting subtle but correlated changes in activity over a short time window."},
				{"Cyber & Network Anomalies", "Persistent Network Irregularities Observed", "Repeated low-level anomalies suggest emerging consistency rather than isolated or transient noise."},
				{"Cyber & Network Anomalies", "Cross-System Signal Alignment Identified", "Independent network signals that typically fluctuate separately are showing early signs of alignment."},
				{"Financial Stress Indicators", "Unusual Data Transfer Volumes", "Outbound data volumes exceeding normal thresholds during non-business hours."},
				{"Cyber & Network Anomalies", "Authentication Pattern Deviation", "Login attempts from unexpected geographic regions showing coordinated timing."},
			},
		},

		domain.ScenarioNarrative: {
			Name:        "Weaponized Public Narrative",
			Description: "Coordinated disinformation campaign targeting organization",
			States: map[domain.State]StateView{
				domain.StateNormal: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskLow,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainReputational},
						Summary:    "No material exposure detected. Media landscape stable.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusNeutral, "No defamation concerns identified."),
						Cyber:        report(domain.StatusNeutral, "No coordinated bot activity detected."),
						Reputational: report(domain.StatusNeutral, "Brand sentiment positive."),
						ThirdParty:   report(domain.StatusNeutral, "Partner relationships stable."),
					},
				},
				domain.StateSignalConvergence: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskElevated,
						Confidence: domain.ConfidenceMedium,
						Domains:    []domain.Domain{domain.DomainReputational, domain.DomainCyber},
						Summary:    "Coordinated narrative forming across social platforms. Bot amplification patterns detected.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusNeutral, "Monitoring for actionable defamation."),
						Cyber:        report(domain.StatusForming, "Inauthentic account clusters identified."),
						Reputational: report(domain.StatusActive, "Negative hashtag gaining traction."),
						ThirdParty:   report(domain.StatusNeutral, "No partner impact yet."),
					},
				},
				domain.StateExposureWindowOpen: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskHigh,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainReputational, domain.DomainLegal, domain.DomainThirdParty},
						Summary:    "Narrative has reached mainstream media. Counter-messaging window closing rapidly.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusForming, "Cease and desist options under review."),
						Cyber:        report(domain.StatusActive, "Amplification network mapped; origin traced."),
						Reputational: report(domain.StatusActive, "Major outlets covering story; crisis comms active."),
						ThirdParty:   report(domain.StatusForming, "Partner distancing signals detected."),
					},
				},
				domain.StateEscalationImminent: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskHigh,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainReputational, domain.DomainLegal, domain.DomainThirdParty, domain.DomainCyber},
						Summary:    "Narrative fully weaponized. Executive visibility required. Stakeholder trust at critical threshold.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusActive, "Congressional inquiry possible; legal strategy engaged."),
						Cyber:        report(domain.StatusActive, "Persistent campaign; counter-operations considered."),
						Reputational: report(domain.StatusActive, "CEO statement required; stock impact expected."),
						ThirdParty:   report(domain.StatusActive, "Major partner review triggered."),
					},
				},
			},
			Signals: []SignalTemplate{
				{"Open-Web & Reputational Precursors", "Coordinated Narrative Formation Detected", "Multiple independent sources beginning to echo similar themes across social platforms."},
				{"Open-Web & Reputational Precursors", "Amplification Network Identified", "Bot activity patterns suggest coordinated amplification of specific narrative threads."},
				{"Open-Web & Reputational Precursors", "Sentiment Shift Acceleration", "Rate of negative sentiment increase exceeds organic growth patterns."},
				{"Financial Stress Indicators", "Market Positioning Anomaly", "Unusual options activity detected in correlated securities."},
				{"Open-Web & Reputational Precursors", "Influencer Engagement Spike", "Key opinion leaders showing sudden interest in previously dormant topics."},
				{"Legal & Regulatory Signals", "Media Inquiry Clustering", "Multiple journalist inquiries arriving within compressed timeframe."},
			},
		},

		domain.ScenarioLegal: {
			Name:        "Legal Escalation Pre-Filing",
			Description: "Material litigation risk before formal filing",
			States: map[domain.State]StateView{
				domain.StateNormal: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskLow,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainLegal},
						Summary:    "No material exposure detected. Legal landscape clear.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusNeutral, "Routine contract matters only."),
						Cyber:        report(domain.StatusNeutral, "No discovery-related concerns."),
						Reputational: report(domain.StatusNeutral, "No litigation publicity risk."),
						ThirdParty:   report(domain.StatusNeutral, "No counter-party disputes."),
					},
				},
				domain.StateSignalConvergence: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskElevated,
						Confidence: domain.ConfidenceMedium,
						Domains:    []domain.Domain{domain.DomainLegal, domain.DomainReputational},
						Summary:    "Pre-filing legal indicators aligning with reputational signals. Plaintiff counsel activity detected.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusActive, "Demand letter received; class action investigation noted."),
						Cyber:        report(domain.StatusNeutral, "Document preservation notice issued."),
						Reputational: report(domain.StatusForming, "Plaintiff-side media outreach beginning."),
						ThirdParty:   report(domain.StatusNeutral, "Contract review initiated."),
					},
				},
				domain.StateExposureWindowOpen: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskHigh,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainLegal, domain.DomainReputational, domain.DomainThirdParty},
						Summary:    "Near-term legal escalation likely prior to public filing. Settlement window narrowing.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusActive, "Filing expected within days; settlement discussions stalled."),
						Cyber:        report(domain.StatusForming, "E-discovery scope expanding."),
						Reputational: report(domain.StatusActive, "Pre-filing media strategy detected from plaintiff."),
						ThirdParty:   report(domain.StatusForming, "Insurance carrier notified; partner indemnity review."),
					},
				},
				domain.StateEscalationImminent: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskHigh,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainLegal, domain.DomainReputational, domain.DomainThirdParty, domain.DomainCyber},
						Summary:    "Litigation filing imminent. Full legal defense activation required. Board notification triggered.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusActive, "Complaint imminent; parallel regulatory exposure possible."),
						Cyber:        report(domain.StatusActive, "Forensic hold expanded; privileged review underway."),
						Reputational: report(domain.StatusActive, "Public filing will trigger news cycle."),
						ThirdParty:   report(domain.StatusActive, "Counter-claims and indemnification in play."),
					},
				},
			},
			Signals: []SignalTemplate{
				{"Legal & Regulatory Signals", "Pre-Filing Activity Indicators", "Legal counsel activity patterns suggest preparation for formal proceedings."},
				{"Legal & Regulatory Signals", "Settlement Window Narrowing", "Communication patterns indicate diminishing opportunity for pre-litigation resolution."},
				{"Open-Web & Reputational Precursors", "Plaintiff-Side Media Outreach", "Early indicators of coordinated media strategy from opposing counsel."},
				{"Legal & Regulatory Signals", "Regulatory Interest Signals", "Inquiry patterns from regulatory bodies showing increased attention."},
				{"Corporate & Third-Party Behavior", "Witness Coordination Activity", "Communication patterns suggesting preparation of third-party testimonials."},
				{"Legal & Regulatory Signals", "Document Preservation Notices", "Legal hold requests indicating imminent formal action."},
			},
		},

		domain.ScenarioThirdParty: {
			Name:        "Third Party Exposure Event",
			Description: "Critical vendor or partner failure creating exposure",
			States: map[domain.State]StateView{
				domain.StateNormal: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskLow,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainThirdParty},
						Summary:    "No material exposure detected. Vendor ecosystem healthy.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusNeutral, "Contract compliance verified."),
						Cyber:        report(domain.StatusNeutral, "Vendor security assessments current."),
						Reputational: report(domain.StatusNeutral, "No partner-related publicity risk."),
						ThirdParty:   report(domain.StatusNeutral, "All critical vendors stable."),
					},
				},
				domain.StateSignalConvergence: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskElevated,
						Confidence: domain.ConfidenceMedium,
						Domains:    []domain.Domain{domain.DomainThirdParty, domain.DomainCyber},
						Summary:    "Critical vendor showing distress signals. Contingency evaluation initiated.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusNeutral, "Contract termination clauses under review."),
						Cyber:        report(domain.StatusForming, "Vendor access audit triggered."),
						Reputational: report(domain.StatusNeutral, "No public visibility of vendor issues."),
						ThirdParty:   report(domain.StatusActive, "Key personnel departures at vendor; financial distress indicators."),
					},
				},
				domain.StateExposureWindowOpen: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskHigh,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainThirdParty, domain.DomainCyber, domain.DomainReputational},
						Summary:    "Vendor failure confirmed. Service transition required. Customer impact possible.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusForming, "Breach of contract claim being evaluated."),
						Cyber:        report(domain.StatusActive, "Data retrieval urgent; access termination in progress."),
						Reputational: report(domain.StatusForming, "Customer communication drafts prepared."),
						ThirdParty:   report(domain.StatusActive, "Emergency vendor onboarding initiated."),
					},
				},
				domain.StateEscalationImminent: {
					Summary: domain.Summary{
						RiskLevel:  domain.RiskHigh,
						Confidence: domain.ConfidenceHigh,
						Domains:    []domain.Domain{domain.DomainThirdParty, domain.DomainCyber, domain.DomainReputational, domain.DomainLegal},
						Summary:    "Vendor collapse imminent. Business continuity at risk. All domains activated.",
					},
					Domains: domain.Domains{
						Legal:        report(domain.StatusActive, "Vendor bankruptcy expected; asset recovery in motion."),
						Cyber:        report(domain.StatusActive, "Data migration critical; system cutover underway."),
						Reputational: report(domain.StatusActive, "Customer notification required; SLA breach communications."),
						ThirdParty:   report(domain.StatusActive, "Full service transition deadline imminent."),
					},
				},
			},
			Signals: []SignalTemplate{
				{"Corporate & Third-Party Behavior", "Vendor Distress Signals Emerging", "Key personnel movements and financial indicators suggest vendor stability concerns."},
				{"Corporate & Third-Party Behavior", "Supply Chain Dependency Alert", "Critical vendor showing signs of operational disruption affecting delivery commitments."},
				{"Financial Stress Indicators", "Credit Risk Elevation", "Third-party credit metrics deteriorating beyond seasonal variance."},
				{"Corporate & Third-Party Behavior", "Unusual Third-Party Activity Detected", "Behavioral indicators across external partners are deviating from historical norms in a coordinated pattern."},
				{"Cyber & Network Anomalies", "Vendor System Access Irregularity", "Access patterns from vendor-connected systems showing anomalous behavior."},
				{"Financial Stress Indicators", "Payment Pattern Disruption", "Vendor payment timing deviating from established schedules."},
			},
		},
	}
}
