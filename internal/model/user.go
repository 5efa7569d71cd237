package model

// RiskProfile is the tier assigned by the gateway's risk-profiling service.
type RiskProfile string

const (
	RiskConservative RiskProfile = "Conservative"
	RiskModerate     RiskProfile = "Moderate"
	RiskAggressive   RiskProfile = "Aggressive"
)

// NormalizeRisk maps gateway risk names onto the three display tiers.
// Older gateway builds report "Balanced" for the middle tier.
func NormalizeRisk(name string) (RiskProfile, bool) {
	switch name {
	case "Balanced":
		return RiskModerate, true
	case string(RiskConservative), string(RiskModerate), string(RiskAggressive):
		return RiskProfile(name), true
	}
	return "", false
}

// Profile is the denormalized customer snapshot kept in the local session
// store across restarts.
type Profile struct {
	CustomerID  string      `json:"customerId"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	KYCComplete bool        `json:"kycComplete"`
	CRPComplete bool        `json:"crpComplete"`
	RiskProfile RiskProfile `json:"riskProfile,omitempty"`
}

// Onboarded reports whether the customer has finished both identity
// verification and risk profiling.
func (p Profile) Onboarded() bool {
	return p.KYCComplete && p.CRPComplete
}

// CRPQuestion is one risk-questionnaire item fetched from the gateway.
type CRPQuestion struct {
	ID      string
	Text    string
	Answers []CRPAnswerOption
}

// CRPAnswerOption is one selectable answer for a questionnaire item.
type CRPAnswerOption struct {
	ID    string
	Text  string
	Score int
}
