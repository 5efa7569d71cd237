// Package onboard models the login-to-dashboard flow as an explicit state
// machine. Exactly one state is active at a time, replacing the
// combinatorial boolean flags (showLogin/showRegister/showKYC/...) the flow
// was originally driven by.
package onboard

import "fmt"

// State is one screen of the onboarding flow.
type State int

const (
	// LoggedOut shows the login screen.
	LoggedOut State = iota
	// Registering shows the account registration form.
	Registering
	// PendingKYC shows the identity form; entered when a customer logs in
	// without completed verification.
	PendingKYC
	// PendingRiskResult shows the assigned risk tier after the CRP
	// questionnaire, awaiting acknowledgement.
	PendingRiskResult
	// Dashboard is the fully onboarded main view.
	Dashboard
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged-out"
	case Registering:
		return "registering"
	case PendingKYC:
		return "pending-kyc"
	case PendingRiskResult:
		return "pending-risk-result"
	case Dashboard:
		return "dashboard"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Flow holds the current onboarding state.
type Flow struct {
	state State
}

// New returns a flow in the LoggedOut state.
func New() *Flow {
	return &Flow{state: LoggedOut}
}

// State returns the active state.
func (f *Flow) State() State {
	return f.state
}

// StartRegister moves from the login screen to registration.
func (f *Flow) StartRegister() error {
	return f.transition(Registering, LoggedOut)
}

// CancelRegister returns from registration to the login screen.
func (f *Flow) CancelRegister() error {
	return f.transition(LoggedOut, Registering)
}

// Registered completes registration; the customer still has to log in.
func (f *Flow) Registered() error {
	return f.transition(LoggedOut, Registering)
}

// LoggedIn routes a fresh login by onboarding progress: straight to the
// dashboard when KYC and CRP are both done, otherwise into the KYC step.
func (f *Flow) LoggedIn(kycComplete, crpComplete bool) error {
	if kycComplete && crpComplete {
		return f.transition(Dashboard, LoggedOut)
	}
	return f.transition(PendingKYC, LoggedOut)
}

// ProfileCompleted moves to the risk-result screen once KYC and the CRP
// questionnaire have been submitted.
func (f *Flow) ProfileCompleted() error {
	return f.transition(PendingRiskResult, PendingKYC)
}

// RiskAcknowledged enters the dashboard after the customer confirms their
// assigned tier.
func (f *Flow) RiskAcknowledged() error {
	return f.transition(Dashboard, PendingRiskResult)
}

// LogOut resets the flow from any state.
func (f *Flow) LogOut() {
	f.state = LoggedOut
}

func (f *Flow) transition(to State, from ...State) error {
	for _, s := range from {
		if f.state == s {
			f.state = to
			return nil
		}
	}
	return fmt.Errorf("onboard: cannot move to %s from %s", to, f.state)
}
