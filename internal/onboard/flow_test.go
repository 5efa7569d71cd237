package onboard

import "testing"

func TestFlow_FullOnboardingPath(t *testing.T) {
	f := New()

	if f.State() != LoggedOut {
		t.Fatalf("initial state = %s, want logged-out", f.State())
	}

	if err := f.LoggedIn(false, false); err != nil {
		t.Fatalf("LoggedIn: %v", err)
	}
	if f.State() != PendingKYC {
		t.Fatalf("state after login = %s, want pending-kyc", f.State())
	}

	if err := f.ProfileCompleted(); err != nil {
		t.Fatalf("ProfileCompleted: %v", err)
	}
	if f.State() != PendingRiskResult {
		t.Fatalf("state = %s, want pending-risk-result", f.State())
	}

	if err := f.RiskAcknowledged(); err != nil {
		t.Fatalf("RiskAcknowledged: %v", err)
	}
	if f.State() != Dashboard {
		t.Fatalf("state = %s, want dashboard", f.State())
	}
}

func TestFlow_ReturningCustomerSkipsOnboarding(t *testing.T) {
	f := New()

	if err := f.LoggedIn(true, true); err != nil {
		t.Fatalf("LoggedIn: %v", err)
	}
	if f.State() != Dashboard {
		t.Fatalf("state = %s, want dashboard for onboarded customer", f.State())
	}
}

func TestFlow_RegisterRoundTrip(t *testing.T) {
	f := New()

	if err := f.StartRegister(); err != nil {
		t.Fatalf("StartRegister: %v", err)
	}
	if f.State() != Registering {
		t.Fatalf("state = %s, want registering", f.State())
	}

	if err := f.Registered(); err != nil {
		t.Fatalf("Registered: %v", err)
	}
	if f.State() != LoggedOut {
		t.Fatalf("state = %s, want logged-out after registration", f.State())
	}
}

func TestFlow_RejectsInvalidTransitions(t *testing.T) {
	f := New()

	// Cannot acknowledge a risk result before one exists.
	if err := f.RiskAcknowledged(); err == nil {
		t.Fatal("RiskAcknowledged from logged-out must fail")
	}
	if f.State() != LoggedOut {
		t.Fatalf("failed transition mutated state to %s", f.State())
	}

	// Cannot log in twice.
	if err := f.LoggedIn(true, true); err != nil {
		t.Fatalf("LoggedIn: %v", err)
	}
	if err := f.LoggedIn(true, true); err == nil {
		t.Fatal("second LoggedIn must fail")
	}
}

func TestFlow_LogOutFromAnywhere(t *testing.T) {
	f := New()
	if err := f.LoggedIn(false, false); err != nil {
		t.Fatalf("LoggedIn: %v", err)
	}

	f.LogOut()
	if f.State() != LoggedOut {
		t.Fatalf("state = %s, want logged-out", f.State())
	}
}
