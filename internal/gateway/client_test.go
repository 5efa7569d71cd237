package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLogin_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id header")
		}
		w.Write([]byte(`{"success":true,"data":{
			"customerId":"c-1","name":"Ayu","email":"ayu@example.com",
			"token":"tok","kycComplete":true,"crpComplete":true,
			"riskProfileType":"Balanced"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	data, err := c.Login(context.Background(), "ayu@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if data.CustomerID != "c-1" || data.Token != "tok" {
		t.Fatalf("unexpected login data: %+v", data)
	}

	profile := data.Profile()
	if profile.RiskProfile != "Moderate" {
		t.Fatalf("RiskProfile = %q, want Moderate (normalized from Balanced)", profile.RiskProfile)
	}
	if !profile.Onboarded() {
		t.Fatal("expected onboarded profile")
	}
}

func TestDo_BusinessFailureSurfacesMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":false,"data":null,
			"messages":["insufficient balance"],"errors":["ERR_FUNDS"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Buy(context.Background(), BuyRequest{CustomerID: "c-1", ProductID: "p-1", GoalID: "g-1", Amount: 100})
	if err == nil {
		t.Fatal("expected error for success=false envelope")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	msg := apiErr.Error()
	if !strings.Contains(msg, "insufficient balance") || !strings.Contains(msg, "ERR_FUNDS") {
		t.Fatalf("joined message %q missing gateway messages", msg)
	}
}

func TestDo_UnauthorizedIsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListGoals(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestDo_AuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("X-User-Id"); got != "c-9" {
			t.Errorf("X-User-Id = %q", got)
		}
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetAuth("tok-123", "c-9")
	if _, err := c.ListGoals(context.Background()); err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
}

func TestTrackingGoals_FallsBackToDoubleSlashRoute(t *testing.T) {
	var sawFallback bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/goals/trackingGoals":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"data":null,"errors":["route not found"]}`))
		case "/v1/goals//trackingGoals":
			sawFallback = true
			w.Write([]byte(`{"success":true,"data":[{
				"goalId":"g-1","goalType":"OTHER","goalName":"House",
				"createdDate":"2025-01-01","targetDate":"2027-06-01",
				"targetAmount":60000000,"expectedValueToDate":10000000,
				"actualValueToDate":12000000,"shortfallPct":0,
				"status":"ON_TRACK"}]}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	rows, err := c.TrackingGoals(context.Background())
	if err != nil {
		t.Fatalf("TrackingGoals: %v", err)
	}
	if !sawFallback {
		t.Fatal("fallback route was never tried")
	}
	if len(rows) != 1 || rows[0].Status != "ON_TRACK" {
		t.Fatalf("unexpected tracking rows: %+v", rows)
	}
	if !rows[0].TargetAmount.Equal(rows[0].TargetAmount.Truncate(0)) {
		t.Fatalf("TargetAmount = %s, want whole rupiah", rows[0].TargetAmount)
	}
}
