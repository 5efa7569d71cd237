package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/theirongolddev/wealth/internal/model"
)

func TestStore_SaveLoadClear(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, err := store.Load(); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Load on empty store = %v, want ErrNotLoggedIn", err)
	}

	want := Session{
		Profile: model.Profile{
			CustomerID:  "c-1",
			Name:        "Ayu",
			Email:       "ayu@example.com",
			KYCComplete: true,
			CRPComplete: true,
			RiskProfile: model.RiskModerate,
		},
		Token: "tok-abc",
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Token != want.Token || got.Profile != want.Profile {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Load after Clear = %v, want ErrNotLoggedIn", err)
	}

	// Clearing twice must not fail.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestStore_UpdateProfileKeepsToken(t *testing.T) {
	store := NewStore(t.TempDir())

	sess := Session{Profile: model.Profile{CustomerID: "c-1"}, Token: "tok"}
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	updated := sess.Profile
	updated.KYCComplete = true
	if err := store.UpdateProfile(updated); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Token != "tok" {
		t.Fatalf("token changed to %q after profile update", got.Token)
	}
	if !got.Profile.KYCComplete {
		t.Fatal("profile update not persisted")
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "c-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	got, ok := TokenExpiry(signedToken(t, exp))
	if !ok {
		t.Fatal("TokenExpiry returned !ok for valid JWT")
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry = %s, want %s", got, exp)
	}

	if _, ok := TokenExpiry("not-a-jwt"); ok {
		t.Fatal("opaque token must not report an expiry")
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	fresh := &Session{Token: signedToken(t, now.Add(time.Hour))}
	if fresh.Expired(now) {
		t.Fatal("fresh token reported expired")
	}

	stale := &Session{Token: signedToken(t, now.Add(-time.Hour))}
	if !stale.Expired(now) {
		t.Fatal("stale token not reported expired")
	}

	opaque := &Session{Token: "opaque-session-id"}
	if opaque.Expired(now) {
		t.Fatal("opaque token must never be reported expired")
	}
}
