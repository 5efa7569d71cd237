// Package session persists the authenticated customer's snapshot across
// invocations: a denormalized profile record plus the bearer token, created
// on login, updated on profile changes, and cleared together on logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/theirongolddev/wealth/internal/model"
)

const (
	profileFile = "profile.json"
	tokenFile   = "token"
)

// ErrNotLoggedIn indicates no session is stored on disk.
var ErrNotLoggedIn = errors.New("session: not logged in (run `wealth login`)")

// Session is the loaded local record.
type Session struct {
	Profile model.Profile
	Token   string
}

// Store reads and writes the session files under one directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the stored session. Returns ErrNotLoggedIn when no token
// exists.
func (s *Store) Load() (*Session, error) {
	token, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("session: reading token: %w", err)
	}

	sess := &Session{Token: strings.TrimSpace(string(token))}

	data, err := os.ReadFile(filepath.Join(s.dir, profileFile))
	if err != nil {
		if os.IsNotExist(err) {
			// Token without profile: treat as logged out, the pair is
			// written and cleared together.
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("session: reading profile: %w", err)
	}
	if err := json.Unmarshal(data, &sess.Profile); err != nil {
		return nil, fmt.Errorf("session: parsing profile: %w", err)
	}

	return sess, nil
}

// Save writes the profile record and token to disk.
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("session: creating dir: %w", err)
	}

	data, err := json.MarshalIndent(sess.Profile, "", "  ")
	if err != nil {
		return fmt.Errorf("session: encoding profile: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, profileFile), data, 0o600); err != nil {
		return fmt.Errorf("session: writing profile: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(sess.Token), 0o600); err != nil {
		return fmt.Errorf("session: writing token: %w", err)
	}
	return nil
}

// UpdateProfile rewrites only the profile record, keeping the token.
func (s *Store) UpdateProfile(p model.Profile) error {
	sess, err := s.Load()
	if err != nil {
		return err
	}
	sess.Profile = p
	return s.Save(*sess)
}

// Clear removes both session files. Missing files are not an error.
func (s *Store) Clear() error {
	for _, name := range []string{profileFile, tokenFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("session: removing %s: %w", name, err)
		}
	}
	return nil
}

// TokenExpiry reads the exp claim from a JWT without verifying the
// signature; the gateway owns validation, this only supports a friendlier
// "session expired" message client-side. Returns false for opaque or
// claimless tokens.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the stored token has a readable exp claim in the
// past. Opaque tokens are never reported expired.
func (sess *Session) Expired(now time.Time) bool {
	exp, ok := TokenExpiry(sess.Token)
	return ok && now.After(exp)
}
