// Package auth simulates the single-tenant local account over the client
// state store. There is no backend: one credential set, one session flag.
//
// Logout clears only the session flag. The credential, profile, quote
// requests and notifications survive, so a re-login immediately shows the
// user's history.
package auth

import (
	"strings"

	"github.com/alfdana/danashell/internal/store"
)

// Failure is a user-visible, recoverable result state. These are not
// errors; the form displays them inline and allows immediate retry.
type Failure string

const (
	FailureNone             Failure = ""
	FailureMissingFields    Failure = "missing required fields"
	FailureAccountExists    Failure = "account exists"
	FailurePasswordMismatch Failure = "password mismatch"
	FailureInvalidLogin     Failure = "invalid credentials"
)

// Ok reports a successful outcome.
func (f Failure) Ok() bool { return f == FailureNone }

// Service wraps the store with the signup/login/logout flows.
type Service struct {
	store *store.Store
}

// NewService creates the auth simulation over the given store.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// SignupInput is the signup form payload.
type SignupInput struct {
	Method     store.CredentialMethod
	Identifier string
	Password   string
	Confirm    string
	Name       string
}

// Signup stores a new credential unless one with the same identifier
// already exists. On success the derived profile is written and the
// session flag is set.
func (s *Service) Signup(in SignupInput) (*store.UserProfile, Failure) {
	in.Identifier = strings.TrimSpace(in.Identifier)
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Identifier == "" || in.Password == "" {
		return nil, FailureMissingFields
	}
	if in.Method != store.MethodEmail && in.Method != store.MethodPhone {
		return nil, FailureMissingFields
	}
	if in.Confirm != "" && in.Confirm != in.Password {
		return nil, FailurePasswordMismatch
	}
	if existing := s.store.GetCredential(); existing != nil && existing.Identifier == in.Identifier {
		return nil, FailureAccountExists
	}

	cred := store.AuthCredential{
		Method:     in.Method,
		Identifier: in.Identifier,
		Password:   in.Password,
		Name:       in.Name,
	}
	s.store.SaveCredential(cred)
	profile := deriveProfile(&cred)
	s.store.SaveProfile(profile)
	s.store.SetSession(true)
	return &profile, FailureNone
}

// Login succeeds only on an exact identifier+password match against the
// stored credential. A failed login leaves the session flag untouched.
func (s *Service) Login(identifier, password string) (*store.UserProfile, Failure) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, FailureMissingFields
	}
	cred := s.store.GetCredential()
	if cred == nil || cred.Identifier != identifier || cred.Password != password {
		return nil, FailureInvalidLogin
	}
	profile := deriveProfile(cred)
	s.store.SaveProfile(profile)
	s.store.SetSession(true)
	return &profile, FailureNone
}

// Logout clears the session flag only.
func (s *Service) Logout() {
	s.store.SetSession(false)
}

// Active reports whether the simulated login is currently active.
func (s *Service) Active() bool {
	return s.store.HasSession()
}

// deriveProfile splits the credential into a display profile. The
// identifier lands in the field matching the credential method.
func deriveProfile(c *store.AuthCredential) store.UserProfile {
	p := store.UserProfile{Name: c.Name}
	switch c.Method {
	case store.MethodEmail:
		p.Email = c.Identifier
	case store.MethodPhone:
		p.Phone = c.Identifier
	}
	return p
}
