// Package session holds per-visitor application state: the signed-in user,
// the onboarding wizard in progress and the settings toggles.
package session

import (
	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/onboarding"
)

// State is an immutable snapshot of one visitor's application state. Every
// method returns a new State; the receiver is never modified.
type State struct {
	user     *domain.User
	wizard   onboarding.Wizard
	settings Settings
}

// NewState returns the anonymous starting state.
func NewState() State {
	return State{
		wizard:   onboarding.New(),
		settings: DefaultSettings(),
	}
}

// User returns a copy of the signed-in user, or nil.
func (s State) User() *domain.User {
	return s.user.Clone()
}

// IsAuthenticated reports whether a user is present.
func (s State) IsAuthenticated() bool {
	return s.user != nil
}

// Login replaces the current user unconditionally.
func (s State) Login(user *domain.User) State {
	s.user = user.Clone()
	return s
}

// Logout clears the user, the wizard and any settings changes.
func (s State) Logout() State {
	return NewState()
}

// UpdateProfile shallow-merges upd into the user's profile. Without a user it
// is a no-op.
func (s State) UpdateProfile(upd domain.ProfileUpdate) State {
	if s.user == nil {
		return s
	}
	u := s.user.Clone()
	u.Profile = upd.Apply(u.Profile)
	s.user = u
	return s
}

// Wizard returns the onboarding wizard.
func (s State) Wizard() onboarding.Wizard {
	return s.wizard
}

// WithWizard replaces the onboarding wizard.
func (s State) WithWizard(w onboarding.Wizard) State {
	s.wizard = w
	return s
}

// Settings returns the settings toggles.
func (s State) Settings() Settings {
	return s.settings
}

// WithSettings replaces the settings toggles.
func (s State) WithSettings(settings Settings) State {
	s.settings = settings
	return s
}
