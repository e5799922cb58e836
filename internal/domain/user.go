package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Role identifies which side of an acquisition a user is on.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// ErrInvalidRole is returned when a string does not name a known role.
var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleBuyer:
		return RoleBuyer, nil
	case RoleSeller:
		return RoleSeller, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, value)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// Counterpart returns the role a user of role r browses on their dashboard.
func (r Role) Counterpart() Role {
	if r == RoleBuyer {
		return RoleSeller
	}
	return RoleBuyer
}

// Profile holds the optional descriptive fields of a user.
type Profile struct {
	Avatar     string
	Company    string
	Industry   string
	Experience int
	Location   string
	Bio        string
}

// OnboardingProgress records how far a user got through the questionnaire.
type OnboardingProgress struct {
	Completed   bool
	CurrentStep int
	TotalSteps  int
}

// User is the signed-in participant. It is owned by the session state.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       Role
	Profile    Profile
	Onboarding OnboardingProgress
}

// Clone returns a copy of u that shares no memory with it.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

// ProfileUpdate is a partial profile. Nil fields are left untouched.
type ProfileUpdate struct {
	Avatar     *string
	Company    *string
	Industry   *string
	Experience *int
	Location   *string
	Bio        *string
}

// Apply merges the non-nil fields of upd into p.
func (upd ProfileUpdate) Apply(p Profile) Profile {
	if upd.Avatar != nil {
		p.Avatar = *upd.Avatar
	}
	if upd.Company != nil {
		p.Company = *upd.Company
	}
	if upd.Industry != nil {
		p.Industry = *upd.Industry
	}
	if upd.Experience != nil {
		p.Experience = *upd.Experience
	}
	if upd.Location != nil {
		p.Location = *upd.Location
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	return p
}
