package session

import (
	"errors"
	"fmt"
)

// ErrUnknownSetting is returned for toggle keys that do not exist.
var ErrUnknownSetting = errors.New("unknown setting")

// Visibility controls who can see a profile.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityVerified Visibility = "verified"
)

// NotificationSettings are the channel and category toggles.
type NotificationSettings struct {
	Email    bool
	Push     bool
	SMS      bool
	Deals    bool
	Messages bool
	Updates  bool
}

// PrivacySettings govern what other users see.
type PrivacySettings struct {
	ProfileVisibility Visibility
	ShowContactInfo   bool
	ShowFinancialInfo bool
	AllowMessages     bool
}

// Settings is the session-only preferences screen state.
type Settings struct {
	Notifications NotificationSettings
	Privacy       PrivacySettings
}

// DefaultSettings returns the initial toggles.
func DefaultSettings() Settings {
	return Settings{
		Notifications: NotificationSettings{
			Email:    true,
			Push:     true,
			SMS:      false,
			Deals:    true,
			Messages: true,
			Updates:  false,
		},
		Privacy: PrivacySettings{
			ProfileVisibility: VisibilityPublic,
			ShowContactInfo:   true,
			ShowFinancialInfo: false,
			AllowMessages:     true,
		},
	}
}

// Toggle flips the boolean setting named by key, e.g. "notifications.sms".
func (s Settings) Toggle(key string) (Settings, error) {
	field := s.field(key)
	if field == nil {
		return s, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	*field = !*field
	return s, nil
}

// Enabled reports the value of a boolean setting.
func (s Settings) Enabled(key string) bool {
	if field := s.field(key); field != nil {
		return *field
	}
	return false
}

// WithVisibility sets the profile visibility.
func (s Settings) WithVisibility(v Visibility) (Settings, error) {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityVerified:
		s.Privacy.ProfileVisibility = v
		return s, nil
	}
	return s, fmt.Errorf("%w: visibility %q", ErrUnknownSetting, v)
}

// field returns a pointer into the receiver copy.
func (s *Settings) field(key string) *bool {
	switch key {
	case "notifications.email":
		return &s.Notifications.Email
	case "notifications.push":
		return &s.Notifications.Push
	case "notifications.sms":
		return &s.Notifications.SMS
	case "notifications.deals":
		return &s.Notifications.Deals
	case "notifications.messages":
		return &s.Notifications.Messages
	case "notifications.updates":
		return &s.Notifications.Updates
	case "privacy.showContactInfo":
		return &s.Privacy.ShowContactInfo
	case "privacy.showFinancialInfo":
		return &s.Privacy.ShowFinancialInfo
	case "privacy.allowMessages":
		return &s.Privacy.AllowMessages
	}
	return nil
}
