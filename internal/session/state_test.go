package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vanshika/bizbridge/internal/domain"
)

func sampleUser() *domain.User {
	return &domain.User{
		ID:      "u-1",
		Name:    "Jane Doe",
		Role:    domain.RoleBuyer,
		Profile: domain.Profile{Company: "Acme", Bio: "old bio", Location: "Austin, TX"},
	}
}

func TestStateLoginLogout(t *testing.T) {
	s := NewState()
	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous state")
	}
	in := s.Login(sampleUser())
	if !in.IsAuthenticated() || in.User().Name != "Jane Doe" {
		t.Fatalf("expected Jane Doe logged in")
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected receiver untouched by Login")
	}
	out := in.Logout()
	if out.IsAuthenticated() {
		t.Fatalf("expected logout to clear user")
	}
}

func TestStateUpdateProfileChangesOnlyGivenFields(t *testing.T) {
	s := NewState().Login(sampleUser())
	bio := "new bio"
	updated := s.UpdateProfile(domain.ProfileUpdate{Bio: &bio})

	got := updated.User().Profile
	if got.Bio != "new bio" || got.Company != "Acme" || got.Location != "Austin, TX" {
		t.Fatalf("unexpected profile %+v", got)
	}
	if s.User().Profile.Bio != "old bio" {
		t.Fatalf("expected original state untouched, got %q", s.User().Profile.Bio)
	}
}

func TestStateUpdateProfileWithoutUserIsNoop(t *testing.T) {
	bio := "x"
	s := NewState().UpdateProfile(domain.ProfileUpdate{Bio: &bio})
	if s.IsAuthenticated() || s.User() != nil {
		t.Fatalf("expected no user after update on anonymous state")
	}
}

func TestUserAccessorReturnsCopy(t *testing.T) {
	s := NewState().Login(sampleUser())
	u := s.User()
	u.Name = "Mallory"
	if s.User().Name != "Jane Doe" {
		t.Fatalf("expected state user to be isolated from callers")
	}
}

func TestSettingsToggle(t *testing.T) {
	s := DefaultSettings()
	toggled, err := s.Toggle("notifications.sms")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Notifications.SMS || s.Notifications.SMS {
		t.Fatalf("expected sms flipped on copy only")
	}
	if _, err := s.Toggle("notifications.carrier_pigeon"); !errors.Is(err, ErrUnknownSetting) {
		t.Fatalf("expected ErrUnknownSetting, got %v", err)
	}
	if _, err := s.WithVisibility("everyone"); !errors.Is(err, ErrUnknownSetting) {
		t.Fatalf("expected ErrUnknownSetting for visibility, got %v", err)
	}
	if !s.Enabled("privacy.allowMessages") || s.Enabled("privacy.showFinancialInfo") {
		t.Fatalf("unexpected privacy defaults")
	}
}

func TestStoreUpdateAndExpiry(t *testing.T) {
	now := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute).WithClock(func() time.Time { return now })

	store.Update("a", func(s State) State { return s.Login(sampleUser()) })
	if !store.Get("a").IsAuthenticated() {
		t.Fatalf("expected stored login")
	}
	if store.Get("b").IsAuthenticated() {
		t.Fatalf("expected unknown id to be anonymous")
	}

	now = now.Add(2 * time.Minute)
	if store.Get("a").IsAuthenticated() {
		t.Fatalf("expected expired session to read as anonymous")
	}
	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("expected 1 session swept, got %d", removed)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
}

func TestStoreConcurrentUpdates(t *testing.T) {
	store := NewStore(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update("shared", func(s State) State {
				settings, _ := s.Settings().Toggle("notifications.sms")
				return s.WithSettings(settings)
			})
		}()
	}
	wg.Wait()
	if store.Get("shared").Settings().Notifications.SMS {
		t.Fatalf("expected an even number of toggles to leave sms off")
	}
}

func TestRunJanitorStopsOnCancel(t *testing.T) {
	store := NewStore(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.RunJanitor(ctx, time.Millisecond, nil)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("janitor did not stop after cancel")
	}
}

func TestFromContextWithoutProvider(t *testing.T) {
	if _, err := FromContext(context.Background()); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
	store := NewStore(0)
	ctx := WithHandle(context.Background(), NewHandle(store, "x"))
	h, err := FromContext(ctx)
	if err != nil || h.ID() != "x" {
		t.Fatalf("expected handle x, got %q (%v)", h.ID(), err)
	}
}

func TestHandleEndDropsSession(t *testing.T) {
	store := NewStore(time.Hour)
	h := NewHandle(store, "sid-1")
	h.Update(func(st State) State { return st.Login(sampleUser()) })
	if store.Len() != 1 {
		t.Fatalf("expected 1 stored session, got %d", store.Len())
	}

	h.End()

	if store.Len() != 0 {
		t.Fatalf("expected session removed, got %d", store.Len())
	}
	if h.State().IsAuthenticated() {
		t.Fatal("expected a fresh unauthenticated state after End")
	}
}
