package onboarding

import (
	"errors"
	"testing"

	"github.com/vanshika/bizbridge/internal/domain"
)

func answerAll(t *testing.T, w Wizard, values map[string]string) Wizard {
	t.Helper()
	step, ok := w.CurrentStep()
	if !ok {
		t.Fatalf("expected a current step in phase %s", w.Phase())
	}
	for _, q := range step.Questions {
		v, ok := values[q.ID]
		if !ok {
			continue
		}
		var err error
		w, err = w.Answer(q.ID, v)
		if err != nil {
			t.Fatalf("answer %s: %v", q.ID, err)
		}
	}
	return w
}

// fillRequired answers every required question of the current step with a placeholder.
func fillRequired(t *testing.T, w Wizard) Wizard {
	t.Helper()
	step, _ := w.CurrentStep()
	values := map[string]string{}
	for _, q := range step.Questions {
		if !q.Required {
			continue
		}
		switch q.Kind {
		case KindNumber:
			values[q.ID] = "3"
		case KindSelect:
			values[q.ID] = q.Options[0]
		default:
			values[q.ID] = "x"
		}
	}
	return answerAll(t, w, values)
}

func TestStepsSharePersonalStep(t *testing.T) {
	buyer := Steps(domain.RoleBuyer)
	seller := Steps(domain.RoleSeller)
	if len(buyer) != 3 || len(seller) != 3 {
		t.Fatalf("expected 3 steps per role, got %d and %d", len(buyer), len(seller))
	}
	if buyer[0].ID != "personal" || seller[0].ID != "personal" {
		t.Fatalf("expected both lists to start with the personal step")
	}
	if buyer[2].ID != "investment" || seller[2].ID != "selling" {
		t.Fatalf("unexpected final steps %s / %s", buyer[2].ID, seller[2].ID)
	}
	if Steps(domain.Role("admin")) != nil {
		t.Fatalf("expected nil steps for an invalid role")
	}
}

func TestSelectRoleIsOneWay(t *testing.T) {
	w, err := New().SelectRole(domain.RoleSeller)
	if err != nil {
		t.Fatalf("select role: %v", err)
	}
	if w.Phase() != PhaseInProgress || w.StepIndex() != 0 {
		t.Fatalf("expected step 0 in progress, got %s/%d", w.Phase(), w.StepIndex())
	}
	if _, err := w.SelectRole(domain.RoleBuyer); !errors.Is(err, ErrRoleLocked) {
		t.Fatalf("expected ErrRoleLocked, got %v", err)
	}
	if _, err := New().SelectRole("admin"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestCanProceedMatchesRequiredAnswers(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleBuyer, domain.RoleSeller} {
		w, _ := Start(role)
		for i := 0; i < w.TotalSteps(); i++ {
			step, _ := w.CurrentStep()
			if w.CanProceed() {
				t.Fatalf("%s step %s: expected CanProceed false with no answers", role, step.ID)
			}
			full := fillRequired(t, w)
			if !full.CanProceed() {
				t.Fatalf("%s step %s: expected CanProceed true when required answered", role, step.ID)
			}
			for _, q := range step.Questions {
				if !q.Required {
					continue
				}
				missing, err := full.Answer(q.ID, "   ")
				if err != nil {
					t.Fatalf("blank answer: %v", err)
				}
				if missing.CanProceed() {
					t.Fatalf("%s step %s: expected CanProceed false without %s", role, step.ID, q.ID)
				}
			}
			if !full.IsLastStep() {
				w, _, _ = full.Next()
			}
		}
	}
}

func TestNextRejectsIncompleteStep(t *testing.T) {
	w, _ := Start(domain.RoleBuyer)
	w, _ = w.Answer("name", "Jane Doe")
	next, user, err := w.Next()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if user != nil || next.StepIndex() != 0 {
		t.Fatalf("expected wizard unchanged on failed next")
	}
	if _, _, err := New().Next(); !errors.Is(err, ErrRoleUnset) {
		t.Fatalf("expected ErrRoleUnset, got %v", err)
	}
}

func TestBackPreservesAnswers(t *testing.T) {
	w, _ := Start(domain.RoleBuyer)
	if got := w.Back(); got.StepIndex() != 0 || got.Phase() != PhaseInProgress {
		t.Fatalf("expected back on step 0 to be a no-op")
	}
	w = answerAll(t, w, map[string]string{"name": "Jane Doe", "email": "jane@example.com", "location": "Austin, TX"})
	w, _, err := w.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	w = answerAll(t, w, map[string]string{"company": "Acme"})
	w = w.Back()
	if w.StepIndex() != 0 {
		t.Fatalf("expected step 0 after back, got %d", w.StepIndex())
	}
	if w.Value("name") != "Jane Doe" || w.Value("company") != "Acme" {
		t.Fatalf("expected answers preserved, got name=%q company=%q", w.Value("name"), w.Value("company"))
	}
	w, _, _ = w.Next()
	if w.Value("company") != "Acme" {
		t.Fatalf("expected company preserved after returning, got %q", w.Value("company"))
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	w, _ := Start(domain.RoleSeller)
	_, _ = w.Answer("name", "Sam")
	if w.Value("name") != "" {
		t.Fatalf("expected receiver untouched, got %q", w.Value("name"))
	}
}

func TestCompleteBuyerOnboarding(t *testing.T) {
	w, _ := Start(domain.RoleBuyer)
	w = answerAll(t, w, map[string]string{"name": "Jane Doe", "email": " Jane@Example.com ", "location": "Austin, TX"})
	w, _, _ = w.Next()
	w = answerAll(t, w, map[string]string{"company": "Acme", "role": "CEO", "experience": "10", "industry": "Technology"})
	w, _, _ = w.Next()
	w = answerAll(t, w, map[string]string{"investmentRange": "$1M - $5M", "dealExperience": "2", "timeline": "6-12 months"})
	if !w.IsLastStep() {
		t.Fatalf("expected last step")
	}

	done, user, err := w.Next()
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Phase() != PhaseCompleted || done.Progress() != 100 {
		t.Fatalf("expected completed phase, got %s", done.Phase())
	}
	if user == nil {
		t.Fatalf("expected user")
	}
	if user.Name != "Jane Doe" || user.Email != "jane@example.com" || user.Role != domain.RoleBuyer {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.Profile.Experience != 10 || user.Profile.Company != "Acme" || user.Profile.Location != "Austin, TX" {
		t.Fatalf("unexpected profile %+v", user.Profile)
	}
	if !user.Onboarding.Completed || user.Onboarding.CurrentStep != 3 || user.Onboarding.TotalSteps != 3 {
		t.Fatalf("unexpected onboarding %+v", user.Onboarding)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if _, err := done.Answer("name", "x"); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected ErrCompleted, got %v", err)
	}
}

func TestCompleteSellerDefaultsExperience(t *testing.T) {
	w, _ := Start(domain.RoleSeller)
	for !w.IsLastStep() {
		w = fillRequired(t, w)
		w, _, _ = w.Next()
	}
	w = fillRequired(t, w)
	_, user, err := w.Next()
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if user.Role != domain.RoleSeller || user.Profile.Experience != 0 {
		t.Fatalf("expected seller with zero experience, got %+v", user)
	}
}

func TestAnswerUnknownQuestion(t *testing.T) {
	w, _ := Start(domain.RoleBuyer)
	if _, err := w.Answer("company", "Acme"); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion for a later step, got %v", err)
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		q    Question
		raw  string
		want string
	}{
		{Question{ID: "name", Kind: KindText}, "  Jane   Doe ", "Jane Doe"},
		{Question{ID: "email", Kind: KindText}, " JANE@Example.COM", "jane@example.com"},
		{Question{ID: "phone", Kind: KindText}, "+1 (555) 123-4567", "+15551234567"},
		{Question{ID: "phone", Kind: KindText}, "  ", ""},
		{Question{ID: "reasonForSelling", Kind: KindTextarea}, " line one\nline two ", "line one\nline two"},
	}
	for _, tt := range tests {
		if got := normalizeAnswer(tt.q, tt.raw); got != tt.want {
			t.Errorf("normalizeAnswer(%s, %q) = %q, want %q", tt.q.ID, tt.raw, got, tt.want)
		}
	}
}
