package onboarding

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vanshika/bizbridge/internal/domain"
)

var (
	// ErrRoleUnset is returned by step operations before a role was chosen.
	ErrRoleUnset = errors.New("onboarding role not selected")
	// ErrRoleLocked is returned when a role is selected a second time.
	ErrRoleLocked = errors.New("onboarding role already selected")
	// ErrIncomplete is returned by Next while a required answer is missing.
	ErrIncomplete = errors.New("required questions unanswered")
	// ErrCompleted is returned by any transition after completion.
	ErrCompleted = errors.New("onboarding already completed")
	// ErrUnknownQuestion is returned when answering a question not on the current step.
	ErrUnknownQuestion = errors.New("unknown question")
)

// Phase is the coarse state of a Wizard.
type Phase int

const (
	PhaseRoleUnset Phase = iota
	PhaseInProgress
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseRoleUnset:
		return "role_unset"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Wizard walks a user through the questionnaire. It is a value: every
// transition returns a new Wizard and leaves the receiver untouched.
type Wizard struct {
	role      domain.Role
	steps     []Step
	current   int
	answers   map[string]string
	completed bool
}

// New returns a wizard waiting for a role.
func New() Wizard {
	return Wizard{}
}

// Start returns a wizard at the first step for role.
func Start(role domain.Role) (Wizard, error) {
	return New().SelectRole(role)
}

// SelectRole chooses the role and moves to the first step. The role cannot be
// changed afterwards.
func (w Wizard) SelectRole(role domain.Role) (Wizard, error) {
	if w.role != "" {
		return w, ErrRoleLocked
	}
	if !role.Valid() {
		return w, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	return Wizard{
		role:    role,
		steps:   Steps(role),
		answers: map[string]string{},
	}, nil
}

// Phase reports the wizard's coarse state.
func (w Wizard) Phase() Phase {
	switch {
	case w.completed:
		return PhaseCompleted
	case w.role == "":
		return PhaseRoleUnset
	default:
		return PhaseInProgress
	}
}

// Role returns the selected role or "".
func (w Wizard) Role() domain.Role { return w.role }

// StepIndex returns the zero-based index of the current step.
func (w Wizard) StepIndex() int { return w.current }

// TotalSteps returns the number of steps for the selected role.
func (w Wizard) TotalSteps() int { return len(w.steps) }

// CurrentStep returns the step being answered.
func (w Wizard) CurrentStep() (Step, bool) {
	if w.Phase() != PhaseInProgress {
		return Step{}, false
	}
	return w.steps[w.current], true
}

// IsLastStep reports whether Next would complete the questionnaire.
func (w Wizard) IsLastStep() bool {
	return w.Phase() == PhaseInProgress && w.current == len(w.steps)-1
}

// Progress returns completion in percent, counting the current step as done.
func (w Wizard) Progress() int {
	if len(w.steps) == 0 {
		return 0
	}
	if w.completed {
		return 100
	}
	return (w.current + 1) * 100 / len(w.steps)
}

// Value returns the stored answer for a question id.
func (w Wizard) Value(id string) string {
	return w.answers[id]
}

// Answer records a value for a question of the current step.
func (w Wizard) Answer(id, raw string) (Wizard, error) {
	step, ok := w.CurrentStep()
	if !ok {
		if w.completed {
			return w, ErrCompleted
		}
		return w, ErrRoleUnset
	}
	for _, q := range step.Questions {
		if q.ID != id {
			continue
		}
		next := w.clone()
		next.answers[id] = normalizeAnswer(q, raw)
		return next, nil
	}
	return w, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
}

// CanProceed is true when every required question of the current step has a
// non-empty answer.
func (w Wizard) CanProceed() bool {
	step, ok := w.CurrentStep()
	if !ok {
		return false
	}
	for _, q := range step.Questions {
		if q.Required && w.answers[q.ID] == "" {
			return false
		}
	}
	return true
}

// Next advances to the following step. On the last step it completes the
// questionnaire and returns the synthesized user.
func (w Wizard) Next() (Wizard, *domain.User, error) {
	switch w.Phase() {
	case PhaseRoleUnset:
		return w, nil, ErrRoleUnset
	case PhaseCompleted:
		return w, nil, ErrCompleted
	}
	if !w.CanProceed() {
		return w, nil, ErrIncomplete
	}
	next := w.clone()
	if !w.IsLastStep() {
		next.current++
		return next, nil, nil
	}
	next.completed = true
	return next, next.user(), nil
}

// Back returns to the previous step. It is a no-op on the first step.
func (w Wizard) Back() Wizard {
	if w.Phase() != PhaseInProgress || w.current == 0 {
		return w
	}
	next := w.clone()
	next.current--
	return next
}

func (w Wizard) user() *domain.User {
	name := w.answers["name"]
	if name == "" {
		name = "User"
	}
	total := len(w.steps)
	return &domain.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: w.answers["email"],
		Role:  w.role,
		Profile: domain.Profile{
			Company:    w.answers["company"],
			Industry:   w.answers["industry"],
			Experience: atoiOrZero(w.answers["experience"]),
			Location:   w.answers["location"],
		},
		Onboarding: domain.OnboardingProgress{
			Completed:   true,
			CurrentStep: total,
			TotalSteps:  total,
		},
	}
}

func (w Wizard) clone() Wizard {
	cp := w
	cp.answers = make(map[string]string, len(w.answers))
	for k, v := range w.answers {
		cp.answers[k] = v
	}
	return cp
}
