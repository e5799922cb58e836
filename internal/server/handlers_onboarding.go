package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/logging"
	"github.com/vanshika/bizbridge/internal/onboarding"
	"github.com/vanshika/bizbridge/internal/session"
)

type landingView struct {
	Error string
}

type onboardingView struct {
	RoleUnset  bool
	Role       domain.Role
	StepNumber int
	TotalSteps int
	Progress   int
	Step       onboarding.Step
	Questions  []questionView
	CanProceed bool
	IsLast     bool
	Error      string
}

type questionView struct {
	onboarding.Question
	Name  string
	Value string
}

func (h *handlers) landing(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, "landing.html", newPage("Welcome", sess.State().User(), ""), landingView{})
}

// chooseRole starts the questionnaire for the posted role and moves straight
// to the first step.
func (h *handlers) chooseRole(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	role, err := domain.ParseRole(r.PostFormValue("role"))
	if err != nil {
		h.render(w, r, http.StatusBadRequest, "landing.html", newPage("Welcome", sess.State().User(), ""),
			landingView{Error: "Choose whether you are buying or selling a business."})
		return
	}
	wizard, err := onboarding.Start(role)
	if err != nil {
		h.failed(w, r, "start onboarding", err)
		return
	}
	sess.Update(func(st session.State) session.State { return st.WithWizard(wizard) })
	logging.FromContext(r.Context()).Info("onboarding started", "role", role)
	http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
}

func (h *handlers) onboarding(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	st := sess.State()
	if user := st.User(); user != nil && user.Role.Valid() && st.Wizard().Phase() != onboarding.PhaseInProgress {
		http.Redirect(w, r, "/dashboard/"+string(user.Role), http.StatusSeeOther)
		return
	}
	h.renderWizard(w, r, http.StatusOK, st, "")
}

// onboardingAction handles the wizard form. Actions: role, save, next, back.
// Answers for the current step are recorded before the action runs.
func (h *handlers) onboardingAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	action := r.PostForm.Get("action")

	if action == "role" {
		h.selectRole(w, r, sess)
		return
	}

	var (
		user   *domain.User
		actErr error
	)
	st := sess.Update(func(st session.State) session.State {
		wizard := applyAnswers(st.Wizard(), r)
		switch action {
		case "back":
			wizard = wizard.Back()
		case "next":
			next, completed, err := wizard.Next()
			if err != nil {
				actErr = err
				return st.WithWizard(wizard)
			}
			wizard = next
			if completed != nil {
				user = completed
				return st.WithWizard(wizard).Login(completed)
			}
		}
		return st.WithWizard(wizard)
	})

	switch {
	case errors.Is(actErr, onboarding.ErrIncomplete):
		h.renderWizard(w, r, http.StatusUnprocessableEntity, st, "")
	case errors.Is(actErr, onboarding.ErrRoleUnset):
		http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
	case errors.Is(actErr, onboarding.ErrCompleted):
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case actErr != nil:
		h.failed(w, r, "advance onboarding", actErr)
	case user != nil:
		logging.FromContext(r.Context()).Info("onboarding completed", "user_id", user.ID, "role", user.Role)
		http.Redirect(w, r, "/dashboard/"+string(user.Role), http.StatusSeeOther)
	case action == "save":
		h.renderWizard(w, r, http.StatusOK, st, "")
	default:
		http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
	}
}

func (h *handlers) selectRole(w http.ResponseWriter, r *http.Request, sess session.Handle) {
	role, err := domain.ParseRole(r.PostForm.Get("role"))
	if err != nil {
		h.renderWizard(w, r, http.StatusBadRequest, sess.State(), "Choose a role to continue.")
		return
	}
	var selErr error
	st := sess.Update(func(st session.State) session.State {
		wizard, err := st.Wizard().SelectRole(role)
		if err != nil {
			selErr = err
			return st
		}
		return st.WithWizard(wizard)
	})
	if errors.Is(selErr, onboarding.ErrRoleLocked) {
		h.renderWizard(w, r, http.StatusConflict, st, "Your role is already chosen. Start over from the home page to switch.")
		return
	}
	if selErr != nil {
		h.failed(w, r, "select role", selErr)
		return
	}
	http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
}

// applyAnswers records every posted answer that belongs to the current step.
func applyAnswers(w onboarding.Wizard, r *http.Request) onboarding.Wizard {
	step, ok := w.CurrentStep()
	if !ok {
		return w
	}
	for _, q := range step.Questions {
		values, posted := r.PostForm[answerField(q.ID)]
		if !posted {
			continue
		}
		next, err := w.Answer(q.ID, strings.Join(values, ", "))
		if err == nil {
			w = next
		}
	}
	return w
}

func answerField(id string) string { return "answer." + id }

func (h *handlers) renderWizard(w http.ResponseWriter, r *http.Request, status int, st session.State, msg string) {
	wizard := st.Wizard()
	view := onboardingView{
		RoleUnset:  wizard.Phase() == onboarding.PhaseRoleUnset,
		Role:       wizard.Role(),
		StepNumber: wizard.StepIndex() + 1,
		TotalSteps: wizard.TotalSteps(),
		Progress:   wizard.Progress(),
		CanProceed: wizard.CanProceed(),
		IsLast:     wizard.IsLastStep(),
		Error:      msg,
	}
	if step, ok := wizard.CurrentStep(); ok {
		view.Step = step
		for _, q := range step.Questions {
			view.Questions = append(view.Questions, questionView{Question: q, Name: answerField(q.ID), Value: wizard.Value(q.ID)})
		}
	}
	h.render(w, r, status, "onboarding.html", newPage("Get started", st.User(), ""), view)
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if user := sess.State().User(); user != nil {
		logging.FromContext(r.Context()).Info("user signed out", "user_id", user.ID)
	}
	sess.End()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
