package web

import (
	"net/http"

	"github.com/jonathan/skillsync/internal/editor"
	"github.com/jonathan/skillsync/internal/onboarding"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/session"
	"go.uber.org/zap"
)

type stepView struct {
	Number  int
	Title   string
	Current bool
	Done    bool
}

// wizardView is the onboarding page.
type wizardView struct {
	Step    onboarding.Step
	Title   string
	Percent int
	Steps   []stepView
	Fields  fieldsView
	Review  []profile.Card
	First   bool
	Last    bool
}

func (s *Server) newWizardView(d wizardDraft) wizardView {
	w := d.Wizard
	steps := make([]stepView, 0, onboarding.TotalSteps)
	for n := onboarding.StepPersonal; n <= onboarding.StepReview; n++ {
		steps = append(steps, stepView{Number: int(n), Title: n.Title(), Current: n == w.Current, Done: n < w.Current})
	}

	view := wizardView{
		Step:    w.Current,
		Title:   w.Current.Title(),
		Percent: w.Current.Percent(),
		Steps:   steps,
		Fields:  newFieldsView(w.State, d.Pending, editor.YearOptions(s.now())),
		First:   w.Current == onboarding.StepPersonal,
		Last:    w.Current == onboarding.StepReview,
	}
	if view.Last {
		view.Review = profile.SummaryCards(w.State.FullName, w.State)
	}
	return view
}

func (s *Server) handleOnboardingPage(w http.ResponseWriter, r *http.Request) {
	st, ok := s.guard(w, r, session.RouteOnboarding)
	if !ok {
		return
	}
	ctx := r.Context()

	key, err := s.draftKey(w, r, wizardDraftKind)
	if err != nil {
		s.logger.Error("failed to resolve draft", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	draft, found := s.loadWizard(ctx, key)
	if !found {
		wiz, done := onboarding.Start(ctx, st.OnboardingComplete, s.client(st), s.logger)
		if done {
			st.OnboardingComplete = true
			s.saveState(w, r, st)
			s.redirect(w, r, session.RouteDashboard)
			return
		}
		draft = wizardDraft{Wizard: wiz, Pending: map[string]string{}}
		s.saveDraft(ctx, key, draft)
	}

	s.render(w, r, http.StatusOK, "onboarding", pageData{Title: "Get started", Content: s.newWizardView(draft)})
}

func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	st, ok := s.guard(w, r, session.RouteOnboarding)
	if !ok {
		return
	}
	ctx := r.Context()

	key, err := s.draftKey(w, r, wizardDraftKind)
	if err != nil {
		s.logger.Error("failed to resolve draft", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	draft, found := s.loadWizard(ctx, key)
	if !found {
		s.redirect(w, r, session.RouteOnboarding)
		return
	}
	wiz := draft.Wizard

	if err := r.ParseForm(); err != nil {
		s.notify(w, r, errorNotice(&formError{Message: "Some fields could not be read.", Err: err}, invalidFormTitle, ""))
		s.redirect(w, r, session.RouteOnboarding)
		return
	}
	form, err := s.decodeFields(r.PostForm)
	if err == nil {
		err = form.apply(&wiz.State, draft.Pending)
	}
	if err != nil {
		s.notify(w, r, errorNotice(err, invalidFormTitle, ""))
		s.saveDraft(ctx, key, draft)
		s.redirect(w, r, session.RouteOnboarding)
		return
	}

	switch a := parseAction(form.Action); {
	case a.isField():
		if err := applyAction(&wiz.State, draft.Pending, a); err != nil {
			s.notify(w, r, errorNotice(err, invalidFormTitle, ""))
		}
	case a.Kind == actionNext:
		if err := wiz.Next(); err != nil {
			s.notify(w, r, errorNotice(err, onboarding.ValidationTitle, ""))
		}
	case a.Kind == actionBack:
		wiz.Back()
	case a.Kind == actionSubmit:
		err := wiz.Submit(ctx, s.client(st))
		if err == nil {
			s.deleteDraft(ctx, key)
			st.OnboardingComplete = true
			s.saveState(w, r, st)
			s.notify(w, r, session.Notice{Kind: session.KindSuccess, Title: onboarding.SubmittedTitle, Message: onboarding.SubmittedMessage})
			s.redirect(w, r, session.RouteDashboard)
			return
		}
		s.logger.Warn("onboarding submission failed", zap.Error(err))
		s.saveDraft(ctx, key, draft)
		if s.signOutIfRejected(w, r, err) {
			return
		}
		s.notify(w, r, errorNotice(err, onboarding.SubmitFailedTitle, onboarding.SubmitFailedMessage))
		s.redirect(w, r, session.RouteOnboarding)
		return
	}

	s.saveDraft(ctx, key, draft)
	s.redirect(w, r, session.RouteOnboarding)
}
