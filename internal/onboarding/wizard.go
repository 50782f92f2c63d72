package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/skillsync/internal/types"
	"go.uber.org/zap"
)

// Notice texts for submission.
const (
	SubmittedTitle      = "Onboarding complete"
	SubmittedMessage    = "You are all set to access the dashboard."
	SubmitFailedTitle   = "Submission failed"
	SubmitFailedMessage = "Please retry or check your connection."
)

// ErrNotOnReview is returned by Submit before the review step.
var ErrNotOnReview = errors.New("onboarding can only be submitted from the review step")

// Submitter sends the full onboarding aggregate to the backend.
type Submitter interface {
	SaveOnboarding(ctx context.Context, data any) (*types.MessageResponse, error)
}

// Loader fetches the stored profile.
type Loader interface {
	FetchProfile(ctx context.Context) (*types.ProfileResponse, error)
}

// Wizard is the aggregate onboarding state and the current step. It is stored
// as a draft between requests.
type Wizard struct {
	State   types.ProfileData `json:"state"`
	Current Step              `json:"step"`
}

// New returns a wizard on step 1 with empty state.
func New() *Wizard {
	return &Wizard{State: types.NewProfileData(), Current: StepPersonal}
}

// Next validates the current step and advances when it passes. On failure the
// step is unchanged and a *ValidationError is returned.
func (w *Wizard) Next() error {
	if messages := ValidateStep(w.Current, w.State); len(messages) > 0 {
		return &ValidationError{Step: w.Current, Messages: messages}
	}
	if int(w.Current) < TotalSteps {
		w.Current++
	}
	return nil
}

// Back moves one step back. It never validates.
func (w *Wizard) Back() {
	if w.Current > StepPersonal {
		w.Current--
	}
}

// Submit sends the whole aggregate to the backend. On any failure the wizard
// stays on the review step with its state intact.
func (w *Wizard) Submit(ctx context.Context, s Submitter) error {
	if w.Current != StepReview {
		return ErrNotOnReview
	}
	if messages := ValidateStep(w.Current, w.State); len(messages) > 0 {
		return &ValidationError{Step: w.Current, Messages: messages}
	}

	w.State.Normalize()
	if _, err := s.SaveOnboarding(ctx, w.State); err != nil {
		return fmt.Errorf("failed to submit onboarding: %w", err)
	}
	return nil
}

// Hydrate replaces the state with the stored profile. The name always comes
// from the account, not from the stored data.
func (w *Wizard) Hydrate(resp *types.ProfileResponse) {
	state := types.DecodeProfileData(resp.Data)
	state.FullName = resp.User.Name()
	w.State = state
}

// Start opens the wizard for a session. It reports redirect=true when
// onboarding is already complete, either locally or according to the backend;
// the caller then sends the browser to the dashboard. A failed load starts
// with empty state.
func Start(ctx context.Context, complete bool, loader Loader, logger *zap.Logger) (w *Wizard, redirect bool) {
	if complete {
		return nil, true
	}

	w = New()
	resp, err := loader.FetchProfile(ctx)
	if err != nil {
		logger.Warn("failed to load profile for onboarding, starting empty", zap.Error(err))
		return w, false
	}
	if resp.Completed {
		return nil, true
	}
	w.Hydrate(resp)
	return w, false
}
