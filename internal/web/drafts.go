package web

import (
	"context"

	"github.com/jonathan/skillsync/internal/onboarding"
	"github.com/jonathan/skillsync/internal/profile"
	"go.uber.org/zap"
)

// Draft kinds, one of each per browser.
const (
	wizardDraftKind  = "wizard"
	profileDraftKind = "profile"
)

// wizardDraft is the onboarding wizard between requests.
type wizardDraft struct {
	Wizard  *onboarding.Wizard `json:"wizard"`
	Pending map[string]string  `json:"pending,omitempty"`
}

// profileDraft is the profile editor between requests. Password fields are
// never stored.
type profileDraft struct {
	Editor  *profile.Editor   `json:"editor"`
	Pending map[string]string `json:"pending,omitempty"`
}

// loadDraft reads a draft into v. A store failure is logged and treated as no
// draft.
func (s *Server) loadDraft(ctx context.Context, key string, v any) bool {
	found, err := s.drafts.Load(ctx, key, v)
	if err != nil {
		s.logger.Warn("failed to load draft", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func (s *Server) saveDraft(ctx context.Context, key string, v any) {
	if err := s.drafts.Save(ctx, key, v); err != nil {
		s.logger.Error("failed to save draft", zap.String("key", key), zap.Error(err))
	}
}

func (s *Server) deleteDraft(ctx context.Context, key string) {
	if err := s.drafts.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete draft", zap.String("key", key), zap.Error(err))
	}
}

func (s *Server) loadWizard(ctx context.Context, key string) (wizardDraft, bool) {
	var d wizardDraft
	if !s.loadDraft(ctx, key, &d) || d.Wizard == nil || !d.Wizard.Current.Valid() {
		return wizardDraft{}, false
	}
	if d.Pending == nil {
		d.Pending = map[string]string{}
	}
	d.Wizard.State.Normalize()
	return d, true
}

func (s *Server) loadEditor(ctx context.Context, key string) (profileDraft, bool) {
	var d profileDraft
	if !s.loadDraft(ctx, key, &d) || d.Editor == nil || !d.Editor.IsOpen() {
		return profileDraft{}, false
	}
	if d.Pending == nil {
		d.Pending = map[string]string{}
	}
	d.Editor.Form.Normalize()
	return d, true
}

func (s *Server) saveEditor(ctx context.Context, key string, d profileDraft) {
	if d.Editor.Form != nil {
		form := *d.Editor.Form
		form.CurrentPassword = ""
		form.NewPassword = ""
		form.ConfirmPassword = ""
		ed := *d.Editor
		ed.Form = &form
		d.Editor = &ed
	}
	s.saveDraft(ctx, key, d)
}
