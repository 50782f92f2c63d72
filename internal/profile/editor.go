package profile

import (
	"context"
	"fmt"

	"github.com/jonathan/skillsync/internal/types"
)

// Notice texts for section saves.
const (
	SavedTitle            = "Profile updated"
	SavedMessage          = "Your changes have been saved."
	AccountSavedTitle     = "Account updated"
	AccountSavedMessage   = "Your account settings have been saved."
	SaveFailedTitle       = "Update failed"
	SaveFailedMessage     = "Unable to save changes right now."
	AccountFailedMessage  = "Unable to save account changes right now."
	emailRequiredTitle    = "Email required"
	emailRequiredMessage  = "Please provide a valid email."
	passwordMismatchTitle = "Passwords do not match"
	passwordMismatchMsg   = "Confirm your new password before saving."
)

// RuleError is a save blocked before any backend call.
type RuleError struct {
	Title   string
	Message string
}

func (e *RuleError) Error() string {
	return e.Title + ": " + e.Message
}

// API is the part of the backend the editor saves through.
type API interface {
	UpdateAccount(ctx context.Context, update types.AccountUpdate) (*types.UserResponse, error)
	SaveOnboarding(ctx context.Context, data any) (*types.MessageResponse, error)
}

// Editor is the profile page state: the snapshot and at most one open section.
type Editor struct {
	Snapshot Snapshot   `json:"snapshot"`
	Section  Section    `json:"section,omitempty"`
	Form     *FormState `json:"form,omitempty"`
}

// NewEditor returns a closed editor over s.
func NewEditor(s Snapshot) *Editor {
	return &Editor{Snapshot: s}
}

// Open starts editing section with a form derived fresh from the snapshot.
// Any open section is discarded.
func (e *Editor) Open(section Section) {
	form := e.Snapshot.Form()
	e.Section = section
	e.Form = &form
}

// IsOpen reports whether a section is being edited.
func (e *Editor) IsOpen() bool {
	return e.Section != "" && e.Form != nil
}

// Close discards the open form.
func (e *Editor) Close() {
	e.Section = ""
	e.Form = nil
}

// Save submits the open section. On success the snapshot is updated and the
// editor closes; on failure it stays open with the form intact. Account saves
// return a *RuleError without calling the backend when the form breaks a rule.
func (e *Editor) Save(ctx context.Context, api API) error {
	if !e.IsOpen() {
		return fmt.Errorf("no profile section is open")
	}
	if e.Section == SectionAccount {
		return e.saveAccount(ctx, api)
	}
	return e.saveSection(ctx, api)
}

// CheckAccount applies the account rules to form.
func CheckAccount(form *FormState) error {
	if form.Email == "" {
		return &RuleError{Title: emailRequiredTitle, Message: emailRequiredMessage}
	}
	if form.NewPassword != "" && form.NewPassword != form.ConfirmPassword {
		return &RuleError{Title: passwordMismatchTitle, Message: passwordMismatchMsg}
	}
	return nil
}

func (e *Editor) saveAccount(ctx context.Context, api API) error {
	form := e.Form
	if err := CheckAccount(form); err != nil {
		return err
	}

	update := types.AccountUpdate{
		FullName:     form.FullName,
		Email:        form.Email,
		ProfileImage: form.ProfileImage,
	}
	if form.NewPassword != "" {
		update.CurrentPassword = form.CurrentPassword
		update.NewPassword = form.NewPassword
	}

	resp, err := api.UpdateAccount(ctx, update)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	e.Snapshot.User = resp.User
	form.CurrentPassword = ""
	form.NewPassword = ""
	form.ConfirmPassword = ""
	e.Close()
	return nil
}

func (e *Editor) saveSection(ctx context.Context, api API) error {
	merged := e.Snapshot.Merge(e.Section, *e.Form)

	name := e.Snapshot.User.Name()
	if e.Section == SectionPersonal {
		name = e.Form.FullName
	}

	if _, err := api.SaveOnboarding(ctx, merged.Payload(name)); err != nil {
		return fmt.Errorf("failed to save %s section: %w", e.Section, err)
	}

	if e.Section == SectionPersonal && e.Form.FullName != "" {
		fullName := e.Form.FullName
		merged.User.FullName = &fullName
	}
	e.Snapshot = merged
	e.Close()
	return nil
}
