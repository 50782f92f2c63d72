package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jonathan/skillsync/internal/editor"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/session"
	"github.com/jonathan/skillsync/internal/types"
	"go.uber.org/zap"
)

// multipartOverhead is the room left for the text fields of the account form
// on top of the image cap.
const multipartOverhead = 1 << 20

// profileView is the read-only profile page.
type profileView struct {
	User    types.User
	Name    string
	Initial string
	Image   string
	Cards   []profile.Card
}

// profileEditView is one open section.
type profileEditView struct {
	Section    profile.Section
	Title      string
	Fields     fieldsView
	Account    *profile.FormState
	Initial    string
	ImageTypes string
}

func editRoute(section profile.Section) session.Route {
	return session.Route("/profile/edit/" + string(section))
}

// loadSnapshot fetches the stored profile. ok is false when the browser has
// already been redirected.
func (s *Server) loadSnapshot(w http.ResponseWriter, r *http.Request, st session.State) (profile.Snapshot, bool) {
	resp, err := s.client(st).FetchProfile(r.Context())
	if err != nil {
		if s.signOutIfRejected(w, r, err) {
			return profile.Snapshot{}, false
		}
		s.logger.Warn("failed to load profile", zap.Error(err))
		s.notify(w, r, errorNotice(err, loadFailedTitle, loadFailedMessage))
		return profile.Snapshot{Data: map[string]any{}}, true
	}
	return profile.SnapshotFrom(resp), true
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	st, ok := s.guard(w, r, session.RouteProfile)
	if !ok {
		return
	}

	// Leaving the editor discards any open section.
	if key, err := s.draftKey(w, r, profileDraftKind); err == nil {
		s.deleteDraft(r.Context(), key)
	}

	snap, ok := s.loadSnapshot(w, r, st)
	if !ok {
		return
	}

	user := snap.User
	view := profileView{
		User:    user,
		Name:    user.Name(),
		Initial: user.Initial(),
		Image:   user.Image(),
		Cards:   snap.Cards(),
	}
	s.render(w, r, http.StatusOK, "profile", pageData{Title: "Profile", User: &user, Nav: true, Content: view})
}

func (s *Server) handleProfileEditPage(w http.ResponseWriter, r *http.Request) {
	section, err := profile.ParseSection(r.PathValue("section"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	st, ok := s.guard(w, r, session.RouteProfile)
	if !ok {
		return
	}
	ctx := r.Context()

	key, err := s.draftKey(w, r, profileDraftKind)
	if err != nil {
		s.logger.Error("failed to resolve draft", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	draft, found := s.loadEditor(ctx, key)
	if !found || draft.Editor.Section != section {
		snap, ok := s.loadSnapshot(w, r, st)
		if !ok {
			return
		}
		ed := profile.NewEditor(snap)
		ed.Open(section)
		draft = profileDraft{Editor: ed, Pending: map[string]string{}}
		s.saveEditor(ctx, key, draft)
	}

	ed := draft.Editor
	view := profileEditView{
		Section:    section,
		Title:      section.Title(),
		Fields:     newFieldsView(ed.Form.ProfileData, draft.Pending, editor.YearOptions(s.now())),
		Initial:    ed.Snapshot.User.Initial(),
		ImageTypes: strings.Join(s.images.AllowedTypes, ","),
	}
	if section == profile.SectionAccount {
		view.Account = ed.Form
	}
	user := ed.Snapshot.User
	s.render(w, r, http.StatusOK, "profile_edit", pageData{Title: "Edit " + section.Title(), User: &user, Nav: true, Content: view})
}

func (s *Server) handleProfileEdit(w http.ResponseWriter, r *http.Request) {
	section, err := profile.ParseSection(r.PathValue("section"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	st, ok := s.guard(w, r, session.RouteProfile)
	if !ok {
		return
	}
	ctx := r.Context()
	back := editRoute(section)

	key, err := s.draftKey(w, r, profileDraftKind)
	if err != nil {
		s.logger.Error("failed to resolve draft", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	draft, found := s.loadEditor(ctx, key)
	if !found || draft.Editor.Section != section {
		s.redirect(w, r, back)
		return
	}
	ed := draft.Editor

	r.Body = http.MaxBytesReader(w, r.Body, s.images.MaxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		s.notify(w, r, errorNotice(&formError{Message: "The form could not be read.", Err: err}, invalidFormTitle, ""))
		s.redirect(w, r, back)
		return
	}

	form, err := s.decodeFields(r.PostForm)
	if err == nil {
		err = form.apply(&ed.Form.ProfileData, draft.Pending)
	}
	if err == nil && section == profile.SectionAccount {
		form.applyAccount(ed.Form)
		err = s.readUpload(r, ed.Form)
	}
	if err != nil {
		s.notify(w, r, errorNotice(err, invalidFormTitle, ""))
		s.saveEditor(ctx, key, draft)
		s.redirect(w, r, back)
		return
	}

	switch a := parseAction(form.Action); {
	case a.isField():
		if err := applyAction(&ed.Form.ProfileData, draft.Pending, a); err != nil {
			s.notify(w, r, errorNotice(err, invalidFormTitle, ""))
		}
	case a.Kind == actionCancel:
		s.deleteDraft(ctx, key)
		s.redirect(w, r, session.RouteProfile)
		return
	case a.Kind == actionSave:
		err := ed.Save(ctx, s.client(st))
		if err == nil {
			s.deleteDraft(ctx, key)
			s.notify(w, r, savedNotice(section))
			s.redirect(w, r, session.RouteProfile)
			return
		}
		s.logger.Info("profile save failed", zap.String("section", string(section)), zap.Error(err))
		if s.signOutIfRejected(w, r, err) {
			return
		}
		fallback := profile.SaveFailedMessage
		if section == profile.SectionAccount {
			fallback = profile.AccountFailedMessage
		}
		s.notify(w, r, errorNotice(err, profile.SaveFailedTitle, fallback))
	}

	s.saveEditor(ctx, key, draft)
	s.redirect(w, r, back)
}

// readUpload turns an uploaded profile image into a data URI on form. No file
// leaves the current image in place.
func (s *Server) readUpload(r *http.Request, form *profile.FormState) error {
	file, _, err := r.FormFile("profileImage")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	if err != nil {
		return &formError{Message: "The image could not be read.", Err: err}
	}
	defer file.Close()

	uri, err := profile.ReadImage(file, s.images)
	if err != nil {
		return err
	}
	form.ProfileImage = uri
	return nil
}

func savedNotice(section profile.Section) session.Notice {
	if section == profile.SectionAccount {
		return session.Notice{Kind: session.KindSuccess, Title: profile.AccountSavedTitle, Message: profile.AccountSavedMessage}
	}
	return session.Notice{Kind: session.KindSuccess, Title: profile.SavedTitle, Message: profile.SavedMessage}
}
