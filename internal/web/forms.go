package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/jonathan/skillsync/internal/editor"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/types"
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// educationRow is one posted row of educationalBackground. Absent fields stay
// nil so they leave the stored row unchanged.
type educationRow struct {
	Institution *string `schema:"institution"`
	Degree      *string `schema:"degree"`
	Field       *string `schema:"field"`
	StartYear   *string `schema:"startYear"`
	EndYear     *string `schema:"endYear"`
	IsCurrent   *bool   `schema:"isCurrent"`
}

func (r educationRow) patch() types.EducationPatch {
	return types.EducationPatch{
		Institution: r.Institution,
		Degree:      r.Degree,
		Field:       r.Field,
		StartYear:   r.StartYear,
		EndYear:     r.EndYear,
		IsCurrent:   r.IsCurrent,
	}
}

type roleRow struct {
	Title       *string `schema:"title"`
	Company     *string `schema:"company"`
	StartMonth  *string `schema:"startMonth"`
	StartYear   *string `schema:"startYear"`
	EndMonth    *string `schema:"endMonth"`
	EndYear     *string `schema:"endYear"`
	IsPresent   *bool   `schema:"isPresent"`
	Description *string `schema:"description"`
}

func (r roleRow) patch() types.RolePatch {
	return types.RolePatch{
		Title:       r.Title,
		Company:     r.Company,
		StartMonth:  r.StartMonth,
		StartYear:   r.StartYear,
		EndMonth:    r.EndMonth,
		EndYear:     r.EndYear,
		IsPresent:   r.IsPresent,
		Description: r.Description,
	}
}

// pendingTags are the tag inputs not yet added to their lists.
type pendingTags struct {
	Certifications  *string `schema:"certifications"`
	TechnicalSkills *string `schema:"technicalSkills"`
	SoftSkills      *string `schema:"softSkills"`
	SkillsToImprove *string `schema:"skillsToImprove"`
}

// fieldsForm is every field a wizard step or profile section can post. Each
// page posts only its own fields.
type fieldsForm struct {
	Action string `schema:"action"`

	FullName        *string `schema:"fullName"`
	Age             *string `schema:"age"`
	Location        *string `schema:"location"`
	CurrentRole     *string `schema:"currentRole"`
	Education       *string `schema:"education"`
	FieldOfStudy    *string `schema:"fieldOfStudy"`
	GraduationYear  *string `schema:"graduationYear"`
	ExperienceLevel *string `schema:"experienceLevel"`
	Timeframe       *string `schema:"timeframe"`
	WorkPreference  *string `schema:"workPreference"`

	EducationalBackground []educationRow `schema:"educationalBackground"`
	PreviousRoles         []roleRow      `schema:"previousRoles"`

	Pending pendingTags `schema:"pending"`

	Email           *string `schema:"email"`
	CurrentPassword *string `schema:"currentPassword"`
	NewPassword     *string `schema:"newPassword"`
	ConfirmPassword *string `schema:"confirmPassword"`
	RemoveImage     bool    `schema:"removeImage"`
}

func (s *Server) decodeFields(values url.Values) (fieldsForm, error) {
	var f fieldsForm
	if err := s.decoder.Decode(&f, values); err != nil {
		return f, &formError{Message: "Some fields could not be read.", Err: err}
	}
	return f, nil
}

// apply copies the posted values into p. Rows go through editor.UpdateRow so
// the ongoing flags clear their end dates; rows past the end of p's lists are
// ignored.
func (f fieldsForm) apply(p *types.ProfileData, pending map[string]string) error {
	for _, field := range []struct {
		dst *string
		src *string
	}{
		{&p.FullName, f.FullName},
		{&p.Age, f.Age},
		{&p.Location, f.Location},
		{&p.CurrentRole, f.CurrentRole},
		{&p.Education, f.Education},
		{&p.FieldOfStudy, f.FieldOfStudy},
		{&p.GraduationYear, f.GraduationYear},
		{&p.ExperienceLevel, f.ExperienceLevel},
		{&p.Timeframe, f.Timeframe},
		{&p.WorkPreference, f.WorkPreference},
	} {
		if field.src != nil {
			*field.dst = *field.src
		}
	}

	var err error
	for i, row := range f.EducationalBackground {
		if i >= len(p.EducationalBackground) {
			break
		}
		if p.EducationalBackground, err = editor.UpdateRow(p.EducationalBackground, i, row.patch()); err != nil {
			return err
		}
	}
	for i, row := range f.PreviousRoles {
		if i >= len(p.PreviousRoles) {
			break
		}
		if p.PreviousRoles, err = editor.UpdateRow(p.PreviousRoles, i, row.patch()); err != nil {
			return err
		}
	}

	for name, value := range map[string]*string{
		"certifications":  f.Pending.Certifications,
		"technicalSkills": f.Pending.TechnicalSkills,
		"softSkills":      f.Pending.SoftSkills,
		"skillsToImprove": f.Pending.SkillsToImprove,
	} {
		if value != nil {
			pending[name] = *value
		}
	}
	return nil
}

// applyAccount copies the account fields into form. Only the email is trimmed;
// passwords are sent exactly as typed, the same as on login.
func (f fieldsForm) applyAccount(form *profile.FormState) {
	if f.Email != nil {
		form.Email = strings.TrimSpace(*f.Email)
	}
	for _, field := range []struct {
		dst *string
		src *string
	}{
		{&form.CurrentPassword, f.CurrentPassword},
		{&form.NewPassword, f.NewPassword},
		{&form.ConfirmPassword, f.ConfirmPassword},
	} {
		if field.src != nil {
			*field.dst = *field.src
		}
	}
	if f.RemoveImage {
		form.ProfileImage = ""
	}
}

// Actions posted by the form buttons. Field actions carry their target after
// a colon: "add-tag:softSkills", "remove-tag:softSkills:Mentoring",
// "toggle:careerGoals:Work remotely", "add-row:previousRoles",
// "remove-row:previousRoles:2".
const (
	actionNext      = "next"
	actionBack      = "back"
	actionSubmit    = "submit"
	actionSave      = "save"
	actionCancel    = "cancel"
	actionAddTag    = "add-tag"
	actionRemoveTag = "remove-tag"
	actionToggle    = "toggle"
	actionAddRow    = "add-row"
	actionRemoveRow = "remove-row"
)

type action struct {
	Kind  string
	Field string
	Value string
}

func parseAction(raw string) action {
	parts := strings.SplitN(raw, ":", 3)
	a := action{Kind: parts[0]}
	if len(parts) > 1 {
		a.Field = parts[1]
	}
	if len(parts) > 2 {
		a.Value = parts[2]
	}
	return a
}

// isField reports whether a edits a list rather than navigating.
func (a action) isField() bool {
	switch a.Kind {
	case actionAddTag, actionRemoveTag, actionToggle, actionAddRow, actionRemoveRow:
		return true
	}
	return false
}

// applyAction runs a field action against p.
func applyAction(p *types.ProfileData, pending map[string]string, a action) error {
	switch a.Kind {
	case actionAddTag, actionRemoveTag, actionToggle:
		list := p.StringListField(a.Field)
		if list == nil {
			return &formError{Message: fmt.Sprintf("Unknown list %q.", a.Field)}
		}
		switch a.Kind {
		case actionAddTag:
			in := editor.TagInput{Pending: pending[a.Field]}
			*list, _ = in.Add(*list)
			pending[a.Field] = in.Pending
		case actionRemoveTag:
			*list = editor.RemoveTag(*list, a.Value)
		default:
			*list = editor.ToggleTag(*list, a.Value)
		}
		return nil

	case actionAddRow:
		switch a.Field {
		case "educationalBackground":
			p.EducationalBackground = editor.AddRow(p.EducationalBackground)
		case "previousRoles":
			p.PreviousRoles = editor.AddRow(p.PreviousRoles)
		default:
			return &formError{Message: fmt.Sprintf("Unknown list %q.", a.Field)}
		}
		return nil

	case actionRemoveRow:
		index, err := strconv.Atoi(a.Value)
		if err != nil {
			return &formError{Message: "Invalid row.", Err: err}
		}
		switch a.Field {
		case "educationalBackground":
			p.EducationalBackground, err = editor.RemoveRow(p.EducationalBackground, index)
		case "previousRoles":
			p.PreviousRoles, err = editor.RemoveRow(p.PreviousRoles, index)
		default:
			return &formError{Message: fmt.Sprintf("Unknown list %q.", a.Field)}
		}
		if err != nil {
			return &formError{Message: "Invalid row.", Err: err}
		}
		return nil
	}
	return nil
}
