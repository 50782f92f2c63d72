package web

import (
	"github.com/jonathan/skillsync/internal/editor"
	"github.com/jonathan/skillsync/internal/types"
)

// Option is one entry of a select or chip group.
type Option struct {
	Value    string
	Selected bool
}

// SelectField is a single-choice dropdown.
type SelectField struct {
	Name    string
	Label   string
	Options []Option
}

// TagField is a free-text tag list with its pending input.
type TagField struct {
	Name    string
	Label   string
	Values  []string
	Pending string
}

// ChipField is a multi-select over fixed options.
type ChipField struct {
	Name    string
	Label   string
	Options []Option
}

// fieldsView is the data behind the shared field partials used by both the
// wizard steps and the profile section forms.
type fieldsView struct {
	Data    types.ProfileData
	Pending map[string]string
	Years   []string
	Months  []string
}

func newFieldsView(p types.ProfileData, pending map[string]string, years []string) fieldsView {
	p.Normalize()
	return fieldsView{Data: p, Pending: pending, Years: years, Months: editor.Months}
}

func options(values []string, selected func(string) bool) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Selected: selected(v)}
	}
	return out
}

// withCurrent appends current as a selected option when no listed option
// matches it, so posting the form back keeps a stored value the list lacks.
func withCurrent(opts []Option, current string) []Option {
	if current == "" {
		return opts
	}
	for _, o := range opts {
		if o.Selected {
			return opts
		}
	}
	return append(opts, Option{Value: current, Selected: true})
}

func equals(current string) func(string) bool {
	return func(v string) bool { return v == current }
}

// Select builds the dropdown for one of the scalar fields.
func (v fieldsView) Select(name, label string) SelectField {
	var (
		values  []string
		current string
	)
	switch name {
	case "age":
		values, current = editor.AgeOptions, v.Data.Age
	case "currentRole":
		values, current = editor.RoleOptions, v.Data.CurrentRole
	case "education":
		values, current = editor.EducationOptions, v.Data.Education
	case "graduationYear":
		values, current = v.Years, v.Data.GraduationYear
	case "experienceLevel":
		values, current = editor.ExperienceOptions, v.Data.ExperienceLevel
	case "timeframe":
		values, current = editor.TimeframeOptions, v.Data.Timeframe
	case "workPreference":
		values, current = editor.WorkPreferenceOptions, v.Data.WorkPreference
	}
	return SelectField{Name: name, Label: label, Options: withCurrent(options(values, equals(current)), current)}
}

// YearSelect builds a row-level year dropdown.
func (v fieldsView) YearSelect(name, current string) SelectField {
	return SelectField{Name: name, Options: withCurrent(options(v.Years, equals(current)), current)}
}

// MonthSelect builds a row-level month dropdown.
func (v fieldsView) MonthSelect(name, current string) SelectField {
	return SelectField{Name: name, Options: withCurrent(options(v.Months, equals(current)), current)}
}

// Tags builds the tag editor for a string list field.
func (v fieldsView) Tags(name, label string) TagField {
	field := TagField{Name: name, Label: label, Pending: v.Pending[name]}
	if list := v.Data.StringListField(name); list != nil {
		field.Values = *list
	}
	return field
}

// Chips builds the multi-select for careerGoals or preferredIndustries.
func (v fieldsView) Chips(name, label string) ChipField {
	var values []string
	switch name {
	case "careerGoals":
		values = editor.GoalOptions
	case "preferredIndustries":
		values = editor.IndustryOptions
	}
	var selected []string
	if list := v.Data.StringListField(name); list != nil {
		selected = *list
	}
	return ChipField{
		Name:    name,
		Label:   label,
		Options: options(values, func(o string) bool { return editor.ContainsTag(selected, o) }),
	}
}
