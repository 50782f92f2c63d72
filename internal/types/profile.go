package types

import "strconv"

// EducationEntry is one row of the educational background list.
// When IsCurrent is true, EndYear is always empty.
type EducationEntry struct {
	Institution string `json:"institution" schema:"institution"`
	Degree      string `json:"degree" schema:"degree"`
	Field       string `json:"field" schema:"field"`
	StartYear   string `json:"startYear" schema:"startYear"`
	EndYear     string `json:"endYear" schema:"endYear"`
	IsCurrent   bool   `json:"isCurrent" schema:"isCurrent"`
}

// EducationPatch holds the fields of an EducationEntry update; nil means unchanged.
type EducationPatch struct {
	Institution *string
	Degree      *string
	Field       *string
	StartYear   *string
	EndYear     *string
	IsCurrent   *bool
}

// Merge applies p on top of e. The end year is cleared whenever the entry is
// current after the merge.
func (e EducationEntry) Merge(p EducationPatch) EducationEntry {
	setString(&e.Institution, p.Institution)
	setString(&e.Degree, p.Degree)
	setString(&e.Field, p.Field)
	setString(&e.StartYear, p.StartYear)
	setString(&e.EndYear, p.EndYear)
	if p.IsCurrent != nil {
		e.IsCurrent = *p.IsCurrent
	}
	if e.IsCurrent {
		e.EndYear = ""
	}
	return e
}

// PreviousRole is one row of the work history list.
// When IsPresent is true, EndMonth and EndYear are always empty.
type PreviousRole struct {
	Title       string `json:"title" schema:"title"`
	Company     string `json:"company" schema:"company"`
	StartMonth  string `json:"startMonth" schema:"startMonth"`
	StartYear   string `json:"startYear" schema:"startYear"`
	EndMonth    string `json:"endMonth" schema:"endMonth"`
	EndYear     string `json:"endYear" schema:"endYear"`
	IsPresent   bool   `json:"isPresent" schema:"isPresent"`
	Description string `json:"description" schema:"description"`
}

// RolePatch holds the fields of a PreviousRole update; nil means unchanged.
type RolePatch struct {
	Title       *string
	Company     *string
	StartMonth  *string
	StartYear   *string
	EndMonth    *string
	EndYear     *string
	IsPresent   *bool
	Description *string
}

// Merge applies p on top of r. End month and year are cleared whenever the role
// is ongoing after the merge.
func (r PreviousRole) Merge(p RolePatch) PreviousRole {
	setString(&r.Title, p.Title)
	setString(&r.Company, p.Company)
	setString(&r.StartMonth, p.StartMonth)
	setString(&r.StartYear, p.StartYear)
	setString(&r.EndMonth, p.EndMonth)
	setString(&r.EndYear, p.EndYear)
	setString(&r.Description, p.Description)
	if p.IsPresent != nil {
		r.IsPresent = *p.IsPresent
	}
	if r.IsPresent {
		r.EndMonth = ""
		r.EndYear = ""
	}
	return r
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ProfileData is the aggregate onboarding state, and the body of POST /onboarding.
// Every field is always serialized; list fields are never null.
type ProfileData struct {
	FullName              string           `json:"fullName"`
	Age                   string           `json:"age"`
	Location              string           `json:"location"`
	CurrentRole           string           `json:"currentRole"`
	Education             string           `json:"education"`
	FieldOfStudy          string           `json:"fieldOfStudy"`
	GraduationYear        string           `json:"graduationYear"`
	Certifications        []string         `json:"certifications"`
	EducationalBackground []EducationEntry `json:"educationalBackground"`
	ExperienceLevel       string           `json:"experienceLevel"`
	PreviousRoles         []PreviousRole   `json:"previousRoles"`
	TechnicalSkills       []string         `json:"technicalSkills"`
	SoftSkills            []string         `json:"softSkills"`
	SkillsToImprove       []string         `json:"skillsToImprove"`
	CareerGoals           []string         `json:"careerGoals"`
	Timeframe             string           `json:"timeframe"`
	PreferredIndustries   []string         `json:"preferredIndustries"`
	WorkPreference        string           `json:"workPreference"`
}

// NewProfileData returns an empty aggregate with non-nil lists.
func NewProfileData() ProfileData {
	var p ProfileData
	p.Normalize()
	return p
}

// Normalize replaces nil lists with empty ones.
func (p *ProfileData) Normalize() {
	for _, list := range []*[]string{
		&p.Certifications, &p.TechnicalSkills, &p.SoftSkills,
		&p.SkillsToImprove, &p.CareerGoals, &p.PreferredIndustries,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
	if p.EducationalBackground == nil {
		p.EducationalBackground = []EducationEntry{}
	}
	if p.PreviousRoles == nil {
		p.PreviousRoles = []PreviousRole{}
	}
}

// DecodeProfileData reads the loosely typed "data" object of GET /onboarding.
// Missing or mistyped fields become "" or empty lists.
func DecodeProfileData(raw map[string]any) ProfileData {
	p := ProfileData{
		FullName:              stringField(raw["fullName"]),
		Age:                   stringField(raw["age"]),
		Location:              stringField(raw["location"]),
		CurrentRole:           stringField(raw["currentRole"]),
		Education:             stringField(raw["education"]),
		FieldOfStudy:          stringField(raw["fieldOfStudy"]),
		GraduationYear:        stringField(raw["graduationYear"]),
		Certifications:        StringList(raw["certifications"]),
		EducationalBackground: EducationList(raw["educationalBackground"]),
		ExperienceLevel:       stringField(raw["experienceLevel"]),
		PreviousRoles:         RoleList(raw["previousRoles"]),
		TechnicalSkills:       StringList(raw["technicalSkills"]),
		SoftSkills:            StringList(raw["softSkills"]),
		SkillsToImprove:       StringList(raw["skillsToImprove"]),
		CareerGoals:           StringList(raw["careerGoals"]),
		Timeframe:             stringField(raw["timeframe"]),
		PreferredIndustries:   StringList(raw["preferredIndustries"]),
		WorkPreference:        stringField(raw["workPreference"]),
	}
	p.Normalize()
	return p
}

// StringList converts a decoded JSON array into strings. Non-arrays yield an empty list.
func StringList(v any) []string {
	out := []string{}
	switch items := v.(type) {
	case []any:
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, items...)
	}
	return out
}

// EducationList converts a decoded JSON array into education entries.
func EducationList(v any) []EducationEntry {
	out := []EducationEntry{}
	switch items := v.(type) {
	case []any:
		for _, item := range items {
			m, _ := item.(map[string]any)
			out = append(out, EducationEntry{
				Institution: stringField(m["institution"]),
				Degree:      stringField(m["degree"]),
				Field:       stringField(m["field"]),
				StartYear:   stringField(m["startYear"]),
				EndYear:     stringField(m["endYear"]),
				IsCurrent:   m["isCurrent"] == true,
			})
		}
	case []EducationEntry:
		out = append(out, items...)
	}
	return out
}

// RoleList converts a decoded JSON array into previous roles.
func RoleList(v any) []PreviousRole {
	out := []PreviousRole{}
	switch items := v.(type) {
	case []any:
		for _, item := range items {
			m, _ := item.(map[string]any)
			out = append(out, PreviousRole{
				Title:       stringField(m["title"]),
				Company:     stringField(m["company"]),
				StartMonth:  stringField(m["startMonth"]),
				StartYear:   stringField(m["startYear"]),
				EndMonth:    stringField(m["endMonth"]),
				EndYear:     stringField(m["endYear"]),
				IsPresent:   m["isPresent"] == true,
				Description: stringField(m["description"]),
			})
		}
	case []PreviousRole:
		out = append(out, items...)
	}
	return out
}

// stringField accepts strings and JSON numbers (years are sometimes numeric).
func stringField(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// StringListField returns a pointer to the list field with the given JSON name,
// or nil when name is not a string list.
func (p *ProfileData) StringListField(name string) *[]string {
	switch name {
	case "certifications":
		return &p.Certifications
	case "technicalSkills":
		return &p.TechnicalSkills
	case "softSkills":
		return &p.SoftSkills
	case "skillsToImprove":
		return &p.SkillsToImprove
	case "careerGoals":
		return &p.CareerGoals
	case "preferredIndustries":
		return &p.PreferredIndustries
	default:
		return nil
	}
}
