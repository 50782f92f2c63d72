// Package profile implements the section editor of the profile page: one
// section is open at a time, edited against the stored snapshot, and merged
// back into it on save.
package profile

import (
	"fmt"

	"github.com/jonathan/skillsync/internal/types"
)

// Section names an editable part of the profile.
type Section string

// Editable sections.
const (
	SectionPersonal   Section = "personal"
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionSkills     Section = "skills"
	SectionGoals      Section = "goals"
	SectionAccount    Section = "account"
)

// DataSections are the sections stored in the onboarding data, in page order.
var DataSections = []Section{SectionPersonal, SectionEducation, SectionExperience, SectionSkills, SectionGoals}

var sectionTitles = map[Section]string{
	SectionPersonal:   "Personal",
	SectionEducation:  "Education",
	SectionExperience: "Experience",
	SectionSkills:     "Skills",
	SectionGoals:      "Goals",
	SectionAccount:    "Account",
}

// sectionKeys are the onboarding data keys each section owns.
var sectionKeys = map[Section][]string{
	SectionPersonal:   {"fullName", "age", "location", "currentRole"},
	SectionEducation:  {"education", "fieldOfStudy", "graduationYear", "certifications", "educationalBackground"},
	SectionExperience: {"experienceLevel", "previousRoles"},
	SectionSkills:     {"technicalSkills", "softSkills", "skillsToImprove"},
	SectionGoals:      {"careerGoals", "timeframe", "preferredIndustries", "workPreference"},
}

// ParseSection validates a section name from a URL.
func ParseSection(name string) (Section, error) {
	s := Section(name)
	if _, ok := sectionTitles[s]; !ok {
		return "", fmt.Errorf("unknown profile section: %q", name)
	}
	return s, nil
}

// Title returns the section heading.
func (s Section) Title() string {
	return sectionTitles[s]
}

// Keys returns the data keys owned by s. Account owns none.
func (s Section) Keys() []string {
	return sectionKeys[s]
}

// FormState is the editable copy of the snapshot for one edit session.
type FormState struct {
	types.ProfileData
	Email           string `json:"email"`
	ProfileImage    string `json:"profileImage"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// sectionValue returns the form value for a data key.
func (f *FormState) sectionValue(key string) any {
	p := &f.ProfileData
	p.Normalize()
	switch key {
	case "fullName":
		return p.FullName
	case "age":
		return p.Age
	case "location":
		return p.Location
	case "currentRole":
		return p.CurrentRole
	case "education":
		return p.Education
	case "fieldOfStudy":
		return p.FieldOfStudy
	case "graduationYear":
		return p.GraduationYear
	case "educationalBackground":
		return p.EducationalBackground
	case "experienceLevel":
		return p.ExperienceLevel
	case "previousRoles":
		return p.PreviousRoles
	case "timeframe":
		return p.Timeframe
	case "workPreference":
		return p.WorkPreference
	default:
		if list := p.StringListField(key); list != nil {
			return *list
		}
		return nil
	}
}
