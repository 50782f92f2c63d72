package profile

import (
	"strings"

	"github.com/jonathan/skillsync/internal/editor"
	"github.com/jonathan/skillsync/internal/types"
)

// Entry is one labelled value on a section card. An empty Value is shown as "Not set".
type Entry struct {
	Label string
	Value string
}

// Card is the read-only view of one section.
type Card struct {
	Title   string
	Section Section
	Entries []Entry
}

// Cards summarizes the snapshot, one card per data section in page order.
func (s Snapshot) Cards() []Card {
	return SummaryCards(s.User.Name(), s.Profile())
}

// SummaryCards summarizes p under the account name fullName. The onboarding
// review step shows the same cards.
func SummaryCards(fullName string, p types.ProfileData) []Card {
	return []Card{
		{
			Title:   SectionPersonal.Title(),
			Section: SectionPersonal,
			Entries: []Entry{
				{"Full name", fullName},
				{"Age", p.Age},
				{"Location", p.Location},
				{"Current role", p.CurrentRole},
			},
		},
		{
			Title:   SectionEducation.Title(),
			Section: SectionEducation,
			Entries: []Entry{
				{"Education", p.Education},
				{"Field of study", p.FieldOfStudy},
				{"Graduation year", p.GraduationYear},
				{"Certifications", strings.Join(p.Certifications, ", ")},
				{"Educational background", editor.SummarizeEducation(p.EducationalBackground)},
			},
		},
		{
			Title:   SectionExperience.Title(),
			Section: SectionExperience,
			Entries: []Entry{
				{"Experience level", p.ExperienceLevel},
				{"Previous roles", editor.SummarizeRoles(p.PreviousRoles)},
			},
		},
		{
			Title:   SectionSkills.Title(),
			Section: SectionSkills,
			Entries: []Entry{
				{"Technical skills", strings.Join(p.TechnicalSkills, ", ")},
				{"Soft skills", strings.Join(p.SoftSkills, ", ")},
				{"Skills to improve", strings.Join(p.SkillsToImprove, ", ")},
			},
		},
		{
			Title:   SectionGoals.Title(),
			Section: SectionGoals,
			Entries: []Entry{
				{"Career goals", strings.Join(p.CareerGoals, ", ")},
				{"Timeframe", p.Timeframe},
				{"Preferred industries", strings.Join(p.PreferredIndustries, ", ")},
				{"Work preference", p.WorkPreference},
			},
		},
	}
}
