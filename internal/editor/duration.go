package editor

import (
	"strings"

	"github.com/jonathan/skillsync/internal/types"
)

// FormatDuration renders a role's period for display: "May 2019 - Present",
// "May 2019 - June 2021", "May 2019", or "" when the start is incomplete.
func FormatDuration(r types.PreviousRole) string {
	start := ""
	if r.StartMonth != "" && r.StartYear != "" {
		start = r.StartMonth + " " + r.StartYear
	}
	end := ""
	switch {
	case r.IsPresent:
		end = "Present"
	case r.EndMonth != "" && r.EndYear != "":
		end = r.EndMonth + " " + r.EndYear
	}
	if start != "" && end != "" {
		return start + " - " + end
	}
	return start
}

// SummarizeRoles renders "{title} @ {company} ({duration})" per role, joined by " | ".
// Returns "" for an empty list.
func SummarizeRoles(roles []types.PreviousRole) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, orDefault(r.Title, "Role")+" @ "+orDefault(r.Company, "Company")+" ("+FormatDuration(r)+")")
	}
	return strings.Join(parts, " | ")
}

// SummarizeEducation renders "{degree} @ {institution}[ ({endYear})]" per entry,
// joined by " | ". Returns "" for an empty list.
func SummarizeEducation(entries []types.EducationEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		s := orDefault(e.Degree, "Degree") + " @ " + orDefault(e.Institution, "Institution")
		if e.EndYear != "" {
			s += " (" + e.EndYear + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " | ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
