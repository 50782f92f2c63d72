package editor

import (
	"strconv"
	"time"
)

// FirstYear is the oldest year offered by the year pickers.
const FirstYear = 1970

// Months are the month picker options in calendar order.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// YearOptions returns the years from now's calendar year down to FirstYear.
func YearOptions(now time.Time) []string {
	current := now.Year()
	if current < FirstYear {
		return nil
	}
	years := make([]string, 0, current-FirstYear+1)
	for y := current; y >= FirstYear; y-- {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

// Select options offered by the personal, education, experience and goals forms.
var (
	AgeOptions = []string{"18-22", "23-27", "28-32", "33-37", "38-42", "43-47", "48-52", "53+"}

	RoleOptions = []string{
		"student", "recent-graduate", "entry-level", "mid-level", "senior-level", "manager",
		"director", "executive", "freelancer", "entrepreneur", "unemployed", "career-change",
	}

	EducationOptions = []string{
		"high-school", "associate", "bachelor", "master", "phd",
		"bootcamp", "certification", "self-taught", "other",
	}

	ExperienceOptions = []string{"entry-level", "1-2-years", "3-5-years", "6-10-years", "10+-years"}

	TimeframeOptions = []string{"3-months", "6-months", "1-year", "2-years", "3-5-years", "5+-years"}

	WorkPreferenceOptions = []string{"remote", "hybrid", "office", "flexible", "no-preference"}

	GoalOptions = []string{
		"Get promoted in current role",
		"Switch to a new career field",
		"Start my own business",
		"Become a team leader/manager",
		"Increase my salary",
		"Work remotely",
		"Learn new technologies",
		"Get certified in my field",
		"Find a better work-life balance",
		"Move to a bigger company",
		"Work for a startup",
		"Become a consultant/freelancer",
	}

	IndustryOptions = []string{
		"Technology", "Healthcare", "Finance", "Education", "Marketing", "Sales",
		"Human Resources", "Manufacturing", "Retail", "Consulting", "Non-profit",
		"Government", "Media", "Real Estate", "Transportation", "Energy",
		"Agriculture", "Entertainment", "Legal", "Other",
	}
)
