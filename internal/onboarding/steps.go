// Package onboarding implements the six-step onboarding wizard: step
// validation, navigation, hydration from the stored profile, and submission.
package onboarding

// Step is a 1-based wizard position.
type Step int

// Wizard steps in order.
const (
	StepPersonal Step = iota + 1
	StepEducation
	StepExperience
	StepSkills
	StepGoals
	StepReview
)

// TotalSteps is the number of wizard steps.
const TotalSteps = int(StepReview)

var stepTitles = [...]string{
	StepPersonal:   "Personal info",
	StepEducation:  "Education",
	StepExperience: "Experience",
	StepSkills:     "Skills",
	StepGoals:      "Goals",
	StepReview:     "Completion",
}

// Title returns the label shown in the step indicator.
func (s Step) Title() string {
	if !s.Valid() {
		return ""
	}
	return stepTitles[s]
}

// Valid reports whether s is one of the six steps.
func (s Step) Valid() bool {
	return s >= StepPersonal && s <= StepReview
}

// Percent returns the progress through the wizard, 0 to 100.
func (s Step) Percent() int {
	return int(s) * 100 / TotalSteps
}
