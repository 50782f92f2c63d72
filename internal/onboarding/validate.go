package onboarding

import (
	"fmt"
	"strings"

	"github.com/jonathan/skillsync/internal/types"
)

// ValidationTitle is the notice title for a failed step.
const ValidationTitle = "Missing info"

// ValidationError is a step that failed validation. Messages are in display order.
type ValidationError struct {
	Step     Step
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ". ")
}

type personalFields struct {
	FullName    string `validate:"required" msg:"Full name is required"`
	Age         string `validate:"required" msg:"Age is required"`
	Location    string `validate:"required" msg:"Location is required"`
	CurrentRole string `validate:"required" msg:"Current role is required"`
}

type educationFields struct {
	Education    string `validate:"required" msg:"Education is required"`
	FieldOfStudy string `validate:"required" msg:"Field of study is required"`
}

type experienceFields struct {
	ExperienceLevel string `validate:"required" msg:"Experience level is required"`
}

type goalsFields struct {
	CareerGoals []string `validate:"min=1" msg:"Select at least one career goal"`
	Timeframe   string   `validate:"required" msg:"Timeframe is required"`
}

// ValidateStep returns the messages for every rule step breaks, or nil when it
// passes. Skills and review always pass.
func ValidateStep(step Step, p types.ProfileData) []string {
	switch step {
	case StepPersonal:
		return types.ValidationMessages(personalFields{
			FullName:    p.FullName,
			Age:         p.Age,
			Location:    p.Location,
			CurrentRole: p.CurrentRole,
		})
	case StepEducation:
		messages := types.ValidationMessages(educationFields{
			Education:    p.Education,
			FieldOfStudy: p.FieldOfStudy,
		})
		for i, entry := range p.EducationalBackground {
			if entry.Institution == "" || entry.Degree == "" {
				messages = append(messages, fmt.Sprintf("Education entry %d needs institution and degree", i+1))
			}
		}
		return messages
	case StepExperience:
		return types.ValidationMessages(experienceFields{ExperienceLevel: p.ExperienceLevel})
	case StepGoals:
		return types.ValidationMessages(goalsFields{
			CareerGoals: p.CareerGoals,
			Timeframe:   p.Timeframe,
		})
	default:
		return nil
	}
}
