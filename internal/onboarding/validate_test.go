package onboarding

import (
	"testing"

	"github.com/jonathan/skillsync/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestValidateStep(t *testing.T) {
	full := completeState()

	tests := []struct {
		name  string
		step  Step
		state func() types.ProfileData
		want  []string
	}{
		{
			name:  "personal empty",
			step:  StepPersonal,
			state: types.NewProfileData,
			want:  []string{"Full name is required", "Age is required", "Location is required", "Current role is required"},
		},
		{
			name: "personal partial",
			step: StepPersonal,
			state: func() types.ProfileData {
				p := types.NewProfileData()
				p.FullName = "Ada"
				p.Location = "London"
				return p
			},
			want: []string{"Age is required", "Current role is required"},
		},
		{
			name:  "education empty",
			step:  StepEducation,
			state: types.NewProfileData,
			want:  []string{"Education is required", "Field of study is required"},
		},
		{
			name: "education entry missing degree",
			step: StepEducation,
			state: func() types.ProfileData {
				p := full
				p.EducationalBackground = []types.EducationEntry{
					{Institution: "MIT", Degree: "", Field: "CS", StartYear: "2018", EndYear: "2022"},
				}
				return p
			},
			want: []string{"Education entry 1 needs institution and degree"},
		},
		{
			name: "entry messages follow scalar messages and are 1-based",
			step: StepEducation,
			state: func() types.ProfileData {
				p := types.NewProfileData()
				p.EducationalBackground = []types.EducationEntry{
					{Institution: "MIT", Degree: "BSc"},
					{Degree: "MSc"},
					{},
				}
				return p
			},
			want: []string{
				"Education is required",
				"Field of study is required",
				"Education entry 2 needs institution and degree",
				"Education entry 3 needs institution and degree",
			},
		},
		{
			name:  "experience empty",
			step:  StepExperience,
			state: types.NewProfileData,
			want:  []string{"Experience level is required"},
		},
		{
			name:  "skills always pass",
			step:  StepSkills,
			state: types.NewProfileData,
		},
		{
			name:  "goals empty",
			step:  StepGoals,
			state: types.NewProfileData,
			want:  []string{"Select at least one career goal", "Timeframe is required"},
		},
		{
			name: "goals with nil list",
			step: StepGoals,
			state: func() types.ProfileData {
				return types.ProfileData{Timeframe: "3-6 months"}
			},
			want: []string{"Select at least one career goal"},
		},
		{
			name:  "review always passes",
			step:  StepReview,
			state: types.NewProfileData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateStep(tt.step, tt.state())
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateStep_CompleteStatePassesEveryStep(t *testing.T) {
	p := completeState()
	for s := StepPersonal; s <= StepReview; s++ {
		assert.Empty(t, ValidateStep(s, p), "step %d", s)
	}
}

func TestValidationError_JoinsMessages(t *testing.T) {
	err := &ValidationError{Step: StepGoals, Messages: []string{"Select at least one career goal", "Timeframe is required"}}
	assert.Equal(t, "Select at least one career goal. Timeframe is required", err.Error())
}

func TestStepTitles(t *testing.T) {
	titles := make([]string, 0, TotalSteps)
	for s := StepPersonal; s <= StepReview; s++ {
		titles = append(titles, s.Title())
	}
	assert.Equal(t, []string{"Personal info", "Education", "Experience", "Skills", "Goals", "Completion"}, titles)
	assert.Empty(t, Step(0).Title())
	assert.Empty(t, Step(7).Title())
	assert.Equal(t, 50, StepExperience.Percent())
	assert.Equal(t, 100, StepReview.Percent())
}
