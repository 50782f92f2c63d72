package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDecodeProfileData_EmptyData(t *testing.T) {
	p := DecodeProfileData(map[string]any{})

	assert.Equal(t, "", p.FullName)
	assert.Equal(t, "", p.Age)
	assert.Equal(t, "", p.Timeframe)
	assert.NotNil(t, p.Certifications)
	assert.NotNil(t, p.EducationalBackground)
	assert.NotNil(t, p.PreviousRoles)
	assert.NotNil(t, p.TechnicalSkills)
	assert.NotNil(t, p.SoftSkills)
	assert.NotNil(t, p.SkillsToImprove)
	assert.NotNil(t, p.CareerGoals)
	assert.NotNil(t, p.PreferredIndustries)

	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "null")
	assert.Contains(t, string(body), `"careerGoals":[]`)
}

func TestDecodeProfileData_NilMap(t *testing.T) {
	p := DecodeProfileData(nil)
	assert.Equal(t, NewProfileData(), p)
}

func TestDecodeProfileData_LenientTypes(t *testing.T) {
	p := DecodeProfileData(map[string]any{
		"age":            "23-27",
		"graduationYear": float64(2020),
		"certifications": "not-a-list",
		"careerGoals":    []any{"Work remotely", 42, "Increase my salary"},
		"previousRoles": []any{
			map[string]any{"title": "Engineer", "company": "Acme", "isPresent": true},
		},
		"educationalBackground": []any{
			map[string]any{"institution": "MIT", "degree": "BSc", "isCurrent": "yes"},
		},
	})

	assert.Equal(t, "23-27", p.Age)
	assert.Equal(t, "2020", p.GraduationYear)
	assert.Empty(t, p.Certifications)
	assert.Equal(t, []string{"Work remotely", "Increase my salary"}, p.CareerGoals)
	require.Len(t, p.PreviousRoles, 1)
	assert.Equal(t, "Engineer", p.PreviousRoles[0].Title)
	assert.True(t, p.PreviousRoles[0].IsPresent)
	require.Len(t, p.EducationalBackground, 1)
	assert.False(t, p.EducationalBackground[0].IsCurrent)
}

func TestEducationEntry_MergeClearsEndYear(t *testing.T) {
	tests := []struct {
		name  string
		entry EducationEntry
		patch EducationPatch
		want  EducationEntry
	}{
		{
			name:  "set current clears end year",
			entry: EducationEntry{Institution: "MIT", StartYear: "2018", EndYear: "2022"},
			patch: EducationPatch{IsCurrent: ptr(true)},
			want:  EducationEntry{Institution: "MIT", StartYear: "2018", IsCurrent: true},
		},
		{
			name:  "end year in same patch as current is dropped",
			entry: EducationEntry{},
			patch: EducationPatch{EndYear: ptr("2024"), IsCurrent: ptr(true)},
			want:  EducationEntry{IsCurrent: true},
		},
		{
			name:  "unset current keeps other fields",
			entry: EducationEntry{Degree: "BSc", IsCurrent: true},
			patch: EducationPatch{IsCurrent: ptr(false), EndYear: ptr("2021")},
			want:  EducationEntry{Degree: "BSc", EndYear: "2021"},
		},
		{
			name:  "shallow merge of strings",
			entry: EducationEntry{Institution: "MIT", Degree: "BSc"},
			patch: EducationPatch{Degree: ptr("MSc")},
			want:  EducationEntry{Institution: "MIT", Degree: "MSc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Merge(tt.patch))
		})
	}
}

func TestPreviousRole_MergeClearsEndFields(t *testing.T) {
	role := PreviousRole{Title: "Dev", StartMonth: "May", StartYear: "2019", EndMonth: "June", EndYear: "2021"}

	got := role.Merge(RolePatch{IsPresent: ptr(true)})

	assert.True(t, got.IsPresent)
	assert.Empty(t, got.EndMonth)
	assert.Empty(t, got.EndYear)
	assert.Equal(t, "May", got.StartMonth)
	// the original value is untouched
	assert.Equal(t, "June", role.EndMonth)
}

func TestStringListField(t *testing.T) {
	p := NewProfileData()

	list := p.StringListField("softSkills")
	require.NotNil(t, list)
	*list = append(*list, "Mentoring")
	assert.Equal(t, []string{"Mentoring"}, p.SoftSkills)

	assert.Nil(t, p.StringListField("age"))
	assert.Nil(t, p.StringListField("previousRoles"))
}
