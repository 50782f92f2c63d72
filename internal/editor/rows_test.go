package editor

import (
	"errors"
	"testing"

	"github.com/jonathan/skillsync/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAddRow_AppendsBlank(t *testing.T) {
	rows := AddRow([]types.EducationEntry{{Institution: "MIT"}})

	require.Len(t, rows, 2)
	assert.Equal(t, types.EducationEntry{}, rows[1])

	roles := AddRow[types.PreviousRole](nil)
	assert.Equal(t, []types.PreviousRole{{}}, roles)
}

func TestUpdateRow_MergesPartial(t *testing.T) {
	rows := []types.EducationEntry{{Institution: "MIT"}, {Institution: "CMU"}}

	got, err := UpdateRow(rows, 1, types.EducationPatch{Degree: ptr("MSc")})
	require.NoError(t, err)

	assert.Equal(t, types.EducationEntry{Institution: "CMU", Degree: "MSc"}, got[1])
	assert.Equal(t, "", rows[1].Degree, "input must not be modified")
}

func TestUpdateRow_OngoingClearsEndDates(t *testing.T) {
	ends := []string{"", "2020", "1999", "June"}
	for _, end := range ends {
		edu := []types.EducationEntry{{StartYear: "2018", EndYear: end}}
		got, err := UpdateRow(edu, 0, types.EducationPatch{IsCurrent: ptr(true)})
		require.NoError(t, err)
		assert.Empty(t, got[0].EndYear)
		assert.True(t, got[0].IsCurrent)

		roles := []types.PreviousRole{{EndMonth: end, EndYear: end}}
		gotRoles, err := UpdateRow(roles, 0, types.RolePatch{IsPresent: ptr(true), EndYear: ptr("2024")})
		require.NoError(t, err)
		assert.Empty(t, gotRoles[0].EndMonth)
		assert.Empty(t, gotRoles[0].EndYear)
	}
}

func TestUpdateRow_IndexOutOfRange(t *testing.T) {
	rows := []types.PreviousRole{{Title: "Dev"}}

	_, err := UpdateRow(rows, 3, types.RolePatch{Title: ptr("x")})

	var idxErr *RowIndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, 3, idxErr.Index)
	assert.Equal(t, 1, idxErr.Len)
}

func TestRemoveRow_ShiftsLaterRows(t *testing.T) {
	rows := []types.PreviousRole{{Title: "a"}, {Title: "b"}, {Title: "c"}}

	got, err := RemoveRow(rows, 1)
	require.NoError(t, err)
	assert.Equal(t, []types.PreviousRole{{Title: "a"}, {Title: "c"}}, got)
	assert.Equal(t, "b", rows[1].Title)

	_, err = RemoveRow(got, -1)
	assert.Error(t, err)
}
