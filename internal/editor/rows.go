package editor

import (
	"fmt"

	"github.com/jonathan/skillsync/internal/types"
)

// RowIndexError is returned when a row operation targets an index outside the list.
type RowIndexError struct {
	Index int
	Len   int
}

func (e *RowIndexError) Error() string {
	return fmt.Sprintf("row index %d out of range (%d rows)", e.Index, e.Len)
}

// Mergeable is a record that can absorb a partial update of type P. Merge must
// enforce the record's own invariants (see types.EducationEntry.Merge).
type Mergeable[T any, P any] interface {
	Merge(patch P) T
}

// AddRow appends a blank record.
func AddRow[T any](rows []T) []T {
	var blank T
	return append(cloneRows(rows), blank)
}

// UpdateRow replaces rows[index] with rows[index].Merge(patch). The input slice is
// not modified.
func UpdateRow[T Mergeable[T, P], P any](rows []T, index int, patch P) ([]T, error) {
	if index < 0 || index >= len(rows) {
		return rows, &RowIndexError{Index: index, Len: len(rows)}
	}
	out := cloneRows(rows)
	out[index] = out[index].Merge(patch)
	return out, nil
}

// RemoveRow deletes rows[index]; later rows shift down by one.
func RemoveRow[T any](rows []T, index int) ([]T, error) {
	if index < 0 || index >= len(rows) {
		return rows, &RowIndexError{Index: index, Len: len(rows)}
	}
	out := make([]T, 0, len(rows)-1)
	out = append(out, rows[:index]...)
	return append(out, rows[index+1:]...), nil
}

func cloneRows[T any](rows []T) []T {
	out := make([]T, len(rows), len(rows)+1)
	copy(out, rows)
	return out
}

// Type assertions for the two record shapes used by the forms.
var (
	_ Mergeable[types.EducationEntry, types.EducationPatch] = types.EducationEntry{}
	_ Mergeable[types.PreviousRole, types.RolePatch]        = types.PreviousRole{}
)
