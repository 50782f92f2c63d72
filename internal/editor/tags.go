// Package editor provides the field editors shared by the onboarding wizard and the
// profile section editor: tag lists, repeatable record rows, and option lists.
package editor

import "strings"

// TagInput is the pending text of a tag list editor. The list itself belongs to the
// caller's aggregate; Add returns the new list for the caller to store.
type TagInput struct {
	Pending string
}

// Add appends the trimmed pending text to tags and clears Pending. Empty input is a
// no-op and reports false. Duplicates are accepted.
func (t *TagInput) Add(tags []string) ([]string, bool) {
	trimmed := strings.TrimSpace(t.Pending)
	if trimmed == "" {
		return tags, false
	}
	t.Pending = ""
	return append(cloneStrings(tags), trimmed), true
}

// AddTag is Add for callers that do not keep a pending buffer between requests.
func AddTag(tags []string, pending string) ([]string, bool) {
	in := TagInput{Pending: pending}
	return in.Add(tags)
}

// RemoveTag removes every occurrence of value.
func RemoveTag(tags []string, value string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != value {
			out = append(out, t)
		}
	}
	return out
}

// ToggleTag removes value when present, otherwise appends it. Used by the
// multi-select option chips (career goals, industries).
func ToggleTag(tags []string, value string) []string {
	if ContainsTag(tags, value) {
		return RemoveTag(tags, value)
	}
	return append(cloneStrings(tags), value)
}

// ContainsTag reports whether value is in tags.
func ContainsTag(tags []string, value string) bool {
	for _, t := range tags {
		if t == value {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s), len(s)+1)
	copy(out, s)
	return out
}
