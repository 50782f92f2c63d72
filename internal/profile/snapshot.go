package profile

import (
	"github.com/jonathan/skillsync/internal/types"
)

// Snapshot is the stored profile as last loaded or saved. Data keeps every key
// the backend returned, including ones this front-end does not edit.
type Snapshot struct {
	User types.User     `json:"user"`
	Data map[string]any `json:"data"`
}

// SnapshotFrom builds a snapshot from GET /onboarding.
func SnapshotFrom(resp *types.ProfileResponse) Snapshot {
	data := resp.Data
	if data == nil {
		data = map[string]any{}
	}
	return Snapshot{User: resp.User, Data: data}
}

// Profile decodes the snapshot data.
func (s Snapshot) Profile() types.ProfileData {
	return types.DecodeProfileData(s.Data)
}

// Form derives a fresh edit form from the snapshot.
func (s Snapshot) Form() FormState {
	p := s.Profile()
	p.FullName = s.User.Name()
	return FormState{
		ProfileData:  p,
		Email:        s.User.Email,
		ProfileImage: s.User.Image(),
	}
}

// Merge returns a copy of s with section's keys replaced from form. Every list
// key is normalized to a list; all other keys pass through unchanged. s is not
// modified.
func (s Snapshot) Merge(section Section, form FormState) Snapshot {
	data := make(map[string]any, len(s.Data)+9)
	for k, v := range s.Data {
		data[k] = v
	}

	for _, key := range []string{
		"certifications", "technicalSkills", "softSkills",
		"skillsToImprove", "careerGoals", "preferredIndustries",
	} {
		data[key] = types.StringList(data[key])
	}
	data["educationalBackground"] = types.EducationList(data["educationalBackground"])
	data["previousRoles"] = types.RoleList(data["previousRoles"])

	for _, key := range section.Keys() {
		data[key] = form.sectionValue(key)
	}

	return Snapshot{User: s.User, Data: data}
}

// Payload is the POST /onboarding body for s, with fullName set to name.
func (s Snapshot) Payload(name string) map[string]any {
	body := make(map[string]any, len(s.Data)+1)
	for k, v := range s.Data {
		body[k] = v
	}
	body["fullName"] = name
	return body
}
