// Package types provides the wire and form types shared by the SkillSync front-end packages.
package types

import "strings"

// User is the account record returned by the backend's auth endpoints.
// FullName and ProfileImage are nullable on the wire.
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FullName     *string `json:"full_name"`
	ProfileImage *string `json:"profile_image,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// Name returns the user's full name, or "" when the backend has none.
func (u *User) Name() string {
	if u == nil || u.FullName == nil {
		return ""
	}
	return *u.FullName
}

// Image returns the profile image data-URI or URL, or "".
func (u *User) Image() string {
	if u == nil || u.ProfileImage == nil {
		return ""
	}
	return *u.ProfileImage
}

// Initial returns the avatar letter: first letter of the trimmed name, else of the
// email, else "U".
func (u *User) Initial() string {
	source := ""
	if u != nil {
		source = strings.TrimSpace(u.Name())
		if source == "" {
			source = u.Email
		}
	}
	if source == "" {
		return "U"
	}
	return strings.ToUpper(string([]rune(source)[:1]))
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required" msg:"Email is required"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"required" msg:"Email is required"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserResponse is returned by GET /auth/me and PUT /auth/account.
type UserResponse struct {
	User User `json:"user"`
}

// AccountUpdate is the body of PUT /auth/account. The password pair is only sent
// when a new password is being set.
type AccountUpdate struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email" validate:"required" msg:"Please provide a valid email."`
	ProfileImage    string `json:"profileImage"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// MessageResponse is returned by POST /onboarding.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileResponse is returned by GET /onboarding. Data is kept raw so that keys
// this front-end does not know about survive a save.
type ProfileResponse struct {
	User      User           `json:"user"`
	Data      map[string]any `json:"data"`
	Completed bool           `json:"completed"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the AccountUpdate using the validator.
func (r *AccountUpdate) Validate() error {
	return validate.Struct(r)
}
