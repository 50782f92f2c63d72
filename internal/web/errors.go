package web

import (
	"errors"
	"strings"

	"github.com/jonathan/skillsync/internal/apiclient"
	"github.com/jonathan/skillsync/internal/onboarding"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/session"
)

// Notice texts owned by the web handlers.
const (
	loginFailedTitle      = "Unable to log in"
	registerFailedTitle   = "Unable to register"
	loginTitle            = "Signed in"
	registerTitle         = "Account created"
	sessionExpiredTitle   = "Session expired"
	sessionExpiredMessage = "Please sign in again."
	loadFailedTitle       = "Unable to load profile"
	loadFailedMessage     = "Showing what we have. Try again later."
	invalidFormTitle      = "Invalid form"
)

// errorNotice reduces err to the notice shown to the user. Validation and rule
// errors keep their own title; backend and transport errors use title with the
// server's message, or fallback when it sent none.
func errorNotice(err error, title, fallback string) session.Notice {
	var verr *onboarding.ValidationError
	if errors.As(err, &verr) {
		return session.Notice{Kind: session.KindError, Title: onboarding.ValidationTitle, Message: verr.Error()}
	}
	var rerr *profile.RuleError
	if errors.As(err, &rerr) {
		return session.Notice{Kind: session.KindError, Title: rerr.Title, Message: rerr.Message}
	}
	var ferr *formError
	if errors.As(err, &ferr) {
		return session.Notice{Kind: session.KindError, Title: invalidFormTitle, Message: ferr.Message}
	}
	return session.Notice{Kind: session.KindError, Title: title, Message: apiclient.UserMessage(err, fallback)}
}

// messagesNotice is a batch of field messages under one title.
func messagesNotice(title string, messages []string) session.Notice {
	return session.Notice{Kind: session.KindError, Title: title, Message: strings.Join(messages, ". ")}
}

// formError is a posted form that could not be applied.
type formError struct {
	Message string
	Err     error
}

func (e *formError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *formError) Unwrap() error {
	return e.Err
}
