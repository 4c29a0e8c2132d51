// Package validator holds pure field validation for the HTML forms. It knows
// nothing about rendering; handlers decide how to surface the field errors.
package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxBioLength     = 160
	MaxMessageLength = 140
	MinPasswordLen   = 6
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func ValidateSignup(username, email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateUsername(username, errs)
	validateEmail(email, errs)

	if len(password) < MinPasswordLen {
		errs.Add("password", "Password must be at least 6 characters")
	}

	return errs
}

func ValidateLogin(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Username is required")
	}
	if len(password) < MinPasswordLen {
		errs.Add("password", "Password must be at least 6 characters")
	}

	return errs
}

func ValidateMessage(text string) ValidationErrors {
	errs := make(ValidationErrors)

	text = strings.TrimSpace(text)
	if text == "" {
		errs.Add("text", "Text is required")
	} else if utf8.RuneCountInString(text) > MaxMessageLength {
		errs.Add("text", "Message can be at most 140 characters")
	}

	return errs
}

func ValidateProfileUpdate(username, email, password, bio string) ValidationErrors {
	errs := make(ValidationErrors)

	validateUsername(username, errs)
	validateEmail(email, errs)

	if len(password) < MinPasswordLen {
		errs.Add("password", "Password must be at least 6 characters")
	}
	if utf8.RuneCountInString(bio) > MaxBioLength {
		errs.Add("bio", "Bio can be at most 160 characters")
	}

	return errs
}

func validateUsername(username string, errs ValidationErrors) {
	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}
