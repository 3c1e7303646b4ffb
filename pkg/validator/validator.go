package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const maxAboutMeLength = 140
const maxPostLength = 140

func ValidateRegister(username, email, password, password2 string) ValidationErrors {
	errs := make(ValidationErrors)

	validateUsername(username, errs)
	validateEmail(email, errs)
	validateNewPassword(password, password2, errs)

	return errs
}

func ValidateLogin(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Username is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateEditProfile(username, aboutMe string) ValidationErrors {
	errs := make(ValidationErrors)

	validateUsername(username, errs)
	if utf8.RuneCountInString(aboutMe) > maxAboutMeLength {
		errs.Add("about_me", "About me must be at most 140 characters")
	}

	return errs
}

func ValidatePost(body string) ValidationErrors {
	errs := make(ValidationErrors)

	if body == "" {
		errs.Add("body", "Post body is required")
	} else if utf8.RuneCountInString(body) > maxPostLength {
		errs.Add("body", "Post body must be at most 140 characters")
	}

	return errs
}

func ValidateResetRequest(email string) ValidationErrors {
	errs := make(ValidationErrors)
	validateEmail(email, errs)
	return errs
}

func ValidateResetPassword(password, password2 string) ValidationErrors {
	errs := make(ValidationErrors)
	validateNewPassword(password, password2, errs)
	return errs
}

func validateUsername(username string, errs ValidationErrors) {
	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) > 64 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if len(email) > 120 {
		errs.Add("email", "Email is too long")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}

func validateNewPassword(password, password2 string, errs ValidationErrors) {
	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
	}
	if password2 != password {
		errs.Add("password2", "Passwords must match")
	}
}
