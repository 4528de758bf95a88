package utils

import (
	"regexp"
	"strings"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MinPasswordLength = 8
	MaxNameLength     = 100
)

var (
	emailPattern    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern    = regexp.MustCompile(`^\+?\d{6,15}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// ValidatePassword enforces the password strength policy.
// Returns an empty string when the password is acceptable, otherwise a reason.
func ValidatePassword(password string) string {
	if len(password) < MinPasswordLength {
		return "Password must be at least 8 characters long."
	}
	return ""
}

// ValidateUsername checks length and character set of a username.
func ValidateUsername(username string) string {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return "Username must be between 3 and 30 characters."
	}
	if !usernamePattern.MatchString(username) {
		return "Username may only contain letters, digits, dots, underscores and hyphens."
	}
	return ""
}

// ValidateEmail checks the email format after trimming.
func ValidateEmail(email string) string {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return "Invalid email format."
	}
	return ""
}

// ValidatePhone checks the phone format. An empty phone is valid: callers use
// the empty string to clear the field.
func ValidatePhone(phone string) string {
	if phone == "" {
		return ""
	}
	if !phonePattern.MatchString(phone) {
		return "Invalid phone format."
	}
	return ""
}

// NormalizeEmail lowercases and trims an email address before storage/lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
