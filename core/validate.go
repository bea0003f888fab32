package core

import (
	"regexp"
	"strconv"
	"strings"
)

// Signup validators. All of them are pure predicates with no I/O; the
// wizard and the HTTP handlers call them before anything touches the
// network, so a network-facing operation can never see client-side-invalid
// input.

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	letterRe   = regexp.MustCompile(`[A-Za-z]`)
	ageRe      = regexp.MustCompile(`^\d{1,3}$`)
)

func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidUsernameFormat checks shape only; availability is a remote
// concern (see AccountGateway).
func IsValidUsernameFormat(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return usernameRe.MatchString(s) && letterRe.MatchString(s)
}

func IsStrongPassword(s string) bool {
	return len(s) >= 8
}

func PasswordsMatch(password, confirm string) bool {
	return confirm != "" && password == confirm
}

func IsValidNameAge(name, age string) bool {
	return strings.TrimSpace(name) != "" && ageRe.MatchString(age)
}

// ParseAge converts the validated age text into its integer form. The
// string form exists only at this boundary; everything past it carries an
// int.
func ParseAge(age string) (int, error) {
	if !ageRe.MatchString(age) {
		return 0, ErrInvalidAge
	}
	n, err := strconv.Atoi(age)
	if err != nil || n <= 0 {
		return 0, ErrInvalidAge
	}
	return n, nil
}

// Daily entry validators.

func IsValidMood(mood int) bool {
	return mood >= 1 && mood <= 5
}

func IsValidSleep(hours float64) bool {
	return hours >= 0
}
