package newsletter

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("please enter a valid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate trims email and checks its shape. The returned address is
// lower-cased so one mailbox maps to one subscriber.
func Validate(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return "", ErrEmailInvalid
	}
	return strings.ToLower(email), nil
}
