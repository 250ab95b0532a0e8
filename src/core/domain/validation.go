package domain

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Minimum lengths, counted in characters.
const (
	MinJokeNameLength    = 2
	MinJokeContentLength = 10
	MinUsernameLength    = 3
	MinPasswordLength    = 6
)

// DefaultRedirect is where a login lands when no usable target was given.
const DefaultRedirect = "/jokes"

// JokeFields holds the text fields of the new-joke form.
type JokeFields struct {
	Name    string
	Content string
}

// FieldErrors holds one message per joke form field. An empty string means
// the field is valid.
type FieldErrors struct {
	Name    string
	Content string
}

// Any reports whether at least one field has an error.
func (e FieldErrors) Any() bool {
	return e.Name != "" || e.Content != ""
}

// ValidateJokeName returns a rejection reason, or "" when the name is acceptable.
func ValidateJokeName(name string) string {
	if utf8.RuneCountInString(name) < MinJokeNameLength {
		return "That joke's name is too short"
	}
	return ""
}

// ValidateJokeContent returns a rejection reason, or "" when the content is acceptable.
func ValidateJokeContent(content string) string {
	if utf8.RuneCountInString(content) < MinJokeContentLength {
		return "That joke is too short"
	}
	return ""
}

// ValidateJokeFields runs every joke field validator.
func ValidateJokeFields(f JokeFields) FieldErrors {
	return FieldErrors{
		Name:    ValidateJokeName(f.Name),
		Content: ValidateJokeContent(f.Content),
	}
}

// ValidateUsername returns a rejection reason, or "" when the username is acceptable.
func ValidateUsername(username string) string {
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return "Usernames must be at least 3 characters long"
	}
	return ""
}

// ValidatePassword returns a rejection reason, or "" when the password is acceptable.
func ValidatePassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "Passwords must be at least 6 characters long"
	}
	return ""
}

// SafeRedirect only lets local absolute paths through. Anything with a
// scheme or host, a leading "//", a backslash or a control character (which
// browsers strip before resolving) becomes DefaultRedirect. The decoded path
// is checked as well as the raw input.
func SafeRedirect(to string) string {
	if !localPath(to) {
		return DefaultRedirect
	}
	u, err := url.Parse(to)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil || u.Opaque != "" {
		return DefaultRedirect
	}
	if !localPath(u.Path) {
		return DefaultRedirect
	}
	return to
}

func localPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return false
	}
	for _, r := range p {
		if r < 0x20 || r == 0x7f || r == '\\' {
			return false
		}
	}
	return true
}
