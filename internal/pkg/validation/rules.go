// Package validation holds the field-level validation and normalization rules
// for student records. All functions are pure; callers decide what a failure
// means.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// Validation rule patterns
var (
	// Email validation pattern: local part, '@', domain, 2-6 letter TLD
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,6}$`

	// Name validation pattern: Unicode letters, space, period, apostrophe,
	// hyphen; 2-50 runes
	NamePattern = `^[\p{L} .'\-]{2,50}$`

	// Phone validation pattern, applied after normalization: optional
	// leading '+' then 7-15 digits
	PhonePattern = `^\+?[0-9]{7,15}$`

	// DateLayout is the strict ISO date layout for dates of birth
	DateLayout = "2006-01-02"
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Name  *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Name:  regexp.MustCompile(NamePattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// phoneStripper removes whitespace, hyphens and parentheses from phone numbers
var phoneStripper = regexp.MustCompile(`[\s\-()]`)

// IsValidEmail reports whether the email is syntactically valid. The raw
// string is matched, so surrounding whitespace makes it invalid. The empty
// string is invalid.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidPhone reports whether the phone number is valid. The number is
// normalized first, so formatted input like "(123) 456-7890" passes.
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(NormalizePhone(phone))
}

// IsValidName reports whether the name is valid. Names may contain
// international letters, spaces, periods, apostrophes and hyphens and must be
// between 2 and 50 characters long.
func IsValidName(name string) bool {
	return CompiledPatterns.Name.MatchString(name)
}

// ParseDate parses a strict ISO yyyy-MM-dd date string. The second return
// value reports success; a parse failure is a normal outcome here, not an
// error, and callers treat it as a validation failure.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NormalizePhone strips whitespace, dashes and parentheses from a phone
// number. The empty string normalizes to itself.
func NormalizePhone(phone string) string {
	return phoneStripper.ReplaceAllString(phone, "")
}

// NormalizeEmail trims surrounding whitespace and lowercases an email
// address. The empty string normalizes to itself.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
