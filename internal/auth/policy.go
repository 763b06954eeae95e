package auth

import (
	"fmt"
	"strings"
	"unicode"
)

// Policy holds the password rules and the lockout threshold.
type Policy struct {
	MinLength           int
	RequireUppercase    bool
	RequireLowercase    bool
	RequireNumbers      bool
	RequireSpecialChars bool
	DictionaryBlocklist []string

	MaxLoginAttempts int
}

func DefaultPolicy() Policy {
	return Policy{
		MinLength:           8,
		RequireUppercase:    true,
		RequireLowercase:    true,
		RequireNumbers:      true,
		RequireSpecialChars: true,
		DictionaryBlocklist: []string{"password", "123456", "qwerty", "letmein"},
		MaxLoginAttempts:    5,
	}
}

// Validate returns the first violated rule's message, or "" when the
// candidate passes. Rules are checked in fixed order: length, uppercase,
// lowercase, digit, special character, blocklist.
func (p Policy) Validate(password string) string {
	if len(password) < p.MinLength {
		return fmt.Sprintf("Password must be at least %d characters long.", p.MinLength)
	}
	if p.RequireUppercase && !containsFunc(password, unicode.IsUpper) {
		return "Password must contain at least one uppercase letter."
	}
	if p.RequireLowercase && !containsFunc(password, unicode.IsLower) {
		return "Password must contain at least one lowercase letter."
	}
	if p.RequireNumbers && !containsFunc(password, unicode.IsDigit) {
		return "Password must contain at least one number."
	}
	if p.RequireSpecialChars && !containsFunc(password, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		return "Password must contain at least one special character."
	}
	for _, banned := range p.DictionaryBlocklist {
		// Case-sensitive on purpose, mirrors the configured entries.
		if strings.Contains(password, banned) {
			return "Password contains a blocked word or phrase."
		}
	}
	return ""
}

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}
	return false
}
