package domain

import (
	"strings"
)

// NormalizeEmail prepares an email address for storage and lookup:
// surrounding whitespace is trimmed and the address is lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeText trims surrounding whitespace and compresses runs of
// spaces into one. Case is preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// OptionalText normalizes s and returns nil when nothing is left.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := NormalizeText(*s)
	if v == "" {
		return nil
	}
	return &v
}
