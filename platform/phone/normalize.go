// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "EG"

// Normalize canonicalizes a phone string into the digit-only join key used to
// match records across sources. Formatting characters are stripped, then a
// single leading country code digit ("2") is removed, then a single leading
// trunk zero. The country code must be stripped first: a trunk zero can sit
// directly behind it ("+20 10..." -> "010..." -> "10...").
//
// Normalize never fails; empty input yields an empty string. An empty
// normalized phone never matches another phone, including another empty one.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch r {
		case ' ', '-', '(', ')', '+':
			continue
		default:
			b.WriteRune(r)
		}
	}

	result := b.String()
	result = strings.TrimPrefix(result, "2")
	result = strings.TrimPrefix(result, "0")
	return result
}

// SameNumber reports whether two phone strings identify the same lead.
// Two phones match iff their normalized forms are equal and non-empty.
func SameNumber(a, b string) bool {
	na := Normalize(a)
	if na == "" {
		return false
	}
	return na == Normalize(b)
}

// FormatDisplay renders a phone number as E.164 for display purposes.
// If parsing fails or the number is invalid, it returns the trimmed input.
// Display formatting is never used as a match key; see Normalize.
func FormatDisplay(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
