package utils

import (
	"strings"
	"unicode"
)

// NormalizePhone strips every whitespace and hyphen character. Two inputs with
// the same normalized form identify the same account.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}
