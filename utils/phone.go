package utils

import (
	"strings"
)

// DigitsOnly strips everything but 0-9; wa.me links take the contact
// address as bare digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
