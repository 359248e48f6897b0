// Package textproc prepares raw resume text for skill matching.
package textproc

import "strings"

// Normalize lowercases text and strips characters outside the matching
// alphabet. Disallowed runes become spaces so that adjacent words never
// merge, then whitespace runs collapse to single spaces. Applying
// Normalize to its own output is a no-op.
func Normalize(s string) string {
	lowered := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if allowedRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '@', '.', '_', '+', '-':
		return true
	}
	return false
}
