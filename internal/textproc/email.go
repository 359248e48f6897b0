package textproc

import "regexp"

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// DetectEmail returns the first email-shaped substring in s, or ""
// when none is present. The match keeps its original casing.
func DetectEmail(s string) string {
	return emailRe.FindString(s)
}
