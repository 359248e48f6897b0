// Package profiles stores the active screening profile: the job
// description and the skill lists resumes are scored against.
package profiles

import (
	"strings"
	"time"
)

type Profile struct {
	JobDescription string    `json:"jobDescription"`
	MustHave       []string  `json:"mustHave"`
	GoodToHave     []string  `json:"goodToHave"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// ParseSkills splits a comma separated skill list into normalized
// entries: trimmed, lowercased, empties dropped.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.ToLower(strings.TrimSpace(p))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
