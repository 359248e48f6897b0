package screenings

import "strings"

// Match partitions skills into those present in the normalized resume
// text and those absent. Presence is substring containment, so "go"
// matches inside "golang". Input order is preserved in both outputs.
func Match(normalizedText string, skills []string) (matched, missing []string) {
	matched = make([]string, 0, len(skills))
	missing = make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.Contains(normalizedText, s) {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}
