package screenings

import "math"

// Score is the percentage of must-have skills found in the resume,
// rounded to two decimals. An empty must-have list scores 100: there
// is nothing to miss.
func Score(matchedMust, totalMust int) float64 {
	if totalMust == 0 {
		return 100
	}
	raw := float64(matchedMust) / float64(totalMust) * 100
	return math.Round(raw*100) / 100
}

// Classify maps a score to its verdict band.
func Classify(score float64) Verdict {
	switch {
	case score >= 75:
		return VerdictHigh
	case score >= 50:
		return VerdictMedium
	default:
		return VerdictLow
	}
}
