// Package feedback turns a screening record into a candidate-facing
// email and sends it over SMTP.
package feedback

import (
	"fmt"
	"strconv"
	"strings"

	"screening-backend/internal/screenings"
)

// Message is a fully composed feedback email. Subject and Body may be
// overridden by the caller before sending.
type Message struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Compose renders the feedback email for a record. It is a pure
// function of the record: the same input always yields the same text.
func Compose(rec screenings.Record) Message {
	score := strconv.FormatFloat(rec.Score, 'f', -1, 64)

	matched := "-"
	if len(rec.MatchedMust) > 0 {
		matched = strings.Join(rec.MatchedMust, ", ")
	} else if len(rec.MatchedGood) > 0 {
		matched = strings.Join(rec.MatchedGood, ", ")
	}

	missing := "None"
	if len(rec.MissingMust) > 0 {
		missing = strings.Join(rec.MissingMust, ", ")
	}

	lines := []string{
		"Hello,",
		"",
		"We reviewed the resume you submitted. Here is the summary:",
		fmt.Sprintf("- Relevance Score: %s (%s)", score, rec.Verdict),
		"- Matched skills: " + matched,
		"- Missing must-have skills: " + missing,
		"",
		"Suggested next steps to improve your candidacy:",
	}
	if len(rec.MissingMust) > 0 {
		for _, s := range rec.MissingMust {
			lines = append(lines,
				fmt.Sprintf("- Add a short project or one-line demo that shows %s (e.g., GitHub repo link).", s),
				fmt.Sprintf("- Consider a short online course/certificate in %s and include it in your resume.", s),
			)
		}
	} else {
		lines = append(lines, "- Your resume already contains the required must-have skills. Keep your experience and projects clear and concise.")
	}
	lines = append(lines,
		"",
		"If you'd like, you can share an updated resume and we'll re-evaluate it.",
		"",
		"Best regards,",
		"Placement Team",
	)

	return Message{
		Recipient: rec.Email,
		Subject:   "Feedback on your resume — Score " + score,
		Body:      strings.Join(lines, "\n"),
	}
}
