// Package screenings runs resume batches against the active profile
// and produces per-resume scores, verdicts and skill gaps.
package screenings

import "time"

type Verdict string

const (
	VerdictHigh   Verdict = "High"
	VerdictMedium Verdict = "Medium"
	VerdictLow    Verdict = "Low"
)

// Record holds the outcome for a single resume within a batch. When
// extraction fails the record still exists, scored zero, with the
// diagnostic preserved in ExtractionError.
type Record struct {
	ID              string   `json:"id"`
	FileName        string   `json:"fileName"`
	Score           float64  `json:"score"`
	Verdict         Verdict  `json:"verdict"`
	MatchedMust     []string `json:"matchedMust"`
	MatchedGood     []string `json:"matchedGood"`
	MissingMust     []string `json:"missingMust"`
	Email           string   `json:"email"`
	ExtractionError string   `json:"extractionError,omitempty"`
}

// ExtractionFailure summarizes one document that could not be read.
type ExtractionFailure struct {
	FileName string `json:"fileName"`
	Error    string `json:"error"`
}

type Batch struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"createdAt"`
	Records   []Record            `json:"records"`
	Errors    []ExtractionFailure `json:"errors,omitempty"`
}

// Document is one uploaded resume: its original name and raw bytes.
type Document struct {
	FileName string
	Data     []byte
}
