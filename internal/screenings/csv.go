package screenings

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{"filename", "score", "verdict", "matched_must", "matched_good", "missing_must", "email"}

// WriteCSV renders a batch as CSV, one row per record in stored order.
// Empty lists and a missing email render as "-".
func WriteCSV(w io.Writer, b Batch) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range b.Records {
		row := []string{
			rec.FileName,
			strconv.FormatFloat(rec.Score, 'f', 2, 64),
			string(rec.Verdict),
			joinOrDash(rec.MatchedMust),
			joinOrDash(rec.MatchedGood),
			joinOrDash(rec.MissingMust),
			orDash(rec.Email),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
