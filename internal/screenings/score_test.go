package screenings

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"screening-backend/internal/textproc"
)

func TestMatch(t *testing.T) {
	text := textproc.Normalize("Seasoned Python developer, ran Linux fleets, some GoLang on the side.")

	matched, missing := Match(text, []string{"python", "linux", "networking"})
	if !reflect.DeepEqual(matched, []string{"python", "linux"}) {
		t.Fatalf("matched = %v", matched)
	}
	if !reflect.DeepEqual(missing, []string{"networking"}) {
		t.Fatalf("missing = %v", missing)
	}
}

func TestMatchSubstringContainment(t *testing.T) {
	matched, _ := Match("worked with golang daily", []string{"go"})
	if len(matched) != 1 {
		t.Fatal("expected \"go\" to match inside \"golang\"")
	}
}

func TestMatchEmptySkills(t *testing.T) {
	matched, missing := Match("anything", nil)
	if len(matched) != 0 || len(missing) != 0 {
		t.Fatalf("matched = %v, missing = %v", matched, missing)
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		name    string
		matched int
		total   int
		want    float64
	}{
		{"two of three", 2, 3, 66.67},
		{"all", 3, 3, 100},
		{"none", 0, 4, 0},
		{"empty must list", 0, 0, 100},
		{"one of eight", 1, 8, 12.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.matched, tc.total); got != tc.want {
				t.Fatalf("Score(%d, %d) = %v, want %v", tc.matched, tc.total, got, tc.want)
			}
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Verdict
	}{
		{100, VerdictHigh},
		{75, VerdictHigh},
		{74.99, VerdictMedium},
		{50, VerdictMedium},
		{49.99, VerdictLow},
		{0, VerdictLow},
	}
	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Fatalf("Classify(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	batch := Batch{
		ID: "b1",
		Records: []Record{
			{
				FileName:    "alice.pdf",
				Score:       66.67,
				Verdict:     VerdictMedium,
				MatchedMust: []string{"python", "linux"},
				MatchedGood: []string{},
				MissingMust: []string{"networking"},
				Email:       "alice@example.com",
			},
			{
				FileName:        "broken.docx",
				Score:           0,
				Verdict:         VerdictLow,
				MatchedMust:     []string{},
				MatchedGood:     []string{},
				MissingMust:     []string{"python", "linux", "networking"},
				ExtractionError: "backend_exception",
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, batch); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0] != "filename,score,verdict,matched_must,matched_good,missing_must,email" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != `alice.pdf,66.67,Medium,"python, linux",-,networking,alice@example.com` {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != `broken.docx,0.00,Low,-,-,"python, linux, networking",-` {
		t.Fatalf("row 2 = %q", lines[2])
	}
}
