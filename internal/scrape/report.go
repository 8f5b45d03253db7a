package scrape

import (
	"fmt"
	"io"
)

// Summary is the outcome of one scrape run, after the retry pass.
type Summary struct {
	CaseType      string
	Year          string
	Total         int
	Stored        int
	Skipped       int
	LowConfidence int
	Failed        []string
}

// Print writes the human-readable end-of-run report.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\n--- Scrape run: %s %s ---\n", s.CaseType, s.Year)
	fmt.Fprintf(w, "Links discovered:          %d\n", s.Total)
	fmt.Fprintf(w, "Cases stored:              %d\n", s.Stored)
	fmt.Fprintf(w, "Already in database:       %d\n", s.Skipped)
	fmt.Fprintf(w, "Low-confidence extractions: %d\n", s.LowConfidence)
	fmt.Fprintf(w, "Still failing after retry: %d\n", len(s.Failed))
	for _, link := range s.Failed {
		fmt.Fprintf(w, "  %s\n", link)
	}
}
