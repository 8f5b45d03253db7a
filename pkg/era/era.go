// Package era maps a Bikram Sambat publication year to the extraction
// profile in force when that gazette volume was typeset. Formatting
// conventions changed five times over the publication's history; each
// profile bundles the keyword vocabulary and scan-policy flags for one
// of those spans. Profiles are pure data: all behavioral branching
// lives in the extraction engine.
package era

import "fmt"

// Profile is the immutable per-era configuration the extraction engine
// is driven by. Keyword matching is substring containment unless the
// engine explicitly checks for a bare label (exact equality).
type Profile struct {
	Name string

	// Inclusive Bikram Sambat year range this profile covers.
	YearFrom int
	YearTo   int

	BenchKeywords      []string
	JudgeKeywords      []string
	PetitionerKeywords []string
	RespondentKeywords []string
	SubjectKeywords    []string

	// HoldingMarkers open the order-date / holding lines; CitationMarkers
	// prefix discrete legal-point citations. HoldingTransitions are the
	// bare headings (matched by exact equality) that flip the segmenter
	// from citation accumulation into the holding narrative.
	HoldingMarkers     []string
	CitationMarkers    []string
	HoldingTransitions []string

	// VersusMarkers separate party pairs in consolidated filings. Empty
	// for eras whose documents never encode multi-party cases, which
	// keeps multi-party detection off for those years.
	VersusMarkers []string

	// CaseNumberTokens are the short Latin registry codes that mark a
	// case-number line (e.g. "WO", "CR").
	CaseNumberTokens []string

	// SubjectBeforeCaseNumberAllowed enables the subject-placement
	// lookahead: in these eras the subject line may legitimately appear
	// before the case number and parties. When false the subject always
	// sits immediately after the judges block.
	SubjectBeforeCaseNumberAllowed bool

	// BenchLookahead enables the two-block court name: if the block after
	// the bench label is not a judge line it is concatenated into the
	// court text (handles wrapped court names).
	BenchLookahead bool
}

// UnsupportedEraError is returned when a year falls outside every known
// profile range. Gazette volumes from such years are either not yet
// digitized or predate the publication.
type UnsupportedEraError struct {
	Year int
}

func (e *UnsupportedEraError) Error() string {
	return fmt.Sprintf("no extraction profile for Bikram Sambat year %d", e.Year)
}

// SelectProfile returns the profile whose inclusive year range contains
// the given Bikram Sambat year.
func SelectProfile(year int) (*Profile, error) {
	for _, p := range registry {
		if year >= p.YearFrom && year <= p.YearTo {
			return p, nil
		}
	}
	return nil, &UnsupportedEraError{Year: year}
}

// Profiles returns the registry in ascending year order.
func Profiles() []*Profile {
	out := make([]*Profile, len(registry))
	copy(out, registry)
	return out
}
