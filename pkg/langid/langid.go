// Package langid flags suspect extractions. Gazette judgments are
// Devanagari prose, so extracted text that reads as English usually
// means the scan latched onto navigation chrome or a mis-nested page.
package langid

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/nkp-archive/nkp-scraper/models"
)

// Checker wraps a lingua detector restricted to the two scripts that
// occur on the site. Hindi stands in for the Devanagari script; lingua
// carries no Nepali model and script detection is all that is needed.
type Checker struct {
	detector lingua.LanguageDetector
}

// NewChecker builds the detector once; it is safe for concurrent use.
func NewChecker() *Checker {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Hindi, lingua.English).
		Build()
	return &Checker{detector: detector}
}

// IsDevanagari reports whether text reads as Devanagari-script prose.
func (c *Checker) IsDevanagari(text string) bool {
	lang, ok := c.detector.DetectLanguageOf(text)
	return ok && lang == lingua.Hindi
}

// LowConfidence reports whether a record's prose fields fail the script
// check. Records whose prose fields are all at the unknown sentinel are
// low confidence outright; otherwise the subject and holding text must
// read as Devanagari.
func (c *Checker) LowConfidence(rec *models.CaseRecord) bool {
	if rec.IsEmpty() {
		return true
	}

	var parts []string
	if rec.Subject != models.Unknown {
		parts = append(parts, rec.Subject)
	}
	parts = append(parts, rec.Holding...)
	if len(parts) == 0 {
		return false
	}
	return !c.IsDevanagari(strings.Join(parts, " "))
}
