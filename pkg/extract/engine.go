// Package extract implements the era-aware field-extraction engine: a
// sequential scan over an ordered block sequence that assigns runs of
// blocks to semantic fields using the era profile's keyword sets,
// positional heuristics, and backtracking to a last-good checkpoint
// when an expected marker is missing.
//
// The engine is pure and synchronous: no I/O, no shared state, safe to
// invoke concurrently across documents. It never fails on malformed
// input; the worst case is a record with every field at the unknown
// sentinel.
package extract

import (
	"strings"

	"github.com/nkp-archive/nkp-scraper/models"
	"github.com/nkp-archive/nkp-scraper/pkg/blocks"
	"github.com/nkp-archive/nkp-scraper/pkg/era"
)

// decisionNumberLabel marks the gazette's decision-number heading. A
// candidate court line carrying it is the page header, not the bench.
const decisionNumberLabel = "निर्णय नं."

// sectionGlyph marks a legal-point line regardless of era vocabulary.
const sectionGlyph = "§"

// Engine walks a block sequence under one era profile.
type Engine struct {
	profile *era.Profile
}

// New returns an engine for the given era profile.
func New(profile *era.Profile) *Engine {
	return &Engine{profile: profile}
}

// Extract runs the six scan phases over the sequence and returns the
// structured record. An empty sequence yields a record with every field
// at the unknown sentinel.
func (e *Engine) Extract(seq []blocks.Block) *models.CaseRecord {
	rec := models.NewCaseRecord()
	cur := &Cursor{}

	e.scanBench(seq, cur, rec)
	e.scanJudges(seq, cur, rec)
	e.placeSubject(seq, cur, rec)
	e.scanParties(seq, cur, rec)
	if !cur.SubjectCaptured {
		e.scanSubject(seq, cur, rec)
	}
	e.segmentTail(seq, cur, rec)

	return rec
}

// scanBench locates the court/bench line. A block that merely contains
// a bench keyword is the court itself; a block that IS a bare bench
// label means the court name was the preceding block (the label sits
// under the name in old volumes). Hitting a judge line first also
// closes the phase on the preceding block.
func (e *Engine) scanBench(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord) {
	n := len(seq)
	prev := ""
	for cur.Position < n {
		text := seq[cur.Position].Text

		if equalsAny(text, e.profile.BenchKeywords) {
			if prev != "" && !strings.Contains(prev, decisionNumberLabel) {
				rec.Court = prev
			}
			cur.Position++
			cur.commit(n)
			return
		}

		if containsAny(text, e.profile.BenchKeywords) {
			court := text
			cur.Position++
			if e.profile.BenchLookahead && cur.Position < n {
				// Wrapped court names: pull in the next block unless it
				// already reads as a judge line.
				next := seq[cur.Position].Text
				if !containsAny(next, e.profile.JudgeKeywords) {
					court = court + " " + next
					cur.Position++
				}
			}
			rec.Court = court
			cur.commit(n)
			return
		}

		if containsAny(text, e.profile.JudgeKeywords) {
			if prev != "" && !strings.Contains(prev, decisionNumberLabel) {
				rec.Court = prev
			}
			// The judge line is left for the next phase.
			cur.commit(n)
			return
		}

		prev = text
		cur.Position++
	}
	cur.revert()
}

// scanJudges accumulates consecutive judge lines. The first non-judge
// block closes the roster and is inspected: an order/holding date line
// is recorded and consumed; otherwise, unless it reads as a party or
// subject line, it is tentatively the case number.
func (e *Engine) scanJudges(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord) {
	n := len(seq)
	var judges []string
	for cur.Position < n {
		text := seq[cur.Position].Text
		if containsAny(text, e.profile.JudgeKeywords) {
			judges = append(judges, text)
			cur.Position++
			continue
		}

		rec.Judges = judges
		switch {
		case e.isOrderDate(text):
			rec.OrderDate = text
			cur.Position++
		case containsAny(text, e.profile.CaseNumberTokens):
			rec.CaseNumber = models.ScalarField(text)
			cur.Position++
		case !containsAny(text, e.profile.PetitionerKeywords) &&
			!containsAny(text, e.profile.SubjectKeywords):
			if equalsAny(text, e.profile.HoldingTransitions) && cur.Position+1 < n {
				// A stray section heading; the case number follows it.
				cur.Position++
				text = seq[cur.Position].Text
			}
			rec.CaseNumber = models.ScalarField(text)
			cur.Position++
		}
		cur.commit(n)
		return
	}
	cur.revert()
}

// placeSubject decides where the subject line sits in this document.
// Eras that allow the subject before the case number get a lookahead
// (without consuming) for whichever of subject or party keywords comes
// first; in the classical era the subject always follows the judges
// block directly. On the subject-first branch the subject and any
// order-date line are consumed here.
func (e *Engine) placeSubject(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord) {
	e.resolveCaseNumberAfterDate(seq, cur, rec)

	if e.profile.SubjectBeforeCaseNumberAllowed {
		for i := cur.Position; i < len(seq); i++ {
			text := seq[i].Text
			if containsAny(text, e.profile.PetitionerKeywords) ||
				containsAny(text, e.profile.RespondentKeywords) {
				break
			}
			if containsAny(text, e.profile.SubjectKeywords) {
				cur.SubjectBeforeParty = true
				break
			}
		}
	} else {
		cur.SubjectBeforeParty = true
	}

	if cur.SubjectBeforeParty {
		e.scanSubjectEarly(seq, cur, rec)
		e.scanOrderDate(seq, cur, rec)
	} else {
		e.scanOrderDate(seq, cur, rec)
	}
}

// resolveCaseNumberAfterDate handles documents where the order date
// sits directly under the judge roster: the block after it is the case
// number, or the subject when this era allows subject-first layouts (in
// which case the case number follows the subject).
func (e *Engine) resolveCaseNumberAfterDate(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord) {
	n := len(seq)
	if rec.OrderDate == models.Unknown || !rec.CaseNumber.IsUnknown() || cur.Position >= n {
		return
	}
	text := seq[cur.Position].Text
	if e.profile.SubjectBeforeCaseNumberAllowed && startsWithAny(text, e.profile.SubjectKeywords) {
		rec.Subject = text
		cur.SubjectCaptured = true
		cur.SubjectBeforeParty = true
		cur.Position++
		cur.commit(n)
		if cur.Position < n {
			next := seq[cur.Position].Text
			if !containsAny(next, e.profile.PetitionerKeywords) &&
				!containsAny(next, e.profile.RespondentKeywords) {
				rec.CaseNumber = models.ScalarField(next)
				cur.Position++
				cur.commit(n)
			}
		}
		return
	}
	if !containsAny(text, e.profile.PetitionerKeywords) &&
		!containsAny(text, e.profile.RespondentKeywords) &&
		!startsWithAny(text, e.profile.CitationMarkers) {
		rec.CaseNumber = models.ScalarField(text)
		cur.Position++
		cur.commit(n)
	}
}

// scanSubjectEarly consumes the subject on the subject-first branch,
// giving up if a party line appears first.
func (e *Engine) scanSubjectEarly(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord) {
	n := len(seq)
	match := func(text string) bool {
		if e.profile.SubjectBeforeCaseNumberAllowed {
			return startsWithAny(text, e.profile.SubjectKeywords)
		}
		// Classical-era subject lines wrap the keyword mid-text.
		return containsAny(text, e.profile.SubjectKeywords)
	}
	for cur.Position < n {
		text := seq[cur.Position].Text
		if match(text) {
			rec.Subject = text
			cur.SubjectCaptured = true
			cur.Position++
			cur.commit(n)
			return
		}
		if containsAny(text, e.profile.PetitionerKeywords) {
			cur.revert()
			return
		}
		cur.Position++
	}
	cur.revert()
}

// scanOrderDate picks up the order/holding date when phase 2 did not,
// stopping short of the party and citation regions.
func (e *Engine) scanOrderDate(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord) {
	if rec.OrderDate != models.Unknown {
		return
	}
	n := len(seq)
	for cur.Position < n {
		text := seq[cur.Position].Text
		if e.isOrderDate(text) {
			rec.OrderDate = text
			cur.Position++
			cur.commit(n)
			return
		}
		if containsAny(text, e.profile.PetitionerKeywords) ||
			startsWithAny(text, e.profile.CitationMarkers) ||
			equalsAny(text, e.profile.HoldingTransitions) {
			cur.revert()
			return
		}
		cur.Position++
	}
	cur.revert()
}

func (e *Engine) isOrderDate(text string) bool {
	return startsWithAny(text, e.profile.HoldingMarkers) && hasDateMarker(text)
}

// scanParties extracts the petitioner and respondent fields. When the
// bounded lookahead finds more than one versus marker before the first
// citation, the document is a consolidated multi-party filing and the
// repeating pair loop takes over.
func (e *Engine) scanParties(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord) {
	if count := e.countVersusMarkers(seq, cur.Position); count > 1 {
		e.extractMultiParty(seq, cur, rec, count)
		return
	}

	if v, ok := e.scanParty(seq, cur, e.profile.PetitionerKeywords); ok {
		rec.Petitioner = models.ScalarField(v)
	}
	if v, ok := e.scanParty(seq, cur, e.profile.RespondentKeywords); ok {
		rec.Respondent = models.ScalarField(v)
	}
}

// scanParty finds the next block matching one of the party keyword
// sets. A block that IS exactly a keyword is a bare label; the value is
// the following block. A labeled line ("निवेदक ः ...") yields the text
// after the label.
func (e *Engine) scanParty(seq []blocks.Block, cur *Cursor, keywords []string) (string, bool) {
	n := len(seq)
	for cur.Position < n {
		text := seq[cur.Position].Text
		if containsAny(text, keywords) {
			value := text
			if equalsAny(text, keywords) {
				cur.Position++
				if cur.Position < n {
					value = seq[cur.Position].Text
				}
			} else if stripped := stripLabel(text, keywords); stripped != "" {
				value = stripped
			} else {
				// Label with separator but no value on the line.
				cur.Position++
				if cur.Position < n {
					value = seq[cur.Position].Text
				}
			}
			cur.Position++
			cur.commit(n)
			return value, true
		}
		cur.Position++
	}
	cur.revert()
	return "", false
}

// scanSubject consumes the subject after the party blocks, reverting if
// the citation region starts first.
func (e *Engine) scanSubject(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord) {
	n := len(seq)
	for cur.Position < n {
		text := seq[cur.Position].Text
		if startsWithAny(text, e.profile.SubjectKeywords) {
			rec.Subject = text
			cur.SubjectCaptured = true
			cur.Position++
			cur.commit(n)
			return
		}
		if startsWithAny(text, e.profile.CitationMarkers) ||
			strings.Contains(text, sectionGlyph) {
			cur.revert()
			return
		}
		cur.Position++
	}
	cur.revert()
}
