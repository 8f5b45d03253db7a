package extract

import (
	"github.com/nkp-archive/nkp-scraper/models"
	"github.com/nkp-archive/nkp-scraper/pkg/blocks"
)

// countVersusMarkers counts bare versus lines between pos and the first
// citation marker. More than one marks a consolidated filing with
// several petitioner/respondent pairs. Eras whose profile carries no
// versus markers never count past zero.
func (e *Engine) countVersusMarkers(seq []blocks.Block, pos int) int {
	count := 0
	for i := pos; i < len(seq); i++ {
		text := seq[i].Text
		if equalsAny(text, e.profile.VersusMarkers) {
			count++
		}
		if startsWithAny(text, e.profile.CitationMarkers) {
			break
		}
	}
	return count
}

// extractMultiParty regroups a consolidated filing into parallel lists:
// index i across case numbers, petitioners, and respondents refers to
// the same sub-case. Party pairs are pulled with the same scan as the
// scalar path; case numbers are collected independently by a forward
// scan from the top of the document for registry code lines, stopping
// where the citation region starts.
func (e *Engine) extractMultiParty(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord, pairs int) {
	petitioners := make([]string, 0, pairs)
	respondents := make([]string, 0, pairs)
	for i := 0; i < pairs; i++ {
		if v, ok := e.scanParty(seq, cur, e.profile.PetitionerKeywords); ok {
			petitioners = append(petitioners, v)
		}
		if v, ok := e.scanParty(seq, cur, e.profile.RespondentKeywords); ok {
			respondents = append(respondents, v)
		}
	}

	caseNumbers := e.collectCaseNumbers(seq, pairs)

	// Keep the three lists parallel even when a scan came up short.
	padTo(&petitioners, pairs)
	padTo(&respondents, pairs)
	padTo(&caseNumbers, pairs)

	rec.CaseNumber = models.ListField(caseNumbers)
	rec.Petitioner = models.ListField(petitioners)
	rec.Respondent = models.ListField(respondents)
}

// collectCaseNumbers scans from the top of the document for lines
// carrying a recognized registry code, stopping at the first citation
// marker or bare holding heading.
func (e *Engine) collectCaseNumbers(seq []blocks.Block, limit int) []string {
	out := make([]string, 0, limit)
	for _, b := range seq {
		text := b.Text
		if startsWithAny(text, e.profile.CitationMarkers) ||
			equalsAny(text, e.profile.HoldingMarkers) {
			break
		}
		if containsAny(text, e.profile.CaseNumberTokens) {
			out = append(out, text)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func padTo(list *[]string, n int) {
	for len(*list) < n {
		*list = append(*list, models.Unknown)
	}
}
