package extract

import (
	"strings"

	"github.com/nkp-archive/nkp-scraper/models"
	"github.com/nkp-archive/nkp-scraper/pkg/blocks"
)

// segmentTail consumes whatever the field phases left of the sequence,
// splitting it into discrete legal-point citations and the holding
// narrative. Attached list items are visited in document order right
// after their owning block and follow the same rules.
//
// The holding overlaps the tail of the citation list on purpose: the
// source volumes print the holding section after, and echoing, the
// final citation.
func (e *Engine) segmentTail(seq []blocks.Block, cur *Cursor, rec *models.CaseRecord) {
	var citations, holding []string
	pending := ""
	holdingStarted := false

	visit := func(text string) {
		if text == "" {
			return
		}
		citationLine := strings.Contains(text, sectionGlyph) ||
			startsWithAny(text, e.profile.CitationMarkers)
		transition := equalsAny(text, e.profile.HoldingTransitions)

		if citationLine || transition {
			if pending != "" {
				citations = append(citations, pending)
				pending = ""
			}
			citations = append(citations, text)
		} else {
			if pending == "" {
				pending = text
			} else {
				pending = pending + " " + text
			}
		}

		if transition {
			holdingStarted = true
		}
		if holdingStarted {
			holding = append(holding, text)
		}
	}

	for _, b := range seq[cur.Position:] {
		visit(b.Text)
		for _, li := range b.ListItems {
			visit(li)
		}
	}
	cur.Position = len(seq)
	cur.Checkpoint = cur.Position

	rec.Citations = citations
	rec.Holding = holding
}
