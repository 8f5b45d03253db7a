package extract

import (
	"strings"
	"unicode/utf8"
)

// Keyword matching is substring containment throughout the engine,
// except where a phase explicitly checks for a bare label (equalsAny)
// or a line prefix (startsWithAny).

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func equalsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if text == kw {
			return true
		}
	}
	return false
}

func startsWithAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.HasPrefix(text, kw) {
			return true
		}
	}
	return false
}

// dateMarkers flag a line as carrying a Bikram Sambat date. Both
// spellings occur in the source volumes.
var dateMarkers = []string{"मिति", "मिती"}

func hasDateMarker(text string) bool {
	return containsAny(text, dateMarkers)
}

// labelSeparators are the punctuation runes a field label is joined to
// its value with ("निवेदक ः ...", "Petitioner: ...").
const labelSeparators = ":ः।-–—"

// stripLabel removes a leading field label from a matched line when an
// explicit separator follows it. A keyword that merely opens running
// text leaves the line untouched; a label with nothing after the
// separator strips to empty (the bare-label case).
func stripLabel(text string, keywords []string) string {
	for _, kw := range keywords {
		if !strings.HasPrefix(text, kw) {
			continue
		}
		rest := strings.TrimLeft(strings.TrimPrefix(text, kw), " ")
		if rest == "" {
			return ""
		}
		r, size := utf8.DecodeRuneInString(rest)
		if !strings.ContainsRune(labelSeparators, r) {
			return text
		}
		return strings.TrimSpace(strings.TrimLeft(rest[size:], " "+labelSeparators))
	}
	return text
}
