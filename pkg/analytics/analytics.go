// Package analytics computes word frequencies over extracted judgment
// text, for the corpus-level keyword report.
package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// commonWords is a map of frequently occurring Nepali function words
// that should be ignored in frequency analysis. This list can be
// extended as needed.
var commonWords = map[string]struct{}{
	// Case markers and postpositions
	"को": {}, "का": {}, "की": {}, "ले": {}, "लाई": {}, "मा": {},
	"बाट": {}, "देखि": {}, "सम्म": {}, "सँग": {}, "संग": {},

	// Conjunctions and particles
	"र": {}, "तथा": {}, "वा": {}, "अनि": {}, "तर": {}, "पनि": {},
	"नै": {}, "त": {}, "भने": {}, "भनी": {}, "कि": {},

	// Pronouns and demonstratives
	"यो": {}, "त्यो": {}, "यस": {}, "त्यस": {}, "सो": {}, "उक्त": {},
	"यी": {}, "ती": {}, "आफ्नो": {}, "आफू": {}, "जुन": {}, "जस": {},

	// Copulas and light verbs
	"छ": {}, "छन्": {}, "छैन": {}, "हो": {}, "होइन": {}, "हुन्": {},
	"थियो": {}, "थिए": {}, "हुने": {}, "भएको": {}, "भएका": {},
	"गरेको": {}, "गरेका": {}, "गरी": {}, "गर्ने": {}, "गर्न": {},
	"गरिएको": {}, "हुन": {}, "भई": {}, "भै": {},

	// High-frequency judgment boilerplate
	"समेत": {}, "बमोजिम": {}, "अनुसार": {}, "सम्बन्धी": {},
	"प्रस्तुत": {}, "सोही": {}, "निज": {}, "आदि": {},
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// devanagariOrASCII reports whether a rune can appear inside a counted
// word: Devanagari letters and signs, ASCII letters, or digits.
func devanagariOrASCII(r rune) bool {
	if r >= 0x0900 && r <= 0x097F {
		return true
	}
	if 'a' <= r && r <= 'z' {
		return true
	}
	return '0' <= r && r <= '9'
}

func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		// Strip surrounding punctuation, keeping Devanagari intact
		word = strings.TrimFunc(word, func(r rune) bool {
			return !devanagariOrASCII(r)
		})

		// Skip if it's a common word, a bare number, or empty after cleaning
		if _, exists := commonWords[word]; exists || word == "" || isNumeric(word) {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

// isNumeric reports whether the word is digits only, ASCII or
// Devanagari. Dates and section numbers dominate judgments and drown
// out real keywords.
func isNumeric(word string) bool {
	for _, r := range word {
		if ('0' > r || r > '9') && ('०' > r || r > '९') {
			return false
		}
	}
	return true
}

type wordCount struct {
	Word  string
	Count int
}

func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}

	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}

	return topN
}
