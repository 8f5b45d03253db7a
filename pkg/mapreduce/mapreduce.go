// Package mapreduce aggregates per-case word frequencies into
// corpus-level keyword counts.
package mapreduce

import "github.com/nkp-archive/nkp-scraper/pkg/analytics"

// Map generates a word frequency map for a single case's text.
func Map(content string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(content)
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
