package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

// TopKeywords returns the top N keywords from aggregated word counts as
// formatted "word:count" strings.
func TopKeywords(wordCounts map[string]int, n int) []string {
	ss := sortedCounts(wordCounts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return keywords
}

// PrintTopKeywords writes the top N keywords as a numbered list.
func PrintTopKeywords(w io.Writer, wordCounts map[string]int, n int) {
	ss := sortedCounts(wordCounts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	for i := 0; i < limit; i++ {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, ss[i].Key, ss[i].Value)
	}
}

type kv struct {
	Key   string
	Value int
}

// sortedCounts orders counts descending, ties broken by word so output
// is stable.
func sortedCounts(wordCounts map[string]int) []kv {
	ss := make([]kv, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, kv{k, v})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})
	return ss
}
