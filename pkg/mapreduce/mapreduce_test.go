package mapreduce

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/nkp-archive/nkp-scraper/pkg/analytics"
)

func TestMapReduce(t *testing.T) {
	a := &analytics.Analytics{}

	m1 := Map("अंश हक", a)
	m2 := Map("अंश मुद्दा", a)
	final := Reduce([]map[string]int{m1, m2})

	if final["अंश"] != 2 {
		t.Errorf("अंश = %d, want 2", final["अंश"])
	}
	if final["हक"] != 1 || final["मुद्दा"] != 1 {
		t.Errorf("final = %v", final)
	}
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"जग्गा": 3, "अंश": 2, "हक": 1}

	got := TopKeywords(counts, 2)
	want := []string{"जग्गा:3", "अंश:2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords = %v, want %v", got, want)
	}

	// Asking for more than exists returns what there is.
	if got := TopKeywords(counts, 10); len(got) != 3 {
		t.Errorf("TopKeywords(10) = %v", got)
	}
}

func TestPrintTopKeywords(t *testing.T) {
	var buf bytes.Buffer
	PrintTopKeywords(&buf, map[string]int{"जग्गा": 3, "अंश": 2}, 2)
	want := "1. जग्गा: 3\n2. अंश: 2\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
