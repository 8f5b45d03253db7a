package langid

import (
	"testing"

	"github.com/nkp-archive/nkp-scraper/models"
)

func TestIsDevanagari(t *testing.T) {
	c := NewChecker()

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"nepali judgment prose", "प्रस्तुत मुद्दामा निवेदकको माग बमोजिमको आदेश जारी हुने", true},
		{"english chrome", "Sign in to view the full decision text", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsDevanagari(tc.text); got != tc.want {
				t.Errorf("IsDevanagari(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestLowConfidence(t *testing.T) {
	c := NewChecker()

	empty := models.NewCaseRecord()
	if !c.LowConfidence(empty) {
		t.Error("all-unknown record should be low confidence")
	}

	good := models.NewCaseRecord()
	good.Court = "सर्वोच्च अदालत"
	good.Subject = "मुद्दाः उत्प्रेषण परमादेश"
	good.Holding = []string{"निवेदकको माग बमोजिमको आदेश जारी हुने ठहर्छ"}
	if c.LowConfidence(good) {
		t.Error("devanagari record should not be low confidence")
	}

	bad := models.NewCaseRecord()
	bad.Court = "सर्वोच्च अदालत"
	bad.Subject = "Please enable JavaScript to continue"
	bad.Holding = []string{"This page requires a newer browser"}
	if !c.LowConfidence(bad) {
		t.Error("english prose fields should be low confidence")
	}
}
