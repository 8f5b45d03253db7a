package era

import (
	"errors"
	"testing"
)

func TestSelectProfile(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		wantName string
	}{
		{name: "lower bound of earliest era", year: 2015, wantName: "legacy-early"},
		{name: "upper bound of earliest era", year: 2044, wantName: "legacy-early"},
		{name: "legacy-mid", year: 2047, wantName: "legacy-mid"},
		{name: "classical lower bound", year: 2051, wantName: "classical"},
		{name: "classical upper bound", year: 2061, wantName: "classical"},
		{name: "transitional", year: 2070, wantName: "transitional"},
		{name: "modern lower bound", year: 2073, wantName: "modern"},
		{name: "modern upper bound", year: 2082, wantName: "modern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := SelectProfile(tt.year)
			if err != nil {
				t.Fatalf("SelectProfile(%d) error = %v", tt.year, err)
			}
			if p.Name != tt.wantName {
				t.Errorf("SelectProfile(%d).Name = %q, want %q", tt.year, p.Name, tt.wantName)
			}
		})
	}
}

func TestSelectProfileUnsupportedYear(t *testing.T) {
	for _, year := range []int{2014, 2083, 0, -1} {
		_, err := SelectProfile(year)
		if err == nil {
			t.Fatalf("SelectProfile(%d) expected error", year)
		}
		var unsupported *UnsupportedEraError
		if !errors.As(err, &unsupported) {
			t.Fatalf("SelectProfile(%d) error = %T, want *UnsupportedEraError", year, err)
		}
		if unsupported.Year != year {
			t.Errorf("UnsupportedEraError.Year = %d, want %d", unsupported.Year, year)
		}
	}
}

func TestProfileRangesAreOrderedAndDisjoint(t *testing.T) {
	profiles := Profiles()
	if len(profiles) != 5 {
		t.Fatalf("Profiles() returned %d profiles, want 5", len(profiles))
	}
	for i, p := range profiles {
		if p.YearFrom > p.YearTo {
			t.Errorf("profile %s has inverted range %d-%d", p.Name, p.YearFrom, p.YearTo)
		}
		if i > 0 && p.YearFrom != profiles[i-1].YearTo+1 {
			t.Errorf("gap or overlap between %s and %s", profiles[i-1].Name, p.Name)
		}
	}
}

func TestMultiPartyOnlyInLaterEras(t *testing.T) {
	for _, p := range Profiles() {
		hasVersus := len(p.VersusMarkers) > 0
		wantVersus := p.Name == "transitional" || p.Name == "modern"
		if hasVersus != wantVersus {
			t.Errorf("profile %s versus markers present = %v, want %v", p.Name, hasVersus, wantVersus)
		}
	}
}

func TestEraKeywordDrift(t *testing.T) {
	early, err := SelectProfile(2020)
	if err != nil {
		t.Fatal(err)
	}
	mid, err := SelectProfile(2046)
	if err != nil {
		t.Fatal(err)
	}

	// The earliest era folds versus words into the respondent set; later
	// eras split them out. These sets must not be merged.
	found := false
	for _, kw := range early.RespondentKeywords {
		if kw == "विरुद्ध" {
			found = true
		}
	}
	if !found {
		t.Error("legacy-early respondent set should contain विरुद्ध")
	}
	for _, kw := range mid.RespondentKeywords {
		if kw == "विरुद्ध" {
			t.Error("legacy-mid respondent set should not contain विरुद्ध")
		}
	}
}
