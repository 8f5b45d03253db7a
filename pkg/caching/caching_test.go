package caching

import (
	"path/filepath"
	"testing"
)

func TestFilename(t *testing.T) {
	if got := Filename(3, "2077", "9481"); got != "3_2077_9481.html" {
		t.Errorf("Filename = %q", got)
	}
	// Devanagari years normalize to the same name.
	if got := Filename(3, "२०७७", "9481"); got != "3_2077_9481.html" {
		t.Errorf("Filename(devanagari) = %q", got)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if _, ok := s.Get(1, "2077", "9481"); ok {
		t.Fatal("Get before Set should miss")
	}

	path, err := s.Set(1, "2077", "9481", "<html>case</html>")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if filepath.Base(path) != "1_2077_9481.html" {
		t.Errorf("path = %q", path)
	}

	html, ok := s.Get(1, "2077", "9481")
	if !ok {
		t.Fatal("Get after Set should hit")
	}
	if html != "<html>case</html>" {
		t.Errorf("html = %q", html)
	}
}

func TestStoreList(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	for _, f := range []struct {
		caseType int
		year     string
		link     string
	}{
		{1, "2077", "100"},
		{1, "2078", "101"},
		{2, "2077", "102"},
	} {
		if _, err := s.Set(f.caseType, f.year, f.link, "x"); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	cases := []struct {
		name     string
		caseType int
		year     string
		want     int
	}{
		{"type and year", 1, "2077", 1},
		{"year only", 0, "2077", 2},
		{"type only", 1, "", 2},
		{"everything", 0, "", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.List(tc.caseType, tc.year)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != tc.want {
				t.Errorf("List = %v, want %d files", got, tc.want)
			}
		})
	}
}

func TestParseFilename(t *testing.T) {
	caseType, year, link, ok := ParseFilename("/some/dir/3_2077_9481.html")
	if !ok {
		t.Fatal("ParseFilename should match")
	}
	if caseType != 3 || year != "2077" || link != "9481" {
		t.Errorf("got %d %q %q", caseType, year, link)
	}

	for _, bad := range []string{"notes.txt", "3_2077.html", "a_b_c.html"} {
		if _, _, _, ok := ParseFilename(bad); ok {
			t.Errorf("ParseFilename(%q) should not match", bad)
		}
	}
}
