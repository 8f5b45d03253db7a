// Package caching stores fetched case pages on disk under
// deterministic names, so interrupted runs resume without refetching
// and saved corpora can be re-extracted offline.
package caching

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/nkp-archive/nkp-scraper/pkg/nepali"
)

// Store is a directory of saved case pages named
// {caseTypeNumber}_{year}_{linkNumber}.html.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) the HTML directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating html directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's directory.
func (s *Store) Dir() string {
	return s.dir
}

// Filename builds the canonical cache name for a case page. The year is
// normalized to ASCII digits so Devanagari and ASCII input name the
// same file.
func Filename(caseTypeNumber int, year, linkNumber string) string {
	return fmt.Sprintf("%d_%s_%s.html", caseTypeNumber, nepali.ToASCIIDigits(year), linkNumber)
}

// Get loads a saved page, reporting whether it existed.
func (s *Store) Get(caseTypeNumber int, year, linkNumber string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, Filename(caseTypeNumber, year, linkNumber)))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set saves a page and returns the path it was written to.
func (s *Store) Set(caseTypeNumber int, year, linkNumber, html string) (string, error) {
	path := filepath.Join(s.dir, Filename(caseTypeNumber, year, linkNumber))
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("writing cached page: %w", err)
	}
	return path, nil
}

// List returns the saved pages matching the criteria. A zero case type
// or empty year matches everything on that axis.
func (s *Store) List(caseTypeNumber int, year string) ([]string, error) {
	pattern := "*"
	switch {
	case caseTypeNumber > 0 && year != "":
		pattern = fmt.Sprintf("%d_%s_*.html", caseTypeNumber, nepali.ToASCIIDigits(year))
	case year != "":
		pattern = fmt.Sprintf("*_%s_*.html", nepali.ToASCIIDigits(year))
	case caseTypeNumber > 0:
		pattern = fmt.Sprintf("%d_*_*.html", caseTypeNumber)
	}
	return filepath.Glob(filepath.Join(s.dir, pattern))
}

var filenameRe = regexp.MustCompile(`^(\d+)_(\d+)_(\d+)\.html$`)

// ParseFilename recovers the case type number, year, and link number
// from a cache filename (base name or full path).
func ParseFilename(name string) (caseTypeNumber int, year, linkNumber string, ok bool) {
	m := filenameRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return 0, "", "", false
	}
	n := 0
	for _, r := range m[1] {
		n = n*10 + int(r-'0')
	}
	return n, m[2], m[3], true
}
