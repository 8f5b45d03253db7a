// Package nepali provides Devanagari numeral normalization and the
// gazette case-type table used in search URLs and cache filenames.
package nepali

import (
	"fmt"
	"strconv"
	"strings"
)

// digitMap maps Devanagari digit glyphs to their ASCII equivalents.
var digitMap = map[rune]rune{
	'०': '0', '१': '1', '२': '2', '३': '3', '४': '4',
	'५': '5', '६': '6', '७': '7', '८': '8', '९': '9',
}

// ToASCIIDigits replaces every Devanagari digit in s with its ASCII
// equivalent. Non-digit runes pass through untouched.
func ToASCIIDigits(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := digitMap[r]; ok {
			b.WriteRune(d)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseYear normalizes a year string (which may use Devanagari digits)
// and parses it as a Bikram Sambat year number.
func ParseYear(s string) (int, error) {
	normalized := strings.TrimSpace(ToASCIIDigits(s))
	year, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", s, err)
	}
	return year, nil
}

// CaseTypes lists the gazette's case categories in their canonical order.
// The 1-based position of an entry is the numeric code the gazette's
// advance search expects.
var CaseTypes = []string{
	"दुनियाबादी देवानी",
	"सरकारबादी देवानी",
	"दुनियावादी फौजदारी",
	"सरकारवादी फौजदारी",
	"रिट",
	"निवेदन",
	"विविध",
}

// CaseTypeNumber returns the 1-based numeric code for a case type name.
func CaseTypeNumber(name string) (int, error) {
	for i, t := range CaseTypes {
		if t == name {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown case type %q", name)
}

// CaseTypeName returns the case type name for a 1-based numeric code.
func CaseTypeName(number int) (string, error) {
	if number < 1 || number > len(CaseTypes) {
		return "", fmt.Errorf("case type number %d out of range 1-%d", number, len(CaseTypes))
	}
	return CaseTypes[number-1], nil
}
