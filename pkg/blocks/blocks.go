// Package blocks turns a parsed HTML region into the ordered block
// sequence the extraction engine scans. Headings and paragraphs become
// blocks in document order; a list immediately following a block is not
// itself a block, its items ride along on the preceding one.
package blocks

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Block is one heading- or paragraph-level text unit.
type Block struct {
	// Text is trimmed and whitespace-normalized.
	Text string

	// IsListContainer is true when ListItems is non-empty.
	IsListContainer bool

	// ListItems holds the flattened items of any ul/ol immediately
	// following this block, in document order.
	ListItems []string
}

// FromSelection extracts the block sequence from a case-detail region.
// Blocks whose text normalizes to empty are dropped; positions used for
// checkpointing are indexes into the returned (post-drop) slice.
func FromSelection(sel *goquery.Selection) []Block {
	var out []Block
	sel.Find("h1, p").Each(func(_ int, s *goquery.Selection) {
		b := Block{Text: NormalizeText(s.Text())}

		next := s.Next()
		for next.Length() > 0 {
			name := goquery.NodeName(next)
			if name != "ul" && name != "ol" {
				break
			}
			next.Find("li").Each(func(_ int, li *goquery.Selection) {
				if t := NormalizeText(li.Text()); t != "" {
					b.ListItems = append(b.ListItems, t)
				}
			})
			next = next.Next()
		}
		b.IsListContainer = len(b.ListItems) > 0

		if b.Text == "" && !b.IsListContainer {
			return
		}
		out = append(out, b)
	})
	return out
}

// FromDocument tokenizes the whole document body. Used when no
// narrower case-detail region is available.
func FromDocument(doc *goquery.Document) []Block {
	return FromSelection(doc.Selection)
}

// NormalizeText collapses all interior whitespace runs to single spaces
// and trims the ends.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Texts returns just the block texts, in order. Handy in tests and for
// feeding the engine synthetic sequences.
func Texts(bs []Block) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Text
	}
	return out
}

// FromTexts builds a plain block sequence from strings, skipping empties.
func FromTexts(texts []string) []Block {
	var out []Block
	for _, t := range texts {
		if n := NormalizeText(t); n != "" {
			out = append(out, Block{Text: n})
		}
	}
	return out
}
