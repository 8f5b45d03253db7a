// Package gazette reads the Nepal Kanun Patrika web pages: the advance
// search form, its paginated result listings, and the individual case
// detail pages. It knows the site's markup quirks, most notably the
// detail container whose element id carries a trailing space.
package gazette

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/nkp-archive/nkp-scraper/models"
	"github.com/nkp-archive/nkp-scraper/pkg/blocks"
	"github.com/nkp-archive/nkp-scraper/pkg/nepali"
)

// detailContainerSelector matches the judgment body. The id really does
// end in a space on the live site.
const detailContainerSelector = `div[id='faisala_detail ']`

const decisionDateLabel = "फैसला मिति"

// Page is one fetched gazette page, search listing or case detail.
type Page struct {
	URL string

	doc *goquery.Document
}

// Parse builds a Page from raw HTML.
func Parse(rawURL, html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &Page{URL: rawURL, doc: doc}, nil
}

// Edition is the issue-level metadata printed in the page header.
type Edition struct {
	Volume string
	Year   string
	Month  string
	Issue  string
}

// DecisionNumber returns the decision number from the post title, which
// reads "निर्णय नं. <number> - <case name>". The number is the third
// whitespace token; anything shorter yields the unknown sentinel.
func (p *Page) DecisionNumber() string {
	title := strings.Fields(p.doc.Find("h1.post-title").First().Text())
	if len(title) > 2 {
		return title[2]
	}
	return models.Unknown
}

// Edition reads the भाग/साल/महिना/अंक spans from the edition-info box.
func (p *Page) Edition() Edition {
	return Edition{
		Volume: p.editionField("भाग"),
		Year:   p.editionField("साल"),
		Month:  p.editionField("महिना"),
		Issue:  p.editionField("अंक"),
	}
}

func (p *Page) editionField(label string) string {
	value := models.Unknown
	p.doc.Find("div#edition-info span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), label) {
			return true
		}
		if strong := strings.TrimSpace(s.Find("strong").First().Text()); strong != "" {
			value = strong
		}
		return false
	})
	return value
}

// DecisionDate pulls the decision date out of the post-meta line, the
// first token after the "फैसला मिति :" label.
func (p *Page) DecisionDate() string {
	meta := p.doc.Find("div.post-meta").First().Text()
	if !strings.Contains(meta, decisionDateLabel) {
		return models.Unknown
	}
	parts := strings.Split(strings.TrimSpace(meta), decisionDateLabel+" :")
	line := parts[len(parts)-1]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return models.Unknown
	}
	return fields[0]
}

// DetailBlocks returns the judgment body as an ordered block sequence.
// When the detail container is missing the page falls back to readability
// distillation of the whole page; the second return reports whether the
// container itself was found.
func (p *Page) DetailBlocks() ([]blocks.Block, bool) {
	container := p.doc.Find(detailContainerSelector).First()
	if container.Length() > 0 {
		return blocks.FromSelection(container), true
	}
	seq, err := p.distilledBlocks()
	if err != nil {
		return nil, false
	}
	return seq, false
}

// distilledBlocks lets go-readability find the main content, then runs
// the block extractor over the clean HTML it produces.
func (p *Page) distilledBlocks() ([]blocks.Block, error) {
	parsedURL, err := url.Parse(p.URL)
	if err != nil {
		return nil, err
	}
	html, err := p.doc.Html()
	if err != nil {
		return nil, err
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, err
	}
	clean, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, err
	}
	return blocks.FromDocument(clean), nil
}

// CaseLinks extracts the case detail links from a search result
// listing. Each result row renders an in-page "#" anchor directly
// before the real case link, so the link after every "#" href is taken.
// Listings with a single candidate are treated as empty, matching the
// site's no-result markup which still carries one such pair.
func (p *Page) CaseLinks() []string {
	var anchors []string
	p.doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		anchors = append(anchors, href)
	})

	var li []string
	for i := 0; i < len(anchors); i++ {
		if strings.Contains(anchors[i], "#") {
			i++
			if i < len(anchors) && anchors[i] != "" {
				li = append(li, anchors[i])
			}
		}
	}
	if len(li) <= 1 {
		return nil
	}
	return dedupOrdered(li)
}

// PaginationURLs returns the URLs of the remaining result pages. The
// site marks a paginated listing with a javascript:void(0) pager link
// and numbers its pages by a trailing offset parameter in steps of 20;
// the largest offset among the advance_search links bounds the range.
func (p *Page) PaginationURLs(baseURL string) []string {
	var hrefs, searchPages []string
	marker := strings.TrimRight(baseURL, "/") + "/advance_search/"
	p.doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		hrefs = append(hrefs, href)
		if strings.Contains(href, marker) {
			searchPages = append(searchPages, href)
		}
	})

	paginated := false
	for _, h := range hrefs {
		if strings.Contains(h, "javascript:void(0)") {
			paginated = true
			break
		}
	}
	if !paginated || len(searchPages) == 0 {
		return nil
	}

	max := 0
	for _, page := range searchPages {
		if n, ok := trailingOffset(page); ok && n > max {
			max = n
		}
	}
	if max == 0 {
		return nil
	}

	prefix := searchPages[0]
	if i := strings.LastIndexByte(prefix, '='); i >= 0 {
		prefix = prefix[:i+1]
	}
	var pages []string
	for offset := 20; offset <= max; offset += 20 {
		pages = append(pages, prefix+strconv.Itoa(offset))
	}
	return pages
}

// trailingOffset parses the integer after the final '=' of a URL.
func trailingOffset(href string) (int, bool) {
	i := strings.LastIndexByte(href, '=')
	if i < 0 || i+1 >= len(href) {
		return 0, false
	}
	n := 0
	for _, r := range href[i+1:] {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func dedupOrdered(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SearchURL builds the advance-search query for one case type and year.
// Every form field is sent, empty or not, the way the site's own form
// submits it.
func SearchURL(baseURL string, caseTypeNumber int, year string) string {
	params := url.Values{
		"mudda_number":      {""},
		"faisala_date_from": {""},
		"faisala_date_to":   {""},
		"mudda_type":        {strconv.Itoa(caseTypeNumber)},
		"mudda_name":        {""},
		"badi":              {""},
		"pratibadi":         {""},
		"judge":             {""},
		"ijlas_type":        {""},
		"nirnaya_number":    {""},
		"faisala_type":      {""},
		"keywords":          {""},
		"edition":           {""},
		"year":              {nepali.ToASCIIDigits(year)},
		"month":             {""},
		"volume":            {""},
		"Submit":            {"खोज्‍नुहोस्"},
	}
	return strings.TrimRight(baseURL, "/") + "/?" + params.Encode() + "#"
}

var linkNumberRe = regexp.MustCompile(`/(\d+)/?$`)

// LinkNumber extracts the numeric case id from the tail of a detail
// URL, or "" when the URL carries none.
func LinkNumber(rawURL string) string {
	m := linkNumberRe.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}
