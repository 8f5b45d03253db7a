// Package scrape wires the pipeline together: search URL construction,
// link discovery across paginated listings, a bounded worker pool that
// fetches and extracts case pages, persistence, and the end-of-run
// failure report with one retry pass.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/nkp-archive/nkp-scraper/models"
	"github.com/nkp-archive/nkp-scraper/pkg/caching"
	"github.com/nkp-archive/nkp-scraper/pkg/db"
	"github.com/nkp-archive/nkp-scraper/pkg/era"
	"github.com/nkp-archive/nkp-scraper/pkg/extract"
	"github.com/nkp-archive/nkp-scraper/pkg/fetcher"
	"github.com/nkp-archive/nkp-scraper/pkg/gazette"
	"github.com/nkp-archive/nkp-scraper/pkg/langid"
	"github.com/nkp-archive/nkp-scraper/pkg/nepali"
)

// Scraper holds the collaborators one scrape run needs. Safe for use by
// concurrent workers.
type Scraper struct {
	cfg     *models.Config
	logger  *slog.Logger
	db      *db.DB
	store   *caching.Store
	fetcher *fetcher.Fetcher
	checker *langid.Checker
}

func NewScraper(cfg *models.Config, logger *slog.Logger, database *db.DB, store *caching.Store, f *fetcher.Fetcher) *Scraper {
	return &Scraper{
		cfg:     cfg,
		logger:  logger,
		db:      database,
		store:   store,
		fetcher: f,
		checker: langid.NewChecker(),
	}
}

// Run scrapes every case of one type and year: discovers the case
// links, fans them out to the worker pool, records failures, and runs
// one forced-refetch retry pass over whatever failed.
func (s *Scraper) Run(ctx context.Context, caseTypeName, year string) (*Summary, error) {
	yearNum, err := nepali.ParseYear(year)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q: %w", year, err)
	}
	profile, err := era.SelectProfile(yearNum)
	if err != nil {
		return nil, err
	}
	caseTypeNumber, err := nepali.CaseTypeNumber(caseTypeName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting scrape run",
		"case_type", caseTypeName, "year", yearNum, "era", profile.Name)

	links, err := s.collectLinks(ctx, caseTypeNumber, year)
	if err != nil {
		return nil, err
	}
	s.logger.Info("discovered case links", "count", len(links))

	summary := &Summary{CaseType: caseTypeName, Year: year, Total: len(links)}
	results := s.runPool(ctx, profile, makeJobs(links, caseTypeName, caseTypeNumber, year), false)
	s.tally(summary, results)

	// One retry pass, refetching past any stale cached copy.
	if len(summary.Failed) > 0 {
		s.logger.Info("retrying failed links", "count", len(summary.Failed))
		retryResults := s.runPool(ctx, profile, makeJobs(summary.Failed, caseTypeName, caseTypeNumber, year), true)
		summary.Failed = nil
		s.tally(summary, retryResults)
		for _, r := range retryResults {
			if r.Err == nil && !r.Skipped {
				if err := s.db.ClearFailure(r.URL); err != nil {
					s.logger.Error("failed to clear retried link", "url", r.URL, "error", err)
				}
			}
		}
	}

	return summary, nil
}

// collectLinks walks the search listing and its pagination pages.
func (s *Scraper) collectLinks(ctx context.Context, caseTypeNumber int, year string) ([]string, error) {
	searchURL := gazette.SearchURL(s.cfg.BaseURL, caseTypeNumber, year)
	page, err := s.fetchPage(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("fetching search listing: %w", err)
	}

	links := page.CaseLinks()
	for _, pageURL := range page.PaginationURLs(s.cfg.BaseURL) {
		s.logger.Debug("fetching result page", "url", pageURL)
		next, err := s.fetchPage(ctx, pageURL)
		if err != nil {
			s.logger.Error("failed to fetch result page", "url", pageURL, "error", err)
			continue
		}
		links = append(links, next.CaseLinks()...)
	}
	return dedup(links), nil
}

func (s *Scraper) fetchPage(ctx context.Context, url string) (*gazette.Page, error) {
	html, err := s.fetcher.GetHTML(ctx, url)
	if err != nil {
		return nil, err
	}
	return gazette.Parse(url, html)
}

// ScrapeCase processes one case link end to end: cache-aware fetch,
// metadata and block extraction, script check, and upsert. With
// forceRefetch the cached copy is ignored.
func (s *Scraper) ScrapeCase(ctx context.Context, job Job, profile *era.Profile, forceRefetch bool) Result {
	result := Result{URL: job.URL}

	exists, err := s.db.CaseExists(job.URL)
	if err != nil {
		result.Err = err
		result.ErrorType = "db_error"
		return result
	}
	if exists {
		result.Skipped = true
		return result
	}

	linkNumber := gazette.LinkNumber(job.URL)
	html, htmlPath, err := s.loadHTML(ctx, job, linkNumber, forceRefetch)
	if err != nil {
		result.Err = err
		result.ErrorType = "fetch_error"
		return result
	}

	page, err := gazette.Parse(job.URL, html)
	if err != nil {
		result.Err = err
		result.ErrorType = "parse_error"
		return result
	}

	rec := s.buildRecord(page, job, profile, htmlPath)
	result.Record = rec
	result.LowConfidence = s.checker.LowConfidence(rec)

	if err := s.db.UpsertCase(rec); err != nil {
		result.Err = err
		result.ErrorType = "db_error"
		return result
	}
	return result
}

// loadHTML returns the page HTML, from the on-disk store when allowed
// and present, fetching and saving otherwise.
func (s *Scraper) loadHTML(ctx context.Context, job Job, linkNumber string, forceRefetch bool) (string, string, error) {
	if s.cfg.UseSaved && !forceRefetch && linkNumber != "" {
		if html, ok := s.store.Get(job.CaseTypeNumber, job.Year, linkNumber); ok {
			s.logger.Debug("using saved page", "url", job.URL)
			path := filepath.Join(s.store.Dir(), caching.Filename(job.CaseTypeNumber, job.Year, linkNumber))
			return html, path, nil
		}
	}

	html, err := s.fetcher.GetHTML(ctx, job.URL)
	if err != nil {
		return "", "", err
	}
	path := ""
	if linkNumber != "" {
		path, err = s.store.Set(job.CaseTypeNumber, job.Year, linkNumber, html)
		if err != nil {
			s.logger.Error("failed to save page", "url", job.URL, "error", err)
			path = ""
		}
	}
	return html, path, nil
}

// buildRecord assembles the case record from page metadata and the
// extraction engine's scan of the judgment body.
func (s *Scraper) buildRecord(page *gazette.Page, job Job, profile *era.Profile, htmlPath string) *models.CaseRecord {
	seq, found := page.DetailBlocks()
	if !found {
		s.logger.Warn("detail container missing, using distilled content", "url", job.URL)
	}

	rec := extract.New(profile).Extract(seq)

	rec.Link = job.URL
	rec.CaseType = job.CaseType
	rec.DecisionNumber = page.DecisionNumber()
	rec.DecisionDate = page.DecisionDate()
	rec.HTMLPath = htmlPath

	ed := page.Edition()
	rec.Volume = ed.Volume
	rec.Year = ed.Year
	rec.Month = ed.Month
	rec.Issue = ed.Issue
	if rec.Year == models.Unknown {
		rec.Year = job.Year
	}
	return rec
}

// tally folds a batch of results into the summary and records failures.
func (s *Scraper) tally(summary *Summary, results []Result) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed = append(summary.Failed, r.URL)
			s.logger.Error("case failed", "url", r.URL, "error_type", r.ErrorType, "error", r.Err)
			if err := s.db.RecordFailure(summary.CaseType, summary.Year, r.URL, r.Err.Error()); err != nil {
				s.logger.Error("failed to record failure", "url", r.URL, "error", err)
			}
		case r.Skipped:
			summary.Skipped++
			s.logger.Debug("case already stored", "url", r.URL)
		default:
			summary.Stored++
			if r.LowConfidence {
				summary.LowConfidence++
				s.logger.Warn("low-confidence extraction", "url", r.URL)
			}
		}
	}
}

func makeJobs(links []string, caseType string, caseTypeNumber int, year string) []Job {
	jobs := make([]Job, len(links))
	for i, link := range links {
		jobs[i] = Job{
			URL:            link,
			CaseType:       caseType,
			CaseTypeNumber: caseTypeNumber,
			Year:           nepali.ToASCIIDigits(year),
		}
	}
	return jobs
}

func dedup(in []string) []string {
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
