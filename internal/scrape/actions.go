package scrape

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nkp-archive/nkp-scraper/models"
	"github.com/nkp-archive/nkp-scraper/pkg/caching"
	"github.com/nkp-archive/nkp-scraper/pkg/db"
	"github.com/nkp-archive/nkp-scraper/pkg/era"
	"github.com/nkp-archive/nkp-scraper/pkg/fetcher"
	"github.com/nkp-archive/nkp-scraper/pkg/gazette"
	"github.com/nkp-archive/nkp-scraper/pkg/nepali"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// loadConfig reads the YAML config and applies CLI flag overrides.
func loadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("db") {
		cfg.DatabasePath = c.String("db")
	}
	if c.IsSet("html-dir") {
		cfg.HTMLDir = c.String("html-dir")
	}
	if c.Bool("force-fetch") {
		cfg.UseSaved = false
	}
	return cfg, nil
}

// resolveCaseType accepts a case type as its Nepali name or its 1-based
// numeric code.
func resolveCaseType(value string) (string, int, error) {
	if n, err := nepali.ParseYear(value); err == nil {
		name, err := nepali.CaseTypeName(n)
		if err != nil {
			return "", 0, err
		}
		return name, n, nil
	}
	n, err := nepali.CaseTypeNumber(value)
	if err != nil {
		return "", 0, err
	}
	return value, n, nil
}

func (s *Scraper) close() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("failed to close database", "error", err)
	}
}

func newScraper(c *cli.Context, logger *slog.Logger) (*Scraper, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	store, err := caching.NewStore(cfg.HTMLDir)
	if err != nil {
		_ = database.Close()
		return nil, err
	}
	f := fetcher.New(cfg.MaxRetries, time.Duration(cfg.RequestDelaySeconds)*time.Second)
	return NewScraper(cfg, logger, database, store, f), nil
}

// ScrapeAction runs a full scrape of one case type and year.
func ScrapeAction(c *cli.Context) error {
	logger := newLogger(c)

	caseType, _, err := resolveCaseType(c.String("case-type"))
	if err != nil {
		return err
	}

	s, err := newScraper(c, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(2)
	}
	defer s.close()

	summary, err := s.Run(c.Context, caseType, c.String("year"))
	if err != nil {
		return err
	}
	summary.Print(os.Stdout)

	if len(summary.Failed) > 0 {
		return fmt.Errorf("%d links still failing after retry", len(summary.Failed))
	}
	return nil
}

// TestLinkAction scrapes a single case link and prints the extracted
// record as JSON, for inspecting a new era or a misbehaving page.
func TestLinkAction(c *cli.Context) error {
	logger := newLogger(c)

	caseType, caseTypeNumber, err := resolveCaseType(c.String("case-type"))
	if err != nil {
		return err
	}
	year := c.String("year")
	yearNum, err := nepali.ParseYear(year)
	if err != nil {
		return err
	}
	profile, err := era.SelectProfile(yearNum)
	if err != nil {
		return err
	}

	s, err := newScraper(c, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(2)
	}
	defer s.close()

	job := Job{
		URL:            c.String("url"),
		CaseType:       caseType,
		CaseTypeNumber: caseTypeNumber,
		Year:           nepali.ToASCIIDigits(year),
	}
	result := s.ScrapeCase(c.Context, job, profile, c.Bool("force-fetch"))
	if result.Err != nil {
		return fmt.Errorf("%s: %w", result.ErrorType, result.Err)
	}
	if result.Skipped {
		fmt.Println("already stored; rerun with a fresh database to re-extract")
		return nil
	}
	if result.LowConfidence {
		logger.Warn("low-confidence extraction", "url", job.URL)
	}

	return printRecordJSON(result.Record)
}

// TestSavedAction re-extracts records from pages already on disk,
// without touching the network. Useful after an engine change.
func TestSavedAction(c *cli.Context) error {
	logger := newLogger(c)

	s, err := newScraper(c, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(2)
	}
	defer s.close()

	caseTypeNumber := 0
	if c.IsSet("case-type") {
		_, caseTypeNumber, err = resolveCaseType(c.String("case-type"))
		if err != nil {
			return err
		}
	}
	year := ""
	if c.IsSet("year") {
		year = c.String("year")
	}

	files, err := s.store.List(caseTypeNumber, year)
	if err != nil {
		return fmt.Errorf("listing saved pages: %w", err)
	}
	logger.Info("re-extracting saved pages", "count", len(files))

	processed, failed := 0, 0
	for _, file := range files {
		if err := s.reextractSaved(file); err != nil {
			failed++
			logger.Error("failed to re-extract", "file", file, "error", err)
			continue
		}
		processed++
	}

	fmt.Printf("Re-extracted %d saved pages (%d failed)\n", processed, failed)
	if failed > 0 {
		return fmt.Errorf("%d saved pages failed", failed)
	}
	return nil
}

// reextractSaved rebuilds one record from a saved page, deriving the
// case type, year, and link number from the cache filename.
func (s *Scraper) reextractSaved(file string) error {
	caseTypeNumber, year, linkNumber, ok := caching.ParseFilename(file)
	if !ok {
		return fmt.Errorf("unrecognized cache filename %q", file)
	}
	caseType, err := nepali.CaseTypeName(caseTypeNumber)
	if err != nil {
		return err
	}
	yearNum, err := nepali.ParseYear(year)
	if err != nil {
		return err
	}
	profile, err := era.SelectProfile(yearNum)
	if err != nil {
		return err
	}

	html, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/full_detail/%s", strings.TrimRight(s.cfg.BaseURL, "/"), linkNumber)
	page, err := gazette.Parse(link, string(html))
	if err != nil {
		return err
	}

	job := Job{URL: link, CaseType: caseType, CaseTypeNumber: caseTypeNumber, Year: year}
	rec := s.buildRecord(page, job, profile, file)
	if s.checker.LowConfidence(rec) {
		s.logger.Warn("low-confidence extraction", "file", file)
	}
	return s.db.UpsertCase(rec)
}

// ListCaseTypesAction prints the case type table the search form uses.
func ListCaseTypesAction(c *cli.Context) error {
	for i, name := range nepali.CaseTypes {
		fmt.Printf("%d\t%s\n", i+1, name)
	}
	return nil
}

// ListFailedAction prints every link recorded as failed.
func ListFailedAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	failed, err := database.FailedLinks()
	if err != nil {
		return err
	}
	for _, fl := range failed {
		fmt.Printf("%s\t%s\t%s\tretries=%d\t%s\n", fl.CaseType, fl.Year, fl.Link, fl.RetryCount, fl.Error)
	}
	fmt.Printf("%d failed links\n", len(failed))
	return nil
}

func printRecordJSON(rec *models.CaseRecord) error {
	data, err := json.MarshalIndent(recordView(rec), "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling record: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// recordView flattens a record for display, keeping the stored forms of
// the list-or-scalar fields.
func recordView(rec *models.CaseRecord) map[string]any {
	return map[string]any{
		"link":            rec.Link,
		"decision_number": rec.DecisionNumber,
		"volume":          rec.Volume,
		"case_type":       rec.CaseType,
		"year":            rec.Year,
		"month":           rec.Month,
		"issue":           rec.Issue,
		"decision_date":   rec.DecisionDate,
		"court":           rec.Court,
		"judges":          rec.Judges,
		"order_date":      rec.OrderDate,
		"case_number":     rec.CaseNumber.Encoded(),
		"subject":         rec.Subject,
		"petitioner":      rec.Petitioner.Encoded(),
		"respondent":      rec.Respondent.Encoded(),
		"citations":       rec.Citations,
		"holding":         rec.Holding,
		"html_path":       rec.HTMLPath,
	}
}
