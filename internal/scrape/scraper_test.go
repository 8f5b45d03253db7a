package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nkp-archive/nkp-scraper/models"
	"github.com/nkp-archive/nkp-scraper/pkg/caching"
	"github.com/nkp-archive/nkp-scraper/pkg/db"
	"github.com/nkp-archive/nkp-scraper/pkg/fetcher"
)

const detailPageTemplate = `<html><body>
<h1 class="post-title">निर्णय नं. %s - उत्प्रेषण परमादेश</h1>
<div id="edition-info">
	<span>भाग: <strong>६२</strong></span>
	<span>साल: <strong>२०७७</strong></span>
	<span>महिना: <strong>वैशाख</strong></span>
	<span>अंक: <strong>१</strong></span>
</div>
<div class="post-meta">फैसला मिति : २०७७/१/२ शुक्रबार</div>
<div id="faisala_detail ">
	<h1>सर्वोच्च अदालत, संयुक्त इजलास</h1>
	<p>माननीय न्यायाधीश श्री रामप्रसाद श्रेष्ठ</p>
	<p>फैसला मिति : २०७७/१/२</p>
	<p>०७७-WO-०१२३</p>
	<p>मुद्दाः उत्प्रेषण परमादेश</p>
	<p>निवेदक ः हरिबहादुर थापा</p>
	<p>विपक्षी नेपाल सरकार, प्रधानमन्त्री तथा मन्त्रिपरिषद्को कार्यालय</p>
	<p>(प्रकरण नं. १) निवेदन माग बमोजिमको आदेश जारी हुने ।</p>
	<p>फैसला</p>
	<p>ठहर खण्डमा उल्लेख भए बमोजिम निवेदकको माग दाबी पुग्ने ।</p>
</div>
</body></html>`

// newTestServer serves a two-case search listing and the two detail
// pages, in the site's own markup.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/full_detail/9481"):
			fmt.Fprintf(w, detailPageTemplate, "१०२९३")
		case strings.HasPrefix(r.URL.Path, "/full_detail/9482"):
			fmt.Fprintf(w, detailPageTemplate, "१०२९४")
		default:
			fmt.Fprintf(w, `<html><body>
				<a href="#">1</a><a href="%s/full_detail/9481">case one</a>
				<a href="#">2</a><a href="%s/full_detail/9482">case two</a>
				</body></html>`, srv.URL, srv.URL)
		}
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestScraper(t *testing.T, baseURL string) *Scraper {
	t.Helper()
	cfg := models.DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.WorkerCount = 2
	cfg.MaxRetries = 1
	cfg.RequestDelaySeconds = 0
	cfg.HTMLDir = t.TempDir()
	cfg.UseSaved = true

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store, err := caching.NewStore(cfg.HTMLDir)
	if err != nil {
		t.Fatalf("caching.NewStore: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewScraper(cfg, logger, database, store, fetcher.New(cfg.MaxRetries, 0))
}

func TestRunScrapesAndStoresCases(t *testing.T) {
	srv := newTestServer(t)
	s := newTestScraper(t, srv.URL)

	summary, err := s.Run(context.Background(), "रिट", "२०७७")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Total != 2 || summary.Stored != 2 {
		t.Errorf("summary = %+v, want 2 discovered and 2 stored", summary)
	}
	if len(summary.Failed) != 0 {
		t.Errorf("Failed = %v, want none", summary.Failed)
	}

	n, err := s.db.CaseCount()
	if err != nil {
		t.Fatalf("CaseCount: %v", err)
	}
	if n != 2 {
		t.Errorf("CaseCount = %d, want 2", n)
	}

	var court, petitioner, caseNumber string
	err = s.db.QueryRow(
		"SELECT अदालत_वा_इजलास, निवेदक, केस_नम्बर FROM cases WHERE लिङ्क = ?",
		srv.URL+"/full_detail/9481",
	).Scan(&court, &petitioner, &caseNumber)
	if err != nil {
		t.Fatalf("query stored case: %v", err)
	}
	if court != "सर्वोच्च अदालत, संयुक्त इजलास" {
		t.Errorf("court = %q", court)
	}
	if petitioner != "हरिबहादुर थापा" {
		t.Errorf("petitioner = %q", petitioner)
	}
	if caseNumber != "०७७-WO-०१२३" {
		t.Errorf("case number = %q", caseNumber)
	}

	// Pages land in the on-disk store under their canonical names.
	if _, err := os.Stat(filepath.Join(s.cfg.HTMLDir, "5_2077_9481.html")); err != nil {
		t.Errorf("saved page missing: %v", err)
	}
}

func TestRunSkipsStoredCases(t *testing.T) {
	srv := newTestServer(t)
	s := newTestScraper(t, srv.URL)

	if _, err := s.Run(context.Background(), "रिट", "२०७७"); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	summary, err := s.Run(context.Background(), "रिट", "२०७७")
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if summary.Skipped != 2 || summary.Stored != 0 {
		t.Errorf("summary = %+v, want 2 skipped and 0 stored", summary)
	}
}

func TestRunRecordsFailures(t *testing.T) {
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/full_detail/9481"):
			fmt.Fprintf(w, detailPageTemplate, "१०२९३")
		case strings.HasPrefix(r.URL.Path, "/full_detail/9999"):
			w.WriteHeader(http.StatusInternalServerError)
		default:
			fmt.Fprintf(w, `<html><body>
				<a href="#">1</a><a href="%s/full_detail/9481">good</a>
				<a href="#">2</a><a href="%s/full_detail/9999">broken</a>
				</body></html>`, srv.URL, srv.URL)
		}
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	s := newTestScraper(t, srv.URL)
	summary, err := s.Run(context.Background(), "रिट", "२०७७")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Stored != 1 {
		t.Errorf("Stored = %d, want 1", summary.Stored)
	}
	if len(summary.Failed) != 1 || !strings.Contains(summary.Failed[0], "9999") {
		t.Errorf("Failed = %v, want the broken link", summary.Failed)
	}

	failed, err := s.db.FailedLinks()
	if err != nil {
		t.Fatalf("FailedLinks: %v", err)
	}
	if len(failed) != 1 {
		t.Fatalf("failed_links has %d rows, want 1", len(failed))
	}
	// Both the first pass and the retry pass recorded the failure.
	if failed[0].RetryCount != 1 {
		t.Errorf("retry count = %d, want 1", failed[0].RetryCount)
	}
}

func TestUnsupportedYearFailsFast(t *testing.T) {
	srv := newTestServer(t)
	s := newTestScraper(t, srv.URL)

	if _, err := s.Run(context.Background(), "रिट", "2005"); err == nil {
		t.Fatal("want error for a year outside every era")
	}
}

func TestReextractSaved(t *testing.T) {
	srv := newTestServer(t)
	s := newTestScraper(t, srv.URL)

	if _, err := s.store.Set(5, "2077", "9481", fmt.Sprintf(detailPageTemplate, "१०२९३")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	file := filepath.Join(s.cfg.HTMLDir, "5_2077_9481.html")

	if err := s.reextractSaved(file); err != nil {
		t.Fatalf("reextractSaved: %v", err)
	}

	n, err := s.db.CaseCount()
	if err != nil {
		t.Fatalf("CaseCount: %v", err)
	}
	if n != 1 {
		t.Errorf("CaseCount = %d, want 1", n)
	}

	var caseType string
	if err := s.db.QueryRow("SELECT मुद्दाको_किसिम FROM cases").Scan(&caseType); err != nil {
		t.Fatalf("query: %v", err)
	}
	if caseType != "रिट" {
		t.Errorf("case type = %q, want रिट", caseType)
	}
}
