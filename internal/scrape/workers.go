package scrape

import (
	"context"
	"sync"

	"github.com/nkp-archive/nkp-scraper/models"
	"github.com/nkp-archive/nkp-scraper/pkg/era"
)

// Job is one case link for a worker to process.
type Job struct {
	URL            string
	CaseType       string
	CaseTypeNumber int
	Year           string
}

// Result holds the outcome of a processed job.
type Result struct {
	URL           string
	Record        *models.CaseRecord
	Skipped       bool
	LowConfidence bool
	Err           error
	ErrorType     string
}

// runPool fans the jobs out to the configured number of workers and
// collects every result.
func (s *Scraper) runPool(ctx context.Context, profile *era.Profile, jobList []Job, forceRefetch bool) []Result {
	workerCount := s.cfg.WorkerCount
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan Job, len(jobList))
	results := make(chan Result, len(jobList))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go s.worker(ctx, w, profile, &wg, jobs, results, forceRefetch)
	}

	for _, job := range jobList {
		jobs <- job
	}
	close(jobs)

	wg.Wait()
	close(results)

	all := make([]Result, 0, len(jobList))
	for r := range results {
		all = append(all, r)
	}
	return all
}

// worker processes jobs until the channel drains or the context is
// cancelled; cancellation reports the remaining jobs as failures so the
// run summary stays complete.
func (s *Scraper) worker(ctx context.Context, id int, profile *era.Profile, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result, forceRefetch bool) {
	defer wg.Done()
	for job := range jobs {
		if err := ctx.Err(); err != nil {
			results <- Result{URL: job.URL, Err: err, ErrorType: "cancelled"}
			continue
		}
		s.logger.Debug("worker started job", "worker_id", id, "url", job.URL)
		results <- s.ScrapeCase(ctx, job, profile, forceRefetch)
	}
}
