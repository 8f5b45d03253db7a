// Package fetcher performs the HTTP side of scraping: plain GETs with
// the browser user agent the gazette site expects, bounded retries with
// exponential backoff, and a polite delay between requests.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Fetcher is safe for concurrent use by multiple workers.
type Fetcher struct {
	client     *http.Client
	maxRetries int
	delay      time.Duration
}

// New builds a fetcher. maxRetries is the total number of attempts per
// URL; delay is slept before every request.
func New(maxRetries int, delay time.Duration) *Fetcher {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Fetcher{
		client:     &http.Client{Timeout: 30 * time.Second},
		maxRetries: maxRetries,
		delay:      delay,
	}
}

// GetHTML fetches url and returns the response body as a string. Failed
// attempts back off exponentially (1s, 2s, 4s, ...) before retrying; a
// non-200 status counts as a failure. The context cancels both the
// in-flight request and any remaining backoff.
func (f *Fetcher) GetHTML(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < f.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, time.Duration(1<<(attempt-1))*time.Second); err != nil {
				return "", err
			}
		}
		if f.delay > 0 {
			if err := sleep(ctx, f.delay); err != nil {
				return "", err
			}
		}

		body, err := f.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("fetching %s after %d attempts: %w", url, f.maxRetries, lastErr)
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
