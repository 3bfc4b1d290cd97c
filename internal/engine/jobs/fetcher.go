package jobs

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_match/internal/engine"
)

// DefaultQueries is the built-in ingestion query set, roughly covering the
// taxonomy's domains. job_fetch callers can override it.
var DefaultQueries = []string{
	"software engineer", "software developer", "full stack developer",
	"backend developer", "frontend developer", "web developer",
	"data scientist", "machine learning engineer", "ai engineer",
	"data analyst", "data engineer", "business intelligence analyst",
	"devops engineer", "cloud engineer", "site reliability engineer",
	"cybersecurity analyst", "security engineer", "penetration tester",
	"qa engineer", "test engineer",
	"business analyst", "project manager", "product manager",
	"financial analyst", "accountant",
	"digital marketing executive", "seo specialist",
	"hr executive", "talent acquisition specialist",
	"ui ux designer", "graphic designer",
}

// Fetcher ingests job postings from the configured external APIs. Each
// source has its own rate limiter, owned by the Fetcher rather than any
// package-level state, so independent fetchers never contend.
type Fetcher struct {
	http        *http.Client
	adzunaBase  string
	jsearchBase string
	adzunaLim   *rate.Limiter
	jsearchLim  *rate.Limiter
}

// NewFetcher creates a Fetcher using the engine HTTP client. Both sources
// are paced to two requests per second, matching upstream API etiquette.
func NewFetcher() *Fetcher {
	client := engine.Cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	host := engine.Cfg.RapidAPIHost
	if host == "" {
		host = jsearchDefaultHost
	}
	return &Fetcher{
		http:        client,
		adzunaBase:  adzunaBaseURL,
		jsearchBase: "https://" + host,
		adzunaLim:   rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		jsearchLim:  rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// FetchQuery pulls jobs for one query from every configured source, paging
// up to MaxJobPages and stopping at MaxJobsPerQry normalized results.
// Source errors are logged and skipped — a dead API degrades coverage, it
// does not fail the run.
func (f *Fetcher) FetchQuery(ctx context.Context, query string) []Job {
	maxPages := engine.Cfg.MaxJobPages
	if maxPages <= 0 || maxPages > 2 {
		maxPages = 2
	}
	perQuery := engine.Cfg.MaxJobsPerQry
	if perQuery <= 0 {
		perQuery = 10
	}

	var results []Job
	for page := 1; page <= maxPages; page++ {
		adz, err := f.fetchAdzuna(ctx, page, query)
		if err != nil {
			slog.Warn("adzuna fetch failed", slog.String("query", query), slog.Int("page", page), slog.Any("error", err))
		}
		results = append(results, adz...)
		if len(results) >= perQuery {
			return results[:perQuery]
		}

		js, err := f.fetchJSearch(ctx, page, query)
		if err != nil {
			slog.Warn("jsearch fetch failed", slog.String("query", query), slog.Int("page", page), slog.Any("error", err))
		}
		results = append(results, js...)
		if len(results) >= perQuery {
			return results[:perQuery]
		}
	}
	return results
}

// FetchAll runs FetchQuery for each query on a small worker pool and caps
// the combined result at MaxTotalJobs.
func (f *Fetcher) FetchAll(ctx context.Context, queries []string) []Job {
	workers := engine.Cfg.IngestWorkers
	if workers <= 0 {
		workers = 3
	}
	maxTotal := engine.Cfg.MaxTotalJobs
	if maxTotal <= 0 {
		maxTotal = 800
	}

	sem := make(chan struct{}, workers)
	var mu sync.Mutex
	var all []Job
	var wg sync.WaitGroup

	for _, q := range queries {
		wg.Add(1)
		go func(query string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			mu.Lock()
			full := len(all) >= maxTotal
			mu.Unlock()
			if full || ctx.Err() != nil {
				return
			}

			jobs := f.FetchQuery(ctx, query)
			mu.Lock()
			all = append(all, jobs...)
			mu.Unlock()
		}(q)
	}
	wg.Wait()

	if len(all) > maxTotal {
		all = all[:maxTotal]
	}
	return all
}
