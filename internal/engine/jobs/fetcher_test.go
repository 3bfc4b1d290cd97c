package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_match/internal/engine"
)

// fetcherConfig points engine config at test credentials with the given
// per-query and page caps, restoring the previous config on cleanup.
func fetcherConfig(t *testing.T, maxPages, perQuery int) {
	t.Helper()
	old := *engine.Cfg
	t.Cleanup(func() { *engine.Cfg = old })

	engine.Cfg.AdzunaAppID = "test-id"
	engine.Cfg.AdzunaAppKey = "test-key"
	engine.Cfg.RapidAPIKey = "test-rapid-key"
	engine.Cfg.MaxJobPages = maxPages
	engine.Cfg.MaxJobsPerQry = perQuery
}

// testFetcher builds a Fetcher aimed at the test server, with pacing off.
func testFetcher(srv *httptest.Server) *Fetcher {
	return &Fetcher{
		http:        srv.Client(),
		adzunaBase:  srv.URL,
		jsearchBase: srv.URL,
		adzunaLim:   rate.NewLimiter(rate.Inf, 1),
		jsearchLim:  rate.NewLimiter(rate.Inf, 1),
	}
}

func adzunaPayload(n int) []byte {
	var resp adzunaResponse
	for i := 0; i < n; i++ {
		var j adzunaJob
		j.Title = fmt.Sprintf("Adzuna Role %d", i)
		j.Description = "python and sql work"
		j.Company.DisplayName = "Acme"
		resp.Results = append(resp.Results, j)
	}
	data, _ := json.Marshal(resp)
	return data
}

func jsearchPayload(n int) []byte {
	var resp jsearchResponse
	for i := 0; i < n; i++ {
		resp.Data = append(resp.Data, jsearchJob{
			Title:       fmt.Sprintf("JSearch Role %d", i),
			Employer:    "CloudInc",
			Description: "kubernetes work",
		})
	}
	data, _ := json.Marshal(resp)
	return data
}

// isAdzunaPath reports whether a test request targets the Adzuna route
// ("/{country}/search/{page}") rather than the JSearch one ("/search").
func isAdzunaPath(path string) bool {
	return strings.HasPrefix(path, "/us/")
}

func TestFetchQueryStopsAtPerQueryCap(t *testing.T) {
	fetcherConfig(t, 2, 10)

	var adzunaCalls, jsearchCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAdzunaPath(r.URL.Path) {
			adzunaCalls++
			w.Write(adzunaPayload(7))
			return
		}
		jsearchCalls++
		w.Write(jsearchPayload(7))
	}))
	defer srv.Close()

	jobs := testFetcher(srv).FetchQuery(context.Background(), "software engineer")
	if len(jobs) != 10 {
		t.Errorf("got %d jobs, want 10 (per-query cap)", len(jobs))
	}
	if adzunaCalls != 1 || jsearchCalls != 1 {
		t.Errorf("calls = %d adzuna / %d jsearch, want 1 each (cap hit on page 1)",
			adzunaCalls, jsearchCalls)
	}
}

func TestFetchQueryStopsAtPageCap(t *testing.T) {
	// perQuery high enough that only the page cap can stop paging; a zero
	// page config still caps at two pages.
	fetcherConfig(t, 0, 50)

	var adzunaCalls, jsearchCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAdzunaPath(r.URL.Path) {
			adzunaCalls++
			w.Write(adzunaPayload(2))
			return
		}
		jsearchCalls++
		w.Write(jsearchPayload(2))
	}))
	defer srv.Close()

	jobs := testFetcher(srv).FetchQuery(context.Background(), "data analyst")
	if len(jobs) != 8 {
		t.Errorf("got %d jobs, want 8 (2 sources x 2 pages x 2 results)", len(jobs))
	}
	if adzunaCalls != 2 || jsearchCalls != 2 {
		t.Errorf("calls = %d adzuna / %d jsearch, want 2 each", adzunaCalls, jsearchCalls)
	}
}

func TestFetchQuerySurvivesDeadSource(t *testing.T) {
	fetcherConfig(t, 1, 10)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAdzunaPath(r.URL.Path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write(jsearchPayload(3))
	}))
	defer srv.Close()

	jobs := testFetcher(srv).FetchQuery(context.Background(), "devops engineer")
	if len(jobs) != 3 {
		t.Errorf("got %d jobs, want 3 from the surviving source", len(jobs))
	}
	for _, j := range jobs {
		if j.Source != "jsearch" {
			t.Errorf("source = %q, want jsearch", j.Source)
		}
	}
}
