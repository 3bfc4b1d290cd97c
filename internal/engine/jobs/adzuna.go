package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_match/internal/engine"
)

const adzunaBaseURL = "https://api.adzuna.com/v1/api/jobs"

// adzunaResponse is the Adzuna search API envelope.
type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

// adzunaJob is a raw Adzuna posting; company and location are nested objects.
type adzunaJob struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Created     string `json:"created"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
}

// parseAdzunaResponse decodes an Adzuna search payload and normalizes each
// posting, flattening the nested company/location objects.
func parseAdzunaResponse(data []byte) ([]Job, error) {
	var parsed adzunaResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("adzuna decode: %w", err)
	}

	jobs := make([]Job, 0, len(parsed.Results))
	for _, raw := range parsed.Results {
		jobs = append(jobs, NormalizeJob(
			raw.Title,
			raw.Company.DisplayName,
			raw.Description,
			raw.Location.DisplayName,
			parsePostedDate(raw.Created),
			"adzuna",
		))
	}
	return jobs, nil
}

// fetchAdzuna pulls one page of postings from Adzuna and normalizes them.
// Missing credentials disable the source silently (empty result, no error),
// matching the other source's behavior so ingestion composes.
func (f *Fetcher) fetchAdzuna(ctx context.Context, page int, query string) ([]Job, error) {
	if engine.Cfg.AdzunaAppID == "" || engine.Cfg.AdzunaAppKey == "" {
		return nil, nil
	}
	if err := f.adzunaLim.Wait(ctx); err != nil {
		return nil, err
	}
	engine.IncrAdzunaRequests()

	country := engine.Cfg.AdzunaCountry
	if country == "" {
		country = "us"
	}

	params := url.Values{
		"app_id":           {engine.Cfg.AdzunaAppID},
		"app_key":          {engine.Cfg.AdzunaAppKey},
		"results_per_page": {"10"},
		"what":             {query},
		"content-type":     {"application/json"},
	}
	reqURL := fmt.Sprintf("%s/%s/search/%d?%s", f.adzunaBase, country, page, params.Encode())

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}
		return f.http.Do(req)
	})
	if err != nil {
		engine.IncrFetchErrors()
		return nil, fmt.Errorf("adzuna %q page %d: %w", query, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		engine.IncrFetchErrors()
		return nil, fmt.Errorf("adzuna %q page %d: status %d", query, page, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		engine.IncrFetchErrors()
		return nil, fmt.Errorf("adzuna read: %w", err)
	}
	jobs, err := parseAdzunaResponse(body)
	if err != nil {
		engine.IncrFetchErrors()
		return nil, err
	}
	return jobs, nil
}
