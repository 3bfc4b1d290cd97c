package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_match/internal/engine"
)

const jsearchDefaultHost = "jsearch.p.rapidapi.com"

// jsearchResponse is the JSearch (RapidAPI) envelope.
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// jsearchJob is a raw JSearch posting.
type jsearchJob struct {
	Title       string `json:"job_title"`
	Employer    string `json:"employer_name"`
	Description string `json:"job_description"`
	City        string `json:"job_city"`
	Country     string `json:"job_country"`
	PostedAtUTC string `json:"job_posted_at_datetime_utc"`
}

// jsearchLocation joins the split city/country fields into one location
// string, tolerating either side being empty.
func jsearchLocation(city, country string) string {
	location := strings.TrimSpace(city)
	if country := strings.TrimSpace(country); country != "" {
		if location != "" {
			location += ", " + country
		} else {
			location = country
		}
	}
	return location
}

// parseJSearchResponse decodes a JSearch payload and normalizes each posting.
func parseJSearchResponse(data []byte) ([]Job, error) {
	var parsed jsearchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("jsearch decode: %w", err)
	}

	jobs := make([]Job, 0, len(parsed.Data))
	for _, raw := range parsed.Data {
		jobs = append(jobs, NormalizeJob(
			raw.Title,
			raw.Employer,
			raw.Description,
			jsearchLocation(raw.City, raw.Country),
			parsePostedDate(raw.PostedAtUTC),
			"jsearch",
		))
	}
	return jobs, nil
}

// fetchJSearch pulls one page of postings from the JSearch RapidAPI and
// normalizes them. Missing API key disables the source silently.
func (f *Fetcher) fetchJSearch(ctx context.Context, page int, query string) ([]Job, error) {
	if engine.Cfg.RapidAPIKey == "" {
		return nil, nil
	}
	if err := f.jsearchLim.Wait(ctx); err != nil {
		return nil, err
	}
	engine.IncrJSearchRequests()

	host := engine.Cfg.RapidAPIHost
	if host == "" {
		host = jsearchDefaultHost
	}

	params := url.Values{
		"query":     {query},
		"page":      {strconv.Itoa(page)},
		"num_pages": {"1"},
		"country":   {"us"},
	}
	reqURL := f.jsearchBase + "/search?" + params.Encode()

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-RapidAPI-Key", engine.Cfg.RapidAPIKey)
		req.Header.Set("X-RapidAPI-Host", host)
		return f.http.Do(req)
	})
	if err != nil {
		engine.IncrFetchErrors()
		return nil, fmt.Errorf("jsearch %q page %d: %w", query, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		engine.IncrFetchErrors()
		return nil, fmt.Errorf("jsearch %q page %d: status %d", query, page, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		engine.IncrFetchErrors()
		return nil, fmt.Errorf("jsearch read: %w", err)
	}
	jobs, err := parseJSearchResponse(body)
	if err != nil {
		engine.IncrFetchErrors()
		return nil, err
	}
	return jobs, nil
}
