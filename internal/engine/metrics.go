package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	MatchRequests   atomic.Int64
	AdzunaRequests  atomic.Int64
	JSearchRequests atomic.Int64
	FetchErrors     atomic.Int64
	EmbedRequests   atomic.Int64
	EmbedErrors     atomic.Int64
	LLMCalls        atomic.Int64
	LLMErrors       atomic.Int64
	CourseRequests  atomic.Int64
	JobsIngested    atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"match_requests":   metrics.MatchRequests.Load(),
		"adzuna_requests":  metrics.AdzunaRequests.Load(),
		"jsearch_requests": metrics.JSearchRequests.Load(),
		"fetch_errors":     metrics.FetchErrors.Load(),
		"embed_requests":   metrics.EmbedRequests.Load(),
		"embed_errors":     metrics.EmbedErrors.Load(),
		"llm_calls":        metrics.LLMCalls.Load(),
		"llm_errors":       metrics.LLMErrors.Load(),
		"course_requests":  metrics.CourseRequests.Load(),
		"jobs_ingested":    metrics.JobsIngested.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"match_requests",
		"adzuna_requests", "jsearch_requests", "fetch_errors",
		"embed_requests", "embed_errors",
		"llm_calls", "llm_errors",
		"course_requests", "jobs_ingested",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sub-packages (jobs, embed).
func IncrMatchRequests()   { metrics.MatchRequests.Add(1) }
func IncrAdzunaRequests()  { metrics.AdzunaRequests.Add(1) }
func IncrJSearchRequests() { metrics.JSearchRequests.Add(1) }
func IncrFetchErrors()     { metrics.FetchErrors.Add(1) }
func IncrEmbedRequests()   { metrics.EmbedRequests.Add(1) }
func IncrEmbedErrors()     { metrics.EmbedErrors.Add(1) }
func IncrCourseRequests()  { metrics.CourseRequests.Add(1) }
func IncrJobsIngested(n int64) { metrics.JobsIngested.Add(n) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
