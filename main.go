// go_match — resume-to-job matching MCP server.
//
// Exposes six MCP tools: skill_extract, resume_process, job_fetch,
// match_jobs, skill_gap, course_suggest. Jobs are ingested from Adzuna
// and JSearch into a local SQLite pool and ranked against resumes with a
// hybrid semantic + keyword + recency + popularity score.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/embed"
	"github.com/anatolykoptev/go_match/internal/engine/jobs"
	"github.com/anatolykoptev/go_match/internal/jobserver"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	mcpPort := env.Str("MCP_PORT", "8893")

	initEngine()

	slog.Info("starting go_match",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_match",
		Version: version,
	}, nil)

	jobserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 6))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_match",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		LLMAPIKey:          env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks: env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:         env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:           env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:     env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:       env.Int("LLM_MAX_TOKENS", 2048),
		LLMRatePerMinute:   env.Int("LLM_RATE_PER_MINUTE", 10),

		GeminiAPIKey: env.Str("GEMINI_API_KEY", ""),
		EmbedModel:   env.Str("EMBED_MODEL", "text-embedding-004"),

		AdzunaAppID:   env.Str("ADZUNA_APP_ID", ""),
		AdzunaAppKey:  env.Str("ADZUNA_APP_KEY", ""),
		AdzunaCountry: env.Str("ADZUNA_COUNTRY", "us"),
		RapidAPIKey:   env.Str("RAPIDAPI_KEY", ""),
		RapidAPIHost:  env.Str("RAPIDAPI_HOST", "jsearch.p.rapidapi.com"),
		MaxJobPages:   env.Int("MAX_JOB_PAGES", 2),
		MaxJobsPerQry: env.Int("MAX_JOBS_PER_QUERY", 10),
		MaxTotalJobs:  env.Int("MAX_TOTAL_JOBS", 800),
		FetchTimeout:  env.Duration("FETCH_TIMEOUT", 15*time.Second),
		IngestWorkers: env.Int("INGEST_WORKERS", 3),

		TopK:    env.Int("MATCH_TOP_K", 20),
		Weights: parseWeights(env.Str("MATCH_WEIGHTS", "")),

		JobDBPath:   env.Str("JOB_DB_PATH", ""),
		DatabaseURL: env.Str("DATABASE_URL", ""),

		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),

		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if c.LLMAPIKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	} else {
		slog.Info("no LLM key configured, explanations and learning plans disabled")
	}

	engine.Init(c)

	// SQLite job pool (always on — it's the matching substrate).
	store, err := jobs.OpenJobStore(c.JobDBPath)
	if err != nil {
		slog.Error("job store init failed", slog.Any("error", err))
	} else {
		jobs.SetJobStore(store)
	}

	// Optional Postgres resume store: without it, match_jobs needs inline
	// resume text.
	if c.DatabaseURL != "" {
		rs, err := jobs.ConnectResumeStore(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("resume store init failed", slog.Any("error", err))
		} else {
			jobs.SetResumeStore(rs)
		}
	}

	// Gemini embedder: without it, resume_process and match_jobs refuse.
	if c.GeminiAPIKey != "" {
		embedder, err := embed.NewGemini(context.Background(), c.GeminiAPIKey, c.EmbedModel)
		if err != nil {
			slog.Error("embedder init failed", slog.Any("error", err))
		} else {
			jobserver.SetEmbedder(embedder)
			slog.Info("gemini embedder ready", slog.String("model", c.EmbedModel))
		}
	} else {
		slog.Warn("GEMINI_API_KEY not set, ranking tools disabled")
	}

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}

// parseWeights parses "0.55,0.25,0.10,0.10" into the four blend weights.
// Empty or malformed input returns nil, which means the built-in defaults.
func parseWeights(s string) []float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		slog.Warn("MATCH_WEIGHTS must have exactly 4 values, using defaults", slog.String("got", s))
		return nil
	}
	weights := make([]float64, 4)
	for i, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			slog.Warn("MATCH_WEIGHTS value unparseable, using defaults", slog.String("got", p))
			return nil
		}
		weights[i] = w
	}
	return weights
}
