package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	// AI explanation LLM (optional — explanations degrade gracefully).
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	LLMRatePerMinute   int // explanation budget enforced by a caller-owned limiter

	// Embedding collaborator.
	GeminiAPIKey string
	EmbedModel   string

	// Job ingestion.
	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string
	RapidAPIKey   string
	RapidAPIHost  string
	MaxJobPages   int
	MaxJobsPerQry int
	MaxTotalJobs  int
	FetchTimeout  time.Duration
	IngestWorkers int

	// Ranking.
	TopK    int
	Weights []float64 // nil = rank.DefaultWeights

	// Storage.
	JobDBPath   string // SQLite job store location
	DatabaseURL string // optional Postgres resume store

	// Cache.
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient *http.Client
	LLMClient  *llm.Client // nil = explanations disabled
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (jobs, embed).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
