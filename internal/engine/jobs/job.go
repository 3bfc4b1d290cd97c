// Package jobs owns job ingestion, persistence and ranking composition:
// fetchers for the Adzuna and JSearch APIs, the normalization pipeline that
// turns raw postings into scored-ready records, the SQLite job store, the
// optional Postgres resume store, and the Ranker that ties the skills and
// rank cores together over the active job pool.
package jobs

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// Job is a normalized job posting ready for scoring and persistence.
type Job struct {
	Hash          string     `json:"hash"` // dedup key: md5(title|company|location)
	Title         string     `json:"title"`
	Company       string     `json:"company"`
	Description   string     `json:"description"`              // plain text, feeds skills and embedding
	DescriptionMD string     `json:"description_md,omitempty"` // markdown rendering for display
	Location      string     `json:"location"`
	PostedAt      *time.Time `json:"posted_at,omitempty"` // nil = unknown, scores neutral recency
	Skills        []string   `json:"skills"`
	Source        string     `json:"source"`
	JobType       string     `json:"job_type"`
	Experience    string     `json:"experience"`
	Remote        bool       `json:"remote"`
	Embedding     []float64  `json:"-"` // lazily computed, persisted by the store
	IngestedAt    time.Time  `json:"ingested_at"`
}

// jobHash builds the cross-source dedup key. The md5-of-pipe-joined format
// is load-bearing: stored job rows are keyed by it, so changing it orphans
// existing embeddings.
func jobHash(title, company, location string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s|%s|%s", title, company, location)))
	return hex.EncodeToString(sum[:])
}

// Text returns the text blob used for skill extraction and embedding.
func (j *Job) Text() string {
	return j.Title + " " + j.Description
}
