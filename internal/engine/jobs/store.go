package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// JobStore persists normalized jobs and their embeddings in SQLite.
type JobStore struct {
	db *sql.DB
}

var (
	jobStore   *JobStore
	jobStoreMu sync.RWMutex
)

// SetJobStore installs the process-wide job store.
func SetJobStore(s *JobStore) {
	jobStoreMu.Lock()
	jobStore = s
	jobStoreMu.Unlock()
}

// GetJobStore returns the installed job store, or nil if none.
func GetJobStore() *JobStore {
	jobStoreMu.RLock()
	defer jobStoreMu.RUnlock()
	return jobStore
}

// OpenJobStore opens (or creates) the SQLite job database at path.
// An empty path defaults to ~/.go_match/jobs.db.
func OpenJobStore(path string) (*JobStore, error) {
	if path == "" {
		dir := filepath.Join(os.Getenv("HOME"), ".go_match")
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("jobstore: mkdir %s: %w", dir, err)
		}
		path = filepath.Join(dir, "jobs.db")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("jobstore: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := initJobSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("jobstore: init schema: %w", err)
	}
	return &JobStore{db: db}, nil
}

// initJobSchema creates the jobs table if it doesn't exist.
func initJobSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS jobs (
		hash           TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		company        TEXT NOT NULL,
		description    TEXT NOT NULL,
		description_md TEXT NOT NULL DEFAULT '',
		location       TEXT NOT NULL,
		posted_at      TEXT,
		skills         TEXT NOT NULL DEFAULT '[]',
		source         TEXT NOT NULL,
		job_type       TEXT,
		experience     TEXT,
		remote         INTEGER NOT NULL DEFAULT 0,
		embedding      TEXT,
		ingested_at    TEXT NOT NULL
	)`)
	return err
}

// Upsert inserts a job, or refreshes an existing row keyed by hash.
// The stored embedding is preserved on conflict so re-ingested jobs
// don't need to be re-embedded.
func (s *JobStore) Upsert(ctx context.Context, job Job) error {
	skillsJSON, err := json.Marshal(job.Skills)
	if err != nil {
		return fmt.Errorf("jobstore: marshal skills: %w", err)
	}

	var postedAt sql.NullString
	if job.PostedAt != nil {
		postedAt = sql.NullString{String: job.PostedAt.UTC().Format(time.RFC3339), Valid: true}
	}

	remote := 0
	if job.Remote {
		remote = 1
	}

	ingestedAt := job.IngestedAt
	if ingestedAt.IsZero() {
		ingestedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO jobs (hash, title, company, description, description_md,
		                   location, posted_at, skills, source, job_type,
		                   experience, remote, ingested_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(hash) DO UPDATE SET
		   description    = excluded.description,
		   description_md = excluded.description_md,
		   posted_at      = excluded.posted_at,
		   skills         = excluded.skills,
		   source         = excluded.source,
		   ingested_at    = excluded.ingested_at`,
		job.Hash, job.Title, job.Company, job.Description, job.DescriptionMD,
		job.Location, postedAt, string(skillsJSON), job.Source, job.JobType,
		job.Experience, remote, ingestedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("jobstore: upsert %s: %w", job.Hash, err)
	}
	return nil
}

// UpsertAll stores a batch of jobs, returning the number persisted.
func (s *JobStore) UpsertAll(ctx context.Context, batch []Job) (int, error) {
	stored := 0
	for _, job := range batch {
		if err := s.Upsert(ctx, job); err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

// ListActive returns the most recently ingested jobs, newest first.
// A non-positive limit defaults to 1500.
func (s *JobStore) ListActive(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 {
		limit = 1500
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT hash, title, company, description, description_md, location,
		        posted_at, skills, source, job_type, experience, remote,
		        embedding, ingested_at
		 FROM jobs ORDER BY ingested_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("jobstore: list: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var (
			job        Job
			postedAt   sql.NullString
			skillsJSON string
			embedding  sql.NullString
			remote     int
			ingestedAt string
		)
		if err := rows.Scan(&job.Hash, &job.Title, &job.Company, &job.Description,
			&job.DescriptionMD, &job.Location, &postedAt, &skillsJSON, &job.Source,
			&job.JobType, &job.Experience, &remote, &embedding, &ingestedAt); err != nil {
			return nil, fmt.Errorf("jobstore: scan: %w", err)
		}

		if postedAt.Valid {
			if t, err := time.Parse(time.RFC3339, postedAt.String); err == nil {
				job.PostedAt = &t
			}
		}
		if skillsJSON != "" {
			if err := json.Unmarshal([]byte(skillsJSON), &job.Skills); err != nil {
				job.Skills = nil
			}
		}
		if embedding.Valid && embedding.String != "" {
			if err := json.Unmarshal([]byte(embedding.String), &job.Embedding); err != nil {
				job.Embedding = nil
			}
		}
		job.Remote = remote != 0
		if t, err := time.Parse(time.RFC3339, ingestedAt); err == nil {
			job.IngestedAt = t
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// SaveEmbedding stores a job's embedding vector, JSON-encoded.
func (s *JobStore) SaveEmbedding(ctx context.Context, hash string, vec []float64) error {
	data, err := json.Marshal(vec)
	if err != nil {
		return fmt.Errorf("jobstore: marshal embedding: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE jobs SET embedding = ? WHERE hash = ?`, string(data), hash)
	if err != nil {
		return fmt.Errorf("jobstore: save embedding %s: %w", hash, err)
	}
	return nil
}

// Count returns the number of stored jobs.
func (s *JobStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("jobstore: count: %w", err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (s *JobStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
