package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StoredResume is a resume saved for a user, with its extracted skills
// and embedding cached alongside the text.
type StoredResume struct {
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Skills    []string  `json:"skills"`
	Embedding []float64 `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrNoResume is returned when a user has no stored resume.
var ErrNoResume = errors.New("no resume on file")

// Package-level singleton, set from main.go.
var resumeStore *ResumeStore

// SetResumeStore sets the package-level resume store instance.
func SetResumeStore(s *ResumeStore) { resumeStore = s }

// GetResumeStore returns the package-level resume store instance (may be nil).
func GetResumeStore() *ResumeStore { return resumeStore }

// ResumeStore holds the pgx connection pool for resume storage.
type ResumeStore struct {
	pool *pgxpool.Pool
}

// ConnectResumeStore creates a pgx pool and ensures the resumes table exists.
func ConnectResumeStore(ctx context.Context, databaseURL string) (*ResumeStore, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &ResumeStore{pool: pool}
	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init resume schema: %w", err)
	}

	slog.Info("resume postgres connected", slog.String("addr", config.ConnConfig.Host))
	return store, nil
}

func (s *ResumeStore) Close() {
	s.pool.Close()
}

func (s *ResumeStore) initSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS resumes (
		user_id    TEXT PRIMARY KEY,
		text       TEXT NOT NULL,
		skills     JSONB NOT NULL DEFAULT '[]',
		embedding  JSONB,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

// SaveResume stores a user's resume, replacing any previous upload.
func (s *ResumeStore) SaveResume(ctx context.Context, r StoredResume) error {
	if r.UserID == "" {
		return errors.New("resume store: user_id is required")
	}
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO resumes (user_id, text, skills, embedding, updated_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   text       = excluded.text,
		   skills     = excluded.skills,
		   embedding  = excluded.embedding,
		   updated_at = now()`,
		r.UserID, r.Text, skills, r.Embedding)
	if err != nil {
		return fmt.Errorf("resume store: save %s: %w", r.UserID, err)
	}
	return nil
}

// GetResume returns the stored resume for a user, or ErrNoResume.
func (s *ResumeStore) GetResume(ctx context.Context, userID string) (*StoredResume, error) {
	var r StoredResume
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, text, skills, embedding, updated_at
		 FROM resumes WHERE user_id = $1`, userID).
		Scan(&r.UserID, &r.Text, &r.Skills, &r.Embedding, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoResume
	}
	if err != nil {
		return nil, fmt.Errorf("resume store: get %s: %w", userID, err)
	}
	return &r, nil
}
