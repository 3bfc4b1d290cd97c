package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/embed"
	"github.com/anatolykoptev/go_match/internal/engine/rank"
	"github.com/anatolykoptev/go_match/internal/engine/skills"
)

// Ranker scores stored jobs against a resume and returns the best matches.
type Ranker struct {
	Embedder embed.Embedder
	Store    *JobStore
	Weights  []float64
	TopK     int
	// PopularityFn supplies the popularity subscore per job. Nil uses
	// the neutral constant.
	PopularityFn func(Job) float64
	Workers      int
}

// NewRanker builds a ranker from the engine configuration.
func NewRanker(embedder embed.Embedder, store *JobStore) *Ranker {
	return &Ranker{
		Embedder: embedder,
		Store:    store,
		Weights:  engine.Cfg.Weights,
		TopK:     engine.Cfg.TopK,
		Workers:  engine.Cfg.IngestWorkers,
	}
}

// RankResult is the full outcome of a ranking run: the top matches plus
// the per-job data the gap aggregates are derived from.
type RankResult struct {
	ResumeSkills []string
	Matches      []engine.JobMatch
	Ranked       []rank.Result
}

// Rank embeds the resume, scores every active job against it, and
// returns the top-K matches sorted by final score. Jobs without a
// stored embedding are embedded lazily and persisted.
func (r *Ranker) Rank(ctx context.Context, resumeText string) (*RankResult, error) {
	engine.IncrMatchRequests()

	resumeSkills := skills.Extract(resumeText)

	resumeVec, err := r.Embedder.Embed(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("rank: embed resume: %w", err)
	}

	jobList, err := r.Store.ListActive(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("rank: list jobs: %w", err)
	}
	if len(jobList) == 0 {
		return &RankResult{ResumeSkills: resumeSkills, Matches: []engine.JobMatch{}}, nil
	}

	if err := r.ensureEmbeddings(ctx, jobList); err != nil {
		return nil, err
	}

	weights := r.Weights
	if len(weights) == 0 {
		weights = rank.DefaultWeights
	}
	popularity := r.PopularityFn
	if popularity == nil {
		popularity = func(Job) float64 { return rank.NeutralPopularity }
	}

	now := time.Now().UTC()
	matches := make([]engine.JobMatch, 0, len(jobList))
	for _, job := range jobList {
		if len(job.Embedding) == 0 {
			continue // embedding failed, skip rather than score blind
		}

		semantic, err := rank.CosineSimilarity(resumeVec, job.Embedding)
		if err != nil {
			slog.Warn("skipping job with mismatched embedding",
				slog.String("hash", job.Hash), slog.Any("error", err))
			continue
		}

		sub := rank.Subscores{
			Semantic:   rank.Clamp01(semantic),
			Keyword:    rank.KeywordScore(resumeSkills, job.Skills),
			Recency:    rank.RecencyScoreOpt(job.PostedAt, now),
			Popularity: popularity(job),
		}
		final, err := rank.FinalScore(sub, weights)
		if err != nil {
			return nil, fmt.Errorf("rank: score %s: %w", job.Hash, err)
		}

		posted := ""
		if job.PostedAt != nil {
			posted = job.PostedAt.Format("2006-01-02")
		}
		snippet := job.DescriptionMD
		if snippet == "" {
			snippet = job.Description
		}
		matches = append(matches, engine.JobMatch{
			JobKey:         job.Hash,
			Title:          job.Title,
			Company:        job.Company,
			Location:       job.Location,
			Source:         job.Source,
			JobType:        job.JobType,
			Experience:     job.Experience,
			Posted:         posted,
			Description:    engine.TruncateRunes(snippet, 400, "..."),
			FinalScore:     final,
			Semantic:       sub.Semantic,
			Keyword:        sub.Keyword,
			Recency:        sub.Recency,
			Popularity:     sub.Popularity,
			Skills:         job.Skills,
			MatchingSkills: intersectSkills(resumeSkills, job.Skills),
			MissingSkills:  rank.MissingSkills(resumeSkills, job.Skills),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].FinalScore != matches[j].FinalScore {
			return matches[i].FinalScore > matches[j].FinalScore
		}
		return matches[i].JobKey < matches[j].JobKey
	})

	topK := r.TopK
	if topK <= 0 {
		topK = 20
	}
	if len(matches) > topK {
		matches = matches[:topK]
	}

	ranked := make([]rank.Result, len(matches))
	for i, m := range matches {
		ranked[i] = rank.Result{
			JobKey:        m.JobKey,
			Title:         m.Title,
			FinalScore:    m.FinalScore,
			Semantic:      m.Semantic,
			Keyword:       m.Keyword,
			MissingSkills: m.MissingSkills,
		}
	}

	return &RankResult{
		ResumeSkills: resumeSkills,
		Matches:      matches,
		Ranked:       ranked,
	}, nil
}

// ensureEmbeddings backfills missing job embeddings with a bounded
// worker pool, persisting each vector as it arrives. Individual
// embedding failures are logged and the job left unscored.
func (r *Ranker) ensureEmbeddings(ctx context.Context, jobList []Job) error {
	var missing []int
	for i := range jobList {
		if len(jobList[i].Embedding) == 0 {
			missing = append(missing, i)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	workers := r.Workers
	if workers <= 0 {
		workers = 3
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for _, idx := range missing {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			job := &jobList[idx]
			vec, err := r.Embedder.Embed(ctx, job.Text())
			if err != nil {
				slog.Warn("job embedding failed",
					slog.String("hash", job.Hash), slog.Any("error", err))
				return
			}
			job.Embedding = vec
			if err := r.Store.SaveEmbedding(ctx, job.Hash, vec); err != nil {
				slog.Warn("saving embedding failed",
					slog.String("hash", job.Hash), slog.Any("error", err))
			}
		}(idx)
	}
	wg.Wait()
	return ctx.Err()
}

// intersectSkills returns the resume skills present in the job's
// required set, sorted.
func intersectSkills(resumeSkills, jobSkills []string) []string {
	have := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		have[s] = struct{}{}
	}
	var out []string
	seen := make(map[string]struct{})
	for _, s := range jobSkills {
		if _, ok := have[s]; ok {
			if _, dup := seen[s]; !dup {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	if out == nil {
		out = []string{}
	}
	return out
}
