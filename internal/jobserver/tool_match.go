package jobserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/jobs"
	"github.com/anatolykoptev/go_match/internal/engine/rank"
)

func registerMatchJobs(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_jobs",
		Description: "Rank the ingested job pool against a resume using a hybrid score: semantic embedding similarity, skill keyword overlap, posting recency and source popularity, blended with configurable weights. Returns the top matches with full score breakdowns, per-job missing skills, the most common gaps across top matches, and a role-level gap matrix.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.MatchJobsInput) (*mcp.CallToolResult, engine.MatchJobsOutput, error) {
		resumeText, err := resolveResume(ctx, input)
		if err != nil {
			return nil, engine.MatchJobsOutput{}, err
		}
		store := jobs.GetJobStore()
		if store == nil {
			return nil, engine.MatchJobsOutput{}, errors.New("job store is not configured")
		}
		if resumeEmbedder == nil {
			return nil, engine.MatchJobsOutput{}, errors.New("embedding is not configured (set GEMINI_API_KEY)")
		}

		cacheKey := engine.CacheKey("match_jobs", resumeText,
			fmt.Sprint(input.TopK), fmt.Sprint(input.Weights), fmt.Sprint(input.Explain))
		if out, ok := engine.CacheLoadJSON[engine.MatchJobsOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		ranker := jobs.NewRanker(resumeEmbedder, store)
		if input.TopK > 0 {
			ranker.TopK = input.TopK
		}
		if len(input.Weights) > 0 {
			ranker.Weights = input.Weights
		}

		res, err := ranker.Rank(ctx, resumeText)
		if err != nil {
			return nil, engine.MatchJobsOutput{}, err
		}

		if input.Explain && len(res.Matches) > 0 {
			// Explanation pacing is owned here, per request, so concurrent
			// match calls never contend on shared limiter state.
			perMin := engine.Cfg.LLMRatePerMinute
			if perMin <= 0 {
				perMin = 10
			}
			lim := rate.NewLimiter(rate.Limit(float64(perMin)/60.0), 1)
			for i := range res.Matches {
				res.Matches[i].Explanation = jobs.ExplainMatch(ctx, lim, res.Matches[i])
			}
		}

		out := buildMatchOutput(res)

		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// buildMatchOutput assembles the tool output from a rank result. Gap
// aggregates cover every returned match; only the matrix caps at 10 roles.
func buildMatchOutput(res *jobs.RankResult) engine.MatchJobsOutput {
	return engine.MatchJobsOutput{
		ResumeSkills:  res.ResumeSkills,
		Matches:       res.Matches,
		CommonMissing: rank.AggregateMissing(res.Ranked, len(res.Ranked)),
		GapMatrix:     rank.GapMatrix(res.Ranked, len(res.Ranked), 10),
		Summary:       matchSummary(res),
	}
}

// resolveResume picks the resume text: inline text wins, otherwise the
// stored resume for user_id.
func resolveResume(ctx context.Context, input engine.MatchJobsInput) (string, error) {
	if text := strings.TrimSpace(input.Resume); text != "" {
		return text, nil
	}
	if input.UserID == "" {
		return "", errors.New("either resume or user_id is required")
	}
	store := jobs.GetResumeStore()
	if store == nil {
		return "", errors.New("resume store is not configured; pass resume text directly")
	}
	stored, err := store.GetResume(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, jobs.ErrNoResume) {
			return "", fmt.Errorf("no resume stored for %q; call resume_process first", input.UserID)
		}
		return "", err
	}
	return stored.Text, nil
}

func matchSummary(res *jobs.RankResult) string {
	if len(res.Matches) == 0 {
		return "No jobs in the pool yet. Run job_fetch to ingest postings."
	}
	top := res.Matches[0]
	return fmt.Sprintf("Ranked %d match(es); best fit: %s at %s (score %.2f).",
		len(res.Matches), top.Title, top.Company, top.FinalScore)
}
