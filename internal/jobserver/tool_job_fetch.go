package jobserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/jobs"
)

func registerJobFetch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_fetch",
		Description: "Ingest job postings from the Adzuna and JSearch APIs into the local job pool. Normalizes, deduplicates and skill-tags every posting. Pass queries to target specific roles, or omit for the built-in cross-industry query set.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.JobFetchInput) (*mcp.CallToolResult, engine.JobFetchOutput, error) {
		store := jobs.GetJobStore()
		if store == nil {
			return nil, engine.JobFetchOutput{}, errors.New("job store is not configured")
		}

		queries := input.Queries
		if len(queries) == 0 {
			queries = jobs.DefaultQueries
		}
		limit := input.Limit
		if limit <= 0 {
			limit = 20
		}
		if len(queries) > limit {
			queries = queries[:limit]
		}

		fetched := jobs.NewFetcher().FetchAll(ctx, queries)

		upserted, err := store.UpsertAll(ctx, fetched)
		if err != nil {
			slog.Warn("job upsert stopped early", slog.Int("stored", upserted), slog.Any("error", err))
		}
		engine.IncrJobsIngested(int64(upserted))

		active, err := store.Count(ctx)
		if err != nil {
			return nil, engine.JobFetchOutput{}, fmt.Errorf("count jobs: %w", err)
		}

		return nil, engine.JobFetchOutput{
			Fetched:    len(fetched),
			Upserted:   upserted,
			ActiveJobs: active,
			Summary: fmt.Sprintf("Fetched %d posting(s) across %d query(ies); %d upserted, %d active in the pool.",
				len(fetched), len(queries), upserted, active),
		}, nil
	})
}
