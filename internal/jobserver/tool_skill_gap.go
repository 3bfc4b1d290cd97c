package jobserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/jobs"
)

func registerSkillGap(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_gap",
		Description: "Analyze skill gaps between a resume and one target job description using the canonical skill vocabulary. Returns the keyword match score, matching and missing skills, optional course suggestions per gap, and an AI learning plan when an LLM is configured.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.SkillGapInput) (*mcp.CallToolResult, *jobs.SkillGapResult, error) {
		if input.Resume == "" {
			return nil, nil, errors.New("resume is required")
		}
		if input.JobDescription == "" {
			return nil, nil, errors.New("job_description is required")
		}

		var lim *rate.Limiter
		if perMin := engine.Cfg.LLMRatePerMinute; perMin > 0 {
			lim = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), 1)
		}

		result, err := jobs.AnalyzeSkillGap(ctx, lim, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}
