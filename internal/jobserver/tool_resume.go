package jobserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/embed"
	"github.com/anatolykoptev/go_match/internal/engine/jobs"
	"github.com/anatolykoptev/go_match/internal/engine/skills"
)

// resumeEmbedder is the embedding collaborator for resume tools, set from main.
var resumeEmbedder embed.Embedder

// SetEmbedder installs the embedder used by resume_process and match_jobs.
func SetEmbedder(e embed.Embedder) { resumeEmbedder = e }

func registerResumeProcess(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_process",
		Description: "Process a plain-text resume: extract canonical skills, compute its embedding, and persist it for later match_jobs calls by user_id. Re-uploading replaces the previous resume.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ResumeProcessInput) (*mcp.CallToolResult, engine.ResumeProcessOutput, error) {
		if input.UserID == "" {
			return nil, engine.ResumeProcessOutput{}, errors.New("user_id is required")
		}
		if strings.TrimSpace(input.Text) == "" {
			return nil, engine.ResumeProcessOutput{}, errors.New("text is required")
		}
		if resumeEmbedder == nil {
			return nil, engine.ResumeProcessOutput{}, errors.New("embedding is not configured (set GEMINI_API_KEY)")
		}

		resumeSkills := skills.Extract(input.Text)

		vec, err := resumeEmbedder.Embed(ctx, input.Text)
		if err != nil {
			return nil, engine.ResumeProcessOutput{}, fmt.Errorf("embed resume: %w", err)
		}

		persisted := false
		if store := jobs.GetResumeStore(); store != nil {
			err := store.SaveResume(ctx, jobs.StoredResume{
				UserID:    input.UserID,
				Text:      input.Text,
				Skills:    resumeSkills,
				Embedding: vec,
			})
			if err != nil {
				slog.Warn("resume persist failed", slog.String("user", input.UserID), slog.Any("error", err))
			} else {
				persisted = true
			}
		}

		return nil, engine.ResumeProcessOutput{
			UserID:    input.UserID,
			Skills:    resumeSkills,
			Dimension: len(vec),
			Persisted: persisted,
			Summary: fmt.Sprintf("Extracted %d skill(s) and a %d-dim embedding for %s (persisted: %v).",
				len(resumeSkills), len(vec), input.UserID, persisted),
		}, nil
	})
}
