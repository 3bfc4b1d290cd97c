package jobserver

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/skills"
)

func registerSkillExtract(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_extract",
		Description: "Extract canonical skills from free text (a resume or job description) against a fixed cross-industry skill vocabulary. Handles aliases (ML → machine learning, JS → javascript) and multi-word skills. Returns a sorted, deduplicated skill list.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.SkillExtractInput) (*mcp.CallToolResult, engine.SkillExtractOutput, error) {
		if strings.TrimSpace(input.Text) == "" {
			return nil, engine.SkillExtractOutput{}, errors.New("text is required")
		}
		found := skills.Extract(input.Text)
		return nil, engine.SkillExtractOutput{
			Skills: found,
			Count:  len(found),
		}, nil
	})
}
