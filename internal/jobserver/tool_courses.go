package jobserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/jobs"
)

// CourseSuggestOutput is the structured output for course_suggest.
type CourseSuggestOutput struct {
	Skill   string        `json:"skill"`
	Courses []jobs.Course `json:"courses"`
}

func registerCourseSuggest(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "course_suggest",
		Description: "Suggest Coursera courses for a skill. Tries the public catalog API first, then curated skill-to-course mappings covering IT and non-IT domains, and always falls back to a search link — never returns empty-handed.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.CourseSuggestInput) (*mcp.CallToolResult, CourseSuggestOutput, error) {
		skill := strings.TrimSpace(input.Skill)
		if skill == "" {
			return nil, CourseSuggestOutput{}, errors.New("skill is required")
		}

		cacheKey := engine.CacheKey("course_suggest", strings.ToLower(skill), fmt.Sprint(input.Limit))
		if out, ok := engine.CacheLoadJSON[CourseSuggestOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		out := CourseSuggestOutput{
			Skill:   skill,
			Courses: jobs.NewCourseClient().SuggestCourses(ctx, skill, input.Limit),
		}
		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
