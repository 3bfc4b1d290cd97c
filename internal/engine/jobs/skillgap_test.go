package jobs

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_match/internal/engine"
)

func TestAnalyzeSkillGap(t *testing.T) {
	res, err := AnalyzeSkillGap(context.Background(), nil, engine.SkillGapInput{
		Resume:         "Strong python and sql background.",
		JobDescription: "Need python, sql and machine learning.",
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if !equalStrings(res.MatchingSkills, []string{"python", "sql"}) {
		t.Errorf("matching = %v", res.MatchingSkills)
	}
	if !equalStrings(res.MissingSkills, []string{"machine learning"}) {
		t.Errorf("missing = %v", res.MissingSkills)
	}
	// keyword score = |intersection| / |resume skills| = 2/2.
	if math.Abs(res.MatchScore-1.0) > 1e-9 {
		t.Errorf("match score = %v, want 1.0", res.MatchScore)
	}
	if !strings.Contains(res.Summary, "machine learning") {
		t.Errorf("summary should name the gap: %q", res.Summary)
	}
}

func TestAnalyzeSkillGapNoGaps(t *testing.T) {
	res, err := AnalyzeSkillGap(context.Background(), nil, engine.SkillGapInput{
		Resume:         "python sql docker kubernetes",
		JobDescription: "python and docker",
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(res.MissingSkills) != 0 {
		t.Errorf("missing = %v, want none", res.MissingSkills)
	}
	if res.LearningPlan != "" {
		t.Errorf("learning plan should stay empty with no gaps: %q", res.LearningPlan)
	}
}

func TestAnalyzeSkillGapRequiresInputs(t *testing.T) {
	if _, err := AnalyzeSkillGap(context.Background(), nil, engine.SkillGapInput{
		JobDescription: "python",
	}); err == nil {
		t.Error("expected error for empty resume")
	}
	if _, err := AnalyzeSkillGap(context.Background(), nil, engine.SkillGapInput{
		Resume: "python",
	}); err == nil {
		t.Error("expected error for empty job description")
	}
}

func TestAnalyzeSkillGapDegradesWithoutLLM(t *testing.T) {
	// No LLM client configured: analysis still succeeds, plan stays empty.
	res, err := AnalyzeSkillGap(context.Background(), nil, engine.SkillGapInput{
		Resume:         "python",
		JobDescription: "python and terraform",
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.LearningPlan != "" {
		t.Errorf("learning plan = %q, want empty without an LLM", res.LearningPlan)
	}
	if !equalStrings(res.MissingSkills, []string{"terraform"}) {
		t.Errorf("missing = %v", res.MissingSkills)
	}
}
