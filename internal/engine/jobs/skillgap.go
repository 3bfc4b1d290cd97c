package jobs

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/rank"
	"github.com/anatolykoptev/go_match/internal/engine/skills"
)

// SkillGapResult is the structured output of skill gap analysis.
type SkillGapResult struct {
	MatchScore     float64             `json:"match_score"`
	ResumeSkills   []string            `json:"resume_skills"`
	JobSkills      []string            `json:"job_skills"`
	MatchingSkills []string            `json:"matching_skills"`
	MissingSkills  []string            `json:"missing_skills"`
	Courses        map[string][]Course `json:"courses,omitempty"`
	LearningPlan   string              `json:"learning_plan,omitempty"`
	Summary        string              `json:"summary"`
}

const learningPlanPrompt = `You are a career advisor. A candidate is missing these skills for a target role: %s.
They already have: %s.

Write a short prioritized learning plan (3-5 sentences): which missing skill to
learn first and why, realistic timeframes, and how to demonstrate each skill.
Plain prose, no lists, no markdown.`

// AnalyzeSkillGap compares a resume against one job description using
// the canonical skill vocabulary. Scores and skill lists are computed
// deterministically; the LLM only contributes an optional learning
// plan, and its absence never fails the analysis.
func AnalyzeSkillGap(ctx context.Context, lim *rate.Limiter, input engine.SkillGapInput) (*SkillGapResult, error) {
	if strings.TrimSpace(input.Resume) == "" {
		return nil, fmt.Errorf("skill_gap: resume text is required")
	}
	if strings.TrimSpace(input.JobDescription) == "" {
		return nil, fmt.Errorf("skill_gap: job_description text is required")
	}

	resumeSkills := skills.Extract(input.Resume)
	jobSkills := skills.Extract(input.JobDescription)

	result := &SkillGapResult{
		MatchScore:     rank.KeywordScore(resumeSkills, jobSkills),
		ResumeSkills:   resumeSkills,
		JobSkills:      jobSkills,
		MatchingSkills: intersectSkills(resumeSkills, jobSkills),
		MissingSkills:  rank.MissingSkills(resumeSkills, jobSkills),
	}

	if input.Courses && len(result.MissingSkills) > 0 {
		client := NewCourseClient()
		result.Courses = make(map[string][]Course, len(result.MissingSkills))
		for _, skill := range result.MissingSkills {
			result.Courses[skill] = client.SuggestCourses(ctx, skill, 3)
		}
	}

	if len(result.MissingSkills) > 0 {
		have := strings.Join(result.MatchingSkills, ", ")
		if have == "" {
			have = "(none of the role's listed skills)"
		}
		prompt := fmt.Sprintf(learningPlanPrompt,
			strings.Join(result.MissingSkills, ", "), have)
		if plan, err := engine.CallLLM(ctx, lim, prompt); err == nil {
			result.LearningPlan = strings.TrimSpace(plan)
		}
	}

	result.Summary = gapSummary(result)
	return result, nil
}

// gapSummary builds the deterministic one-line summary.
func gapSummary(r *SkillGapResult) string {
	if len(r.MissingSkills) == 0 {
		return fmt.Sprintf("Keyword match %.2f: the resume covers every skill detected in the job description.",
			r.MatchScore)
	}
	return fmt.Sprintf("Keyword match %.2f: %d matching skill(s), %d missing (%s).",
		r.MatchScore, len(r.MatchingSkills), len(r.MissingSkills),
		strings.Join(r.MissingSkills, ", "))
}
