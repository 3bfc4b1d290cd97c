package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_match/internal/engine"
)

const explainPrompt = `You are a career advisor explaining why a job matched a candidate.

JOB: %s at %s
MATCH SCORE: %.2f (semantic %.2f, keyword %.2f)
SKILLS THE CANDIDATE HAS FOR THIS ROLE: %s
SKILLS THE ROLE NEEDS THAT THE CANDIDATE LACKS: %s

Write 2-3 sentences for the candidate: why this role fits their background,
and which single missing skill would most improve their chances. Plain prose,
no lists, no markdown.`

// ExplainMatch generates a short natural-language explanation for one
// ranked match. The prompt carries only the precomputed skill lists and
// scores, never raw resume or description text. On LLM failure a
// deterministic fallback string is returned so ranking output is never
// blocked on the model.
func ExplainMatch(ctx context.Context, lim *rate.Limiter, m engine.JobMatch) string {
	matching := strings.Join(m.MatchingSkills, ", ")
	if matching == "" {
		matching = "(none detected)"
	}
	missing := strings.Join(m.MissingSkills, ", ")
	if missing == "" {
		missing = "(none)"
	}

	prompt := fmt.Sprintf(explainPrompt,
		m.Title, m.Company, m.FinalScore, m.Semantic, m.Keyword,
		matching, missing)

	text, err := engine.CallLLM(ctx, lim, prompt)
	if err != nil {
		slog.Debug("match explanation unavailable",
			slog.String("job", m.JobKey), slog.Any("error", err))
		return fallbackExplanation(m)
	}
	return strings.TrimSpace(text)
}

// fallbackExplanation builds a formulaic explanation from the score
// breakdown when no LLM is available.
func fallbackExplanation(m engine.JobMatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scored %.2f against your resume", m.FinalScore)
	if len(m.MatchingSkills) > 0 {
		fmt.Fprintf(&b, "; you already cover %s", strings.Join(m.MatchingSkills, ", "))
	}
	if len(m.MissingSkills) > 0 {
		fmt.Fprintf(&b, "; the biggest gap is %s", m.MissingSkills[0])
	}
	b.WriteString(".")
	return b.String()
}
