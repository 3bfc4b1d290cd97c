package rank

import (
	"errors"
	"time"
)

// DefaultWeights blends the four signals: semantic, keyword, recency,
// popularity. Operator-tuned; the scorer renormalizes whatever it is given,
// so these stay meaningful even if edited to sum != 1.
var DefaultWeights = []float64{0.55, 0.25, 0.10, 0.10}

// Configuration errors for caller-supplied weight vectors.
var (
	ErrWeightCount = errors.New("weights must contain exactly 4 values")
	ErrWeightSum   = errors.New("weights must have a positive sum")
)

// Subscores holds the four bounded signals feeding the final score. Each is
// clamped into [0,1] before blending; out-of-range values are clipped, not
// rejected.
type Subscores struct {
	Semantic   float64 `json:"semantic"`
	Keyword    float64 `json:"keyword"`
	Recency    float64 `json:"recency"`
	Popularity float64 `json:"popularity"`
}

// Clamp01 clips v into [0.0, 1.0].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FinalScore blends the four sub-scores into one relevance score in [0,1].
// A nil weights slice uses DefaultWeights. Weights are normalized to sum to
// 1.0; a wrong length or non-positive sum is a configuration error.
func FinalScore(s Subscores, weights []float64) (float64, error) {
	if weights == nil {
		weights = DefaultWeights
	}
	if len(weights) != 4 {
		return 0, ErrWeightCount
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return 0, ErrWeightSum
	}

	return weights[0]/sum*Clamp01(s.Semantic) +
		weights[1]/sum*Clamp01(s.Keyword) +
		weights[2]/sum*Clamp01(s.Recency) +
		weights[3]/sum*Clamp01(s.Popularity), nil
}

// KeywordScore is the fraction of the resume's skills that the job also
// wants: |resume ∩ job| / max(1, |resume|). Asymmetric on purpose — it
// answers "how much of what I have does this job use", not Jaccard. The
// max(1, …) guard makes an empty resume score 0 instead of dividing by zero.
func KeywordScore(resumeSkills, jobSkills []string) float64 {
	if len(resumeSkills) == 0 {
		return 0
	}
	job := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		job[s] = true
	}
	inter := 0
	seen := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		if seen[s] {
			continue
		}
		seen[s] = true
		if job[s] {
			inter++
		}
	}
	return float64(inter) / float64(max(1, len(seen)))
}

// Recency breakpoints are a documented contract: downstream weights were
// tuned against these exact bands. Do not smooth into a continuous decay.
const (
	recencyFresh   = 1.0 // posted within a day
	recencyWeek    = 0.8 // within a week
	recencyMonth   = 0.6 // within a month
	recencyStale   = 0.3 // older
	recencyNeutral = 0.5 // unknown posting date
)

// RecencyScore bands a posting's age in whole days relative to now.
// Future-dated postings count as fresh.
func RecencyScore(posted, now time.Time) float64 {
	days := int(now.Sub(posted).Hours() / 24)
	switch {
	case days <= 1:
		return recencyFresh
	case days <= 7:
		return recencyWeek
	case days <= 30:
		return recencyMonth
	default:
		return recencyStale
	}
}

// RecencyScoreOpt handles the common missing-date case: nil → neutral 0.5.
func RecencyScoreOpt(posted *time.Time, now time.Time) float64 {
	if posted == nil || posted.IsZero() {
		return recencyNeutral
	}
	return RecencyScore(*posted, now)
}

// NeutralPopularity is the placeholder popularity signal: no live source is
// wired in yet, so every job scores a neutral 0.5. Rankers keep this behind
// an overridable function field so a real signal can slot in later.
const NeutralPopularity = 0.5
