// Package rank implements the hybrid job-relevance ranking core: cosine
// similarity over embedding vectors, the four-signal weighted scorer, and
// skill-gap derivation and aggregation. Everything here is pure and
// synchronous; callers own parallelism, storage and ordering of jobs.
package rank

import (
	"errors"
	"math"
)

// ErrDimensionMismatch is returned when similarity inputs differ in length.
// Mismatched dimensionality is a caller error; failing loudly beats silent
// truncation.
var ErrDimensionMismatch = errors.New("vectors must have the same dimensionality")

// CosineSimilarity computes dot(a,b) / (|a|*|b|) for two vectors.
//
// A zero vector — an empty text or a failed embedding upstream — yields 0.0
// rather than NaN or an error: degraded signal, not a crash. Two empty
// vectors likewise score 0.0.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0, nil
	}
	return dot / denom, nil
}
