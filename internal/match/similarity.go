package match

import (
	"errors"
	"math"
)

// ErrVectorLength distinguishes malformed similarity input from a genuine
// zero-similarity result; callers must not conflate the two.
var ErrVectorLength = errors.New("match: vectors have different lengths")

// Cosine computes cosine similarity between two equal-length vectors.
// Intended for embedding-based extensions of the scoring engine. A zero
// vector yields similarity 0, not an error.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrVectorLength
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
