// File: internal/services/retrieval/similarity.go
package retrieval

import "math"

// similarityEpsilon keeps the denominator non-zero for degenerate vectors.
const similarityEpsilon = 1e-10

// CosineSimilarity returns the normalized dot product of two vectors in
// [-1, 1]. Mismatched lengths and zero vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + similarityEpsilon)
}
