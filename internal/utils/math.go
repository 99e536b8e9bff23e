package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SeededFloat returns a reproducible [0.0, 1.0) source, for local runs and tests.
// The returned function is not safe for concurrent use.
func SeededFloat(seed int64) func() float64 {
	return rand.New(rand.NewSource(seed)).Float64 //nolint:gosec // Game logic randomness, not security critical
}
