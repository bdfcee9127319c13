package passgen

import "math/rand/v2"

// Source supplies the random indexes used to pick characters.
// IntN must return a value in [0, n) and may panic if n <= 0.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide, automatically seeded generator.
// It is not suitable for cryptographic use.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic source, mainly for tests and reproducible runs.
func NewSeededSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}
