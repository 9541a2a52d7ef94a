package contest

import (
	"math/rand/v2"
	"time"
)

// RandomSource supplies uniform draws in [0, 1).
type RandomSource interface {
	Float64() float64 // [0, 1)
}

// pcgRNG backs both the process default and replicable sources.
type pcgRNG struct{ r *rand.Rand }

func (s *pcgRNG) Float64() float64 { return s.r.Float64() }

// DefaultRNG returns a source seeded once from the current time.
// Callers keep the returned source for the whole process and share it.
func DefaultRNG() RandomSource {
	seed := uint64(time.Now().UnixNano())
	return &pcgRNG{r: rand.New(rand.NewPCG(seed, seed>>32))}
}

// NewSeededRNG returns a replicable source (e.g. unit tests).
func NewSeededRNG(seed uint64) RandomSource {
	return &pcgRNG{r: rand.New(rand.NewPCG(seed, 0))}
}
