package colormath

import (
	"math/rand/v2"
	"sync"
)

// IntSource yields uniform integers in [0, n).
type IntSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// lockedSource serializes access to a seeded generator.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource returns a deterministic IntSource for seed. It is safe for concurrent use.
func NewRandSource(seed uint64) IntSource {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Random returns an opaque color with R, G and B drawn independently from [0, 255].
// A nil src uses the process-wide generator.
func Random(src IntSource) Color {
	if src == nil {
		src = globalSource{}
	}
	return RGB(uint8(src.IntN(256)), uint8(src.IntN(256)), uint8(src.IntN(256)))
}
