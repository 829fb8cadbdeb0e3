package rng

import "math/rand"

// Seeded is a deterministic generator for tests and reproducible deals
type Seeded struct {
	rand *rand.Rand
}

// NewSeeded returns a generator seeded with the provided value
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random number from 0 up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}
