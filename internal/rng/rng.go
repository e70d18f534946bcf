package rng

import (
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded returns a deterministic generator for the seed
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// FromSeed returns a Seeded generator, or Crypto if the seed is 0
func FromSeed(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return Seeded(seed)
}

// Perm returns a permutation of [0, n) using a Fisher-Yates shuffle
func Perm(gen Generator, n int) []int {
	if n < 0 {
		n = 0
	}

	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	for j := n - 1; j > 0; j-- {
		i := gen.Intn(j + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
