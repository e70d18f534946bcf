package rng

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(3)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.False(found[3])
}

func TestSeeded(t *testing.T) {
	a := assert.New(t)

	g1 := Seeded(42)
	g2 := Seeded(42)
	for i := 0; i < 100; i++ {
		a.Equal(g1.Intn(81), g2.Intn(81))
	}
}

func TestFromSeed(t *testing.T) {
	a := assert.New(t)

	a.IsType(Crypto{}, FromSeed(0))
	a.Equal(Perm(Seeded(7), 81), Perm(FromSeed(7), 81))
}

type zeroGenerator struct{}

func (zeroGenerator) Intn(int) int { return 0 }

func TestPerm(t *testing.T) {
	a := assert.New(t)

	a.Equal([]int{}, Perm(zeroGenerator{}, 0))
	a.Equal([]int{}, Perm(zeroGenerator{}, -3))
	a.Equal([]int{0}, Perm(zeroGenerator{}, 1))

	// always swapping with the head rotates the tail forward
	a.Equal([]int{1, 2, 3, 0}, Perm(zeroGenerator{}, 4))

	p := Perm(Crypto{}, 81)
	sorted := append([]int(nil), p...)
	sort.Ints(sorted)
	for i, v := range sorted {
		a.Equal(i, v)
	}
}
