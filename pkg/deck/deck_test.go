package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"setgame/internal/rng"
)

// zeroGenerator always swaps with the head, so New(n) yields [1, 2, ..., n-1, 0]
type zeroGenerator struct{}

func (zeroGenerator) Intn(int) int { return 0 }

func codesOf(cards []*Card) []int {
	codes := make([]int, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}

	return codes
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := NewStandard(zeroGenerator{})
	a.Equal(81, d.CardsLeft())
	a.False(d.IsEmpty())
	a.Equal(1, d.Codes()[0])
	a.Equal(0, d.Codes()[80])

	a.Equal(0, New(0, zeroGenerator{}).CardsLeft())
	a.True(New(-1, zeroGenerator{}).IsEmpty())
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)

	d := NewStandard(zeroGenerator{})
	a.True(d.CanDeal(81))
	a.False(d.CanDeal(82))

	cards := d.Deal(12)
	a.Equal([]int{70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80, 0}, codesOf(cards))
	a.Equal(69, d.CardsLeft())
	a.Equal("three purple striped ovals", cards[10].String())

	a.Equal([]*Card{}, d.Deal(0))
	a.Equal([]*Card{}, d.Deal(-3))
	a.Equal(69, d.CardsLeft())
}

func TestDeck_Deal_short(t *testing.T) {
	a := assert.New(t)

	d := New(5, zeroGenerator{})
	a.Equal([]int{3, 4, 0}, codesOf(d.Deal(3)))
	a.Equal([]int{1, 2}, codesOf(d.Deal(3)))
	a.True(d.IsEmpty())
	a.Equal([]*Card{}, d.Deal(3))
	a.Equal(0, d.CardsLeft())
}

func TestDeck_Deal_wrapsLargeDecks(t *testing.T) {
	a := assert.New(t)

	d := New(NumberOfUniqueCards*2, zeroGenerator{})
	cards := d.Deal(2)
	a.Equal(80, cards[0].Code())
	a.Equal(0, cards[1].Code())
	a.Equal(160, d.CardsLeft())
}

func TestDeck_dealtAndRemaining(t *testing.T) {
	a := assert.New(t)

	for _, size := range []int{0, 1, 7, 81, 100} {
		d := New(size, rng.Seeded(int64(size)+1))
		dealt := make([]int, 0, size)
		for !d.IsEmpty() {
			before := d.Codes()
			cards := d.Deal(4)
			// the dealt cards come off the end of the deck
			a.Equal(before[:len(before)-len(cards)], d.Codes())
			dealt = append(dealt, before[len(before)-len(cards):]...)

			all := append(d.Codes(), dealt...)
			sort.Ints(all)
			a.Len(all, size)
			for i, code := range all {
				a.Equal(i, code)
			}
		}
	}
}

func TestDeck_HashCode(t *testing.T) {
	a := assert.New(t)

	d1 := NewStandard(rng.Seeded(1))
	d2 := NewStandard(rng.Seeded(1))
	d3 := NewStandard(rng.Seeded(2))

	a.Equal(d1.HashCode(), d2.HashCode())
	a.NotEqual(d1.HashCode(), d3.HashCode())
	a.Equal(codesOf(d1.Deal(12)), codesOf(d2.Deal(12)))

	before := d1.HashCode()
	d1.Deal(1)
	a.NotEqual(before, d1.HashCode())
}

func TestDeck_Codes(t *testing.T) {
	d := New(3, zeroGenerator{})
	codes := d.Codes()
	codes[0] = 99
	assert.Equal(t, []int{1, 2, 0}, d.Codes())
}
