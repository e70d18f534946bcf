package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"strconv"

	"setgame/internal/rng"
)

// Deck represents the undealt supply of card codes
type Deck struct {
	codes []int
}

// New returns a deck of the codes [0, size) in a random order chosen by gen
func New(size int, gen rng.Generator) *Deck {
	return &Deck{
		codes: rng.Perm(gen, size),
	}
}

// NewStandard returns a shuffled deck containing every unique card once
func NewStandard(gen rng.Generator) *Deck {
	return New(NumberOfUniqueCards, gen)
}

// Deal removes up to n cards from the end of the deck
// If fewer than n cards remain, all of them are returned. The dealt cards keep their deck order.
func (d *Deck) Deal(n int) []*Card {
	if n <= 0 {
		return []*Card{}
	}

	if n > len(d.codes) {
		n = len(d.codes)
	}

	start := len(d.codes) - n
	cards := make([]*Card, n)
	for i, code := range d.codes[start:] {
		cards[i] = CardFromCode(code)
	}

	d.codes = d.codes[:start]
	return cards
}

// IsEmpty returns true if there are no cards left to deal
func (d *Deck) IsEmpty() bool {
	return len(d.codes) == 0
}

// CanDeal returns true if there are {want} cards left in the deck
func (d *Deck) CanDeal(want int) bool {
	return len(d.codes) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.codes)
}

// Codes returns a copy of the undealt card codes
func (d *Deck) Codes() []int {
	codes := make([]int, len(d.codes))
	copy(codes, d.codes)
	return codes
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, code := range d.codes {
		_, _ = hash.Write([]byte(strconv.Itoa(code)))
		_, _ = hash.Write([]byte{','})
	}

	return hex.EncodeToString(hash.Sum(nil))
}
