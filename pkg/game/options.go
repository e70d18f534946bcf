package game

import (
	"setgame/internal/rng"
	"setgame/pkg/deck"
)

// default sizes
const (
	DeckSize  = deck.NumberOfUniqueCards
	BoardSize = 12
	DealSize  = 3
)

// Options contains options for creating a new game of Set
type Options struct {
	DeckSize  int   `json:"deckSize"`
	BoardSize int   `json:"boardSize"`
	DealSize  int   `json:"dealSize"`
	Seed      int64 `json:"seed"`

	// Generator shuffles the deck. If nil, one is derived from Seed
	Generator rng.Generator `json:"-"`
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		DeckSize:  DeckSize,
		BoardSize: BoardSize,
		DealSize:  DealSize,
	}
}

func (o Options) validate() error {
	if o.DeckSize < 0 {
		return ErrInvalidDeckSize
	}

	if o.BoardSize < 0 {
		return ErrInvalidBoardSize
	}

	if o.DealSize <= 0 {
		return ErrInvalidDealSize
	}

	return nil
}

func (o Options) generator() rng.Generator {
	if o.Generator != nil {
		return o.Generator
	}

	return rng.FromSeed(o.Seed)
}
