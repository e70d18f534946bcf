package game

import "errors"

// ErrInvalidDeckSize is an error when the deck size is negative
var ErrInvalidDeckSize = errors.New("deck size must be >= 0")

// ErrInvalidBoardSize is an error when the initial board size is negative
var ErrInvalidBoardSize = errors.New("board size must be >= 0")

// ErrInvalidDealSize is an error when the deal size would never grow the board
var ErrInvalidDealSize = errors.New("deal size must be > 0")
