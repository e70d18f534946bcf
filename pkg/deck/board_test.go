package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard(t *testing.T) {
	a := assert.New(t)
	ca, cb, cc, cx := knownCards()

	var board Board
	a.Equal(0, board.Len())
	a.Nil(board.RemoveSet())
	a.Nil(board)

	board.AddCards(cx, ca)
	board.AddCards(cb, cc)
	a.Equal(4, board.Len())
	a.True(board.HasCard(ca))
	a.False(board.HasCard(MustCard(1, 0, 0, 1)))
	a.Len(board.Sets(), 1)

	clone := board.Clone()

	a.Equal([]*Card{ca, cb, cc}, board.RemoveSet())
	a.Equal(Board{cx}, board)
	a.Equal(4, clone.Len())
	a.Len(board.Sets(), 0)

	a.Nil(board.RemoveSet())
	a.Equal(Board{cx}, board)
}
