package deck

// Board represents the face-up cards in play
type Board []*Card

// Len returns the number of cards on the board
func (b Board) Len() int {
	return len(b)
}

// AddCards adds cards to the end of the board
func (b *Board) AddCards(cards ...*Card) {
	*b = append(*b, cards...)
}

// HasCard returns true if this exact card is on the board
func (b Board) HasCard(card *Card) bool {
	return containsCard(b, card)
}

// RemoveSet removes the first set found on the board
// See RemoveSet
func (b *Board) RemoveSet() []*Card {
	cards := []*Card(*b)
	set := RemoveSet(&cards)
	if set != nil {
		*b = cards
	}

	return set
}

// Sets returns every set currently on the board
func (b Board) Sets() [][]*Card {
	return FindAllSets(b...)
}

// Clone returns a copy of the board
func (b Board) Clone() Board {
	cp := make(Board, len(b))
	copy(cp, b)
	return cp
}
