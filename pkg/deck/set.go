package deck

// IsSet returns true if the three cards form a set
// For every attribute the cards must be all the same or all different.
func IsSet(a, b, c *Card) bool {
	for i := 0; i < numAttributes; i++ {
		if distinct(a.values[i], b.values[i], c.values[i]) == 2 {
			return false
		}
	}

	return true
}

func distinct(x, y, z int) int {
	switch {
	case x == y && y == z:
		return 1
	case x != y && y != z && x != z:
		return 3
	default:
		return 2
	}
}

// FindSet returns the first set found in cards, or nil
// Triples are checked in ascending index order (i < j < k) so the result is reproducible.
func FindSet(cards ...*Card) []*Card {
	var found []*Card
	eachSet(cards, func(set []*Card) bool {
		found = set
		return false
	})

	return found
}

// FindAllSets returns every set in cards, in the same order FindSet searches
func FindAllSets(cards ...*Card) [][]*Card {
	sets := make([][]*Card, 0)
	eachSet(cards, func(set []*Card) bool {
		sets = append(sets, set)
		return true
	})

	return sets
}

// eachSet calls fn for every set until fn returns false
func eachSet(cards []*Card, fn func(set []*Card) bool) {
	n := len(cards)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				if IsSet(cards[i], cards[j], cards[k]) {
					if !fn([]*Card{cards[i], cards[j], cards[k]}) {
						return
					}
				}
			}
		}
	}
}

// RemoveSet finds a set in cards and removes it in place
// The remaining cards keep their order. If no set is found, cards is not modified and nil is returned.
func RemoveSet(cards *[]*Card) []*Card {
	if cards == nil {
		return nil
	}

	set := FindSet(*cards...)
	if set == nil {
		return nil
	}

	remaining := make([]*Card, 0, len(*cards)-len(set))
	for _, c := range *cards {
		if !containsCard(set, c) {
			remaining = append(remaining, c)
		}
	}

	*cards = remaining
	return set
}

// containsCard compares by identity, not by value
func containsCard(cards []*Card, card *Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}

	return false
}
