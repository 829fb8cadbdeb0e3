package teenpatti

// strength is the total ordering key for a hand: category first, then tie key
type strength struct {
	category Category
	key      TieKey
}

func strengthOf(hand Hand) strength {
	category := Classify(hand)
	return strength{
		category: category,
		key:      TieBreakKey(hand, category),
	}
}

// compare returns 1 if s is stronger than other, -1 if weaker, and 0 if equal
func (s strength) compare(other strength) int {
	if s.category != other.category {
		if s.category < other.category {
			return 1
		}

		return -1
	}

	for i := range s.key {
		if s.key[i] != other.key[i] {
			if s.key[i] > other.key[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

// Compare compares two hands
// It returns 1 if a beats b, -1 if b beats a, and 0 when the hands tie.
// Suits never break ties, so hands differing only by suit compare equal.
func Compare(a, b Hand) int {
	return strengthOf(a).compare(strengthOf(b))
}
