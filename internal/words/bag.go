// internal/words/bag.go
//
// Letter multiset used to bound word construction by the grid's supply.

package words

// Bag counts how many times each letter occurs.
type Bag map[rune]int

// NewBag builds a Bag from a list of letters.
func NewBag(letters []rune) Bag {
	b := make(Bag, len(letters))
	for _, r := range letters {
		b[r]++
	}
	return b
}

// BagOf builds a Bag from the letters of a word.
func BagOf(word string) Bag {
	return NewBag([]rune(word))
}

// Covers reports whether every letter of word occurs in word no more
// times than it occurs in b.
func (b Bag) Covers(word string) bool {
	for r, n := range BagOf(word) {
		if n > b[r] {
			return false
		}
	}
	return true
}

// Count returns the number of occurrences of r.
func (b Bag) Count(r rune) int { return b[r] }
