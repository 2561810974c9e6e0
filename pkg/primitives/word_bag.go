package primitives

import (
	"fmt"
	"slices"
	"strings"
)

// WordBag is an ordered multiset of words. The solver consumes one word per
// hole, so duplicates are kept as distinct entries; a word is removed exactly
// once per assignment.
//
// Operations that change the bag return a new WordBag and leave the receiver
// untouched, so a search branch can hand a shrunk bag to its recursive call
// and keep its own view intact for the next alternative.
type WordBag struct {
	words []string
}

// NewWordBag copies the given words into a bag, preserving their order.
func NewWordBag(words []string) WordBag {
	return WordBag{words: slices.Clone(words)}
}

func (b WordBag) Len() int {
	return len(b.words)
}

// At returns the word at position i in the bag's current order.
func (b WordBag) At(i int) string {
	return b.words[i]
}

// Words returns a copy of the bag's contents in order.
func (b WordBag) Words() []string {
	return slices.Clone(b.words)
}

// Remove returns a new bag without the word at position i. The relative order
// of the remaining words is unchanged.
func (b WordBag) Remove(i int) WordBag {
	words := make([]string, 0, len(b.words)-1)
	words = append(words, b.words[:i]...)
	words = append(words, b.words[i+1:]...)
	return WordBag{words: words}
}

// LengthCounts returns how many words the bag holds of each length.
func (b WordBag) LengthCounts() map[int]int {
	counts := make(map[int]int)
	for _, w := range b.words {
		counts[len(w)]++
	}
	return counts
}

// OrderByLengthRarity returns a new bag sorted so that words whose length is
// rarer in the bag come first. Words of equally-rare lengths keep their
// relative order. A word with few same-length alternatives is the most
// constrained choice and should be pinned down early.
func (b WordBag) OrderByLengthRarity() WordBag {
	counts := b.LengthCounts()
	words := slices.Clone(b.words)
	slices.SortStableFunc(words, func(a, c string) int {
		return counts[len(a)] - counts[len(c)]
	})
	return WordBag{words: words}
}

// CharsAt adds, for every word of the given length, the letter that word has
// at the given index. The result is the set of letters any single assignment
// of a length-sized hole could place at that position.
func (b WordBag) CharsAt(accumulate *CharSet, length, index int) {
	for _, w := range b.words {
		if len(w) != length {
			continue
		}
		if accumulate.IsFull() {
			return
		}
		_ = accumulate.Add(rune(w[index]))
	}
}

func (b WordBag) String() string {
	const maxPrint = 3
	if len(b.words) <= maxPrint {
		return fmt.Sprintf("WordBag[%s]", strings.Join(b.words, ", "))
	}
	return fmt.Sprintf("WordBag[%s, ...%d]", strings.Join(b.words[:maxPrint], ", "), len(b.words)-maxPrint)
}
