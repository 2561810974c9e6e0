package fillin

import (
	"slices"

	"crosswarped.com/fillin/pkg/primitives"
)

// fits reports whether word could occupy hole given the current grid state:
// the lengths match and every already-held letter agrees with the word. It
// never mutates the grid.
func fits(g *Grid, hole Hole, word string) bool {
	if hole.Len() != len(word) {
		return false
	}
	for i, c := range hole.Cells {
		cur := g.Get(c.Row, c.Col)
		if cur != CellEmpty && cur != rune(word[i]) {
			return false
		}
	}
	return true
}

// compatibleHoles counts the holes word could legally occupy right now.
func compatibleHoles(g *Grid, holes []Hole, word string) int {
	count := 0
	for _, h := range holes {
		if fits(g, h, word) {
			count++
		}
	}
	return count
}

// rankWords re-orders the bag ascending by how many holes each word could
// still occupy. The sort is stable: ties keep the order the words arrived in,
// which ultimately traces back to the initial length-rarity ordering and keeps
// the search deterministic. A word with zero compatible holes sorts to the
// front so the search fails immediately instead of exploring deeper.
func rankWords(g *Grid, bag primitives.WordBag, holes []Hole) primitives.WordBag {
	if bag.Len() <= 1 {
		return bag
	}
	counts := make([]int, bag.Len())
	for i := range counts {
		counts[i] = compatibleHoles(g, holes, bag.At(i))
	}

	order := make([]int, bag.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return counts[a] - counts[b]
	})

	words := make([]string, bag.Len())
	for i, idx := range order {
		words[i] = bag.At(idx)
	}
	return primitives.NewWordBag(words)
}

// prefilterHoles checks every pre-filled cell against the letters the bag's
// words can place there: for a fixed letter at position i of a hole of length
// n, some word of length n must have that letter at position i. A hole that
// fails can never be filled, so the whole puzzle is unsolvable.
//
// This is a one-time admissible pruning over the original grid; the search
// itself would reach the same verdict, just later.
func prefilterHoles(g *Grid, holes []Hole, bag primitives.WordBag) bool {
	type slot struct {
		length int
		index  int
	}
	cache := make(map[slot]primitives.CharSet)

	for _, h := range holes {
		for i, c := range h.Cells {
			cur := g.Get(c.Row, c.Col)
			if cur == CellEmpty {
				continue
			}
			key := slot{length: h.Len(), index: i}
			cs, ok := cache[key]
			if !ok {
				bag.CharsAt(&cs, h.Len(), i)
				cache[key] = cs
			}
			if !cs.Contains(cur) {
				return false
			}
		}
	}
	return true
}
