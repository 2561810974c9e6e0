package fillin

import (
	"context"
	"errors"
	"slices"
	"time"

	"crosswarped.com/fillin/pkg/primitives"
)

// ErrNoSolution is returned when the search exhausts every branch without
// filling all holes. It covers word/hole count mismatches too: those simply
// have no branch that terminates successfully.
var ErrNoSolution = errors.New("fillin: no solution")

// ErrJaggedGrid is returned when the input grid's rows have unequal lengths.
// This is a malformed puzzle, not an unsolvable one, so it is kept distinct
// from ErrNoSolution.
var ErrJaggedGrid = errors.New("fillin: grid rows have unequal length")

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solve assigns every word to exactly one hole of g so that all holes are
// consistently filled, and returns the solved grid. The input grid is never
// mutated; on success the result is a solved copy, on failure only the error
// is returned.
//
// The caller guarantees a well-formed puzzle with at most one solution. When
// no assignment exists, Solve returns ErrNoSolution. A cancelled or expired
// context surfaces as the context's error.
func Solve(ctx context.Context, g *Grid, words []string) (*Grid, Stats, error) {
	start := time.Now()

	if !g.Rectangular() {
		return nil, Stats{Duration: time.Since(start)}, ErrJaggedGrid
	}

	work := g.Clone()
	holes := ExtractHoles(work)
	bag := primitives.NewWordBag(words).OrderByLengthRarity()

	s := &search{grid: work}
	if len(words) != len(holes) || !prefilterHoles(work, holes, bag) {
		return nil, Stats{Duration: time.Since(start)}, ErrNoSolution
	}

	ok := s.assign(ctx, holes, rankWords(work, bag, holes))
	st := Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}
	return work, st, nil
}

type search struct {
	grid  *Grid
	nodes int
}

// assign is one step of the depth-first search: take the most constrained
// word (the head of the ranked bag), try each hole it fits, and recurse with
// the shrunk state re-ranked against the new grid. Grid writes are undone via
// the trail before the next alternative is tried, so every branch starts from
// exactly the state its parent committed.
//
// The first success propagates straight up; sibling branches are not explored.
func (s *search) assign(ctx context.Context, holes []Hole, bag primitives.WordBag) bool {
	if ctx.Err() != nil {
		return false
	}
	if bag.Len() == 0 {
		// More holes than words can never succeed; fail rather than crash.
		return len(holes) == 0
	}
	if len(holes) == 0 {
		return false
	}

	word := bag.At(0)
	rest := bag.Remove(0)

	for hi, hole := range holes {
		trail, ok := s.grid.Assign(hole, word)
		if !ok {
			continue
		}
		s.nodes++

		remaining := slices.Delete(slices.Clone(holes), hi, hi+1)
		if s.assign(ctx, remaining, rankWords(s.grid, rest, remaining)) {
			return true
		}
		s.grid.Undo(trail)
	}
	return false
}
