package fillin

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var crossPuzzle = []string{
	"#h#",
	"...",
	"#.#",
}

func TestSolveCross(t *testing.T) {
	g := mustParseGrid(t, crossPuzzle)

	solved, stats, err := Solve(context.Background(), g, []string{"hat", "bag"})
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, stats.Nodes, stats.Duration)
	}

	want := "#h#\nbag\n#t#"
	if got := solved.Repr(); got != want {
		t.Errorf("solved grid:\n%s\nwant:\n%s", got, want)
	}
	if got := g.Repr(); got != "#h#\n...\n#.#" {
		t.Errorf("Solve mutated the input grid:\n%s", got)
	}
}

func TestSolveNoSolution(t *testing.T) {
	for _, tc := range []struct {
		name  string
		lines []string
		words []string
	}{
		// Neither word matches the fixed 'h'; rejected before any search.
		{name: "fixed letter unmatched", lines: crossPuzzle, words: []string{"cat", "dog"}},
		// Both words pass the prefilter but the intersection cannot agree;
		// this one exercises the backtracking itself.
		{name: "intersection conflict", lines: crossPuzzle, words: []string{"hat", "bog"}},
		{name: "more words than holes", lines: crossPuzzle, words: []string{"hat", "bag", "cab"}},
		{name: "more holes than words", lines: crossPuzzle, words: []string{"hat"}},
		{name: "wrong lengths", lines: crossPuzzle, words: []string{"hats", "bags"}},
		{name: "empty grid, words remain", lines: []string{"##"}, words: []string{"at"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParseGrid(t, tc.lines)
			solved, _, err := Solve(context.Background(), g, tc.words)
			if !errors.Is(err, ErrNoSolution) {
				t.Fatalf("Solve returned %v, want ErrNoSolution", err)
			}
			if solved != nil {
				t.Errorf("failed Solve returned a grid:\n%s", solved.Repr())
			}
		})
	}
}

func TestSolveDegenerateTrivial(t *testing.T) {
	for _, tc := range []struct {
		name  string
		lines []string
	}{
		{name: "all blocked", lines: []string{"##", "##"}},
		{name: "zero rows", lines: nil},
		{name: "lone open cells", lines: []string{".#.", "###"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParseGrid(t, tc.lines)
			solved, _, err := Solve(context.Background(), g, nil)
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if diff := cmp.Diff(g.Repr(), solved.Repr()); diff != "" {
				t.Errorf("trivial solve changed the grid (-in +out):\n%s", diff)
			}
		})
	}
}

func TestSolveJaggedGrid(t *testing.T) {
	g := NewGrid([][]rune{[]rune("..."), []rune("..")})
	if _, _, err := Solve(context.Background(), g, []string{"cat"}); !errors.Is(err, ErrJaggedGrid) {
		t.Fatalf("Solve returned %v, want ErrJaggedGrid", err)
	}
}

func TestSolveUniquePinnedSquare(t *testing.T) {
	// The 'a' pins the top row to "cat"; everything else follows.
	g := mustParseGrid(t, []string{
		".a.",
		".#.",
		"...",
	})

	solved, _, err := Solve(context.Background(), g, []string{"toe", "cat", "doe", "cod"})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := "cat\no#o\ndoe"
	if got := solved.Repr(); got != want {
		t.Errorf("solved grid:\n%s\nwant:\n%s", got, want)
	}
}

func TestSolveConservesWordMultiset(t *testing.T) {
	g := mustParseGrid(t, []string{
		".a.",
		".#.",
		"...",
	})
	words := []string{"toe", "cat", "doe", "cod"}

	solved, _, err := Solve(context.Background(), g, words)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	var got []string
	for _, h := range ExtractHoles(solved) {
		got = append(got, solved.Read(h))
	}
	want := slices.Clone(words)
	slices.Sort(want)
	slices.Sort(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("solved holes spell a different word multiset (-want +got):\n%s", diff)
	}
}

func TestSolveIntersectionsConsistent(t *testing.T) {
	g := mustParseGrid(t, crossPuzzle)
	solved, _, err := Solve(context.Background(), g, []string{"hat", "bag"})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	holes := ExtractHoles(solved)
	for i, a := range holes {
		for _, b := range holes[i+1:] {
			for ai, ac := range a.Cells {
				for bi, bc := range b.Cells {
					if ac != bc {
						continue
					}
					wa := solved.Read(a)
					wb := solved.Read(b)
					if wa[ai] != wb[bi] {
						t.Errorf("holes %v and %v disagree at shared cell %v: %q vs %q",
							a, b, ac, wa[ai], wb[bi])
					}
				}
			}
		}
	}
}

func TestSolveDuplicateWords(t *testing.T) {
	// Two identical words are distinct pool entries; each fills its own hole.
	g := mustParseGrid(t, []string{
		"..#..",
	})
	solved, _, err := Solve(context.Background(), g, []string{"at", "at"})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := solved.Repr(); got != "at#at" {
		t.Errorf("solved grid = %q, want %q", got, "at#at")
	}
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := mustParseGrid(t, crossPuzzle)
	_, _, err := Solve(ctx, g, []string{"hat", "bag"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Solve returned %v, want context.Canceled", err)
	}
}

func TestSolveCountsNodes(t *testing.T) {
	g := mustParseGrid(t, crossPuzzle)
	_, stats, err := Solve(context.Background(), g, []string{"hat", "bag"})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if stats.Nodes < 2 {
		t.Errorf("stats.Nodes = %d, want at least one per assigned hole", stats.Nodes)
	}
}
