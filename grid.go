package fillin

import (
	"fmt"
	"strings"
)

const (
	// CellBlocked marks a cell that is never part of any hole.
	CellBlocked = '#'
	// CellEmpty marks an open cell that has not been assigned a letter yet.
	CellEmpty = '.'
)

// Coord identifies one cell of a Grid.
type Coord struct {
	Row int
	Col int
}

// Grid is a 2D grid of runes: '#' for blocked cells, '.' for open unassigned
// cells, and 'a'-'z' for cells that hold a letter.
//
// The grid is the single source of truth during a solve. Holes never copy cell
// values; they hold coordinates into the grid, so a letter written through one
// hole is immediately visible to every intersecting hole.
type Grid struct {
	grid [][]rune
}

// NewGrid wraps the given cell matrix. The matrix is not copied; use Clone
// when the caller's data must stay untouched.
func NewGrid(g [][]rune) *Grid {
	return &Grid{grid: g}
}

func (g *Grid) Width() int {
	if len(g.grid) == 0 {
		return 0
	}
	return len(g.grid[0])
}

func (g *Grid) Height() int {
	return len(g.grid)
}

func (g *Grid) Get(row, col int) rune {
	return g.grid[row][col]
}

// Rectangular reports whether every row has the same length. A zero-row grid
// is trivially rectangular.
func (g *Grid) Rectangular() bool {
	for _, row := range g.grid {
		if len(row) != g.Width() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy sharing no cells with the receiver.
func (g *Grid) Clone() *Grid {
	rows := make([][]rune, len(g.grid))
	for i, row := range g.grid {
		rows[i] = make([]rune, len(row))
		copy(rows[i], row)
	}
	return &Grid{grid: rows}
}

// Assign attempts to write word into hole. It first verifies every position:
// each cell must be empty or already hold the matching letter. Only if the
// whole hole is compatible does it write, so a failed Assign leaves the grid
// untouched. The returned trail lists exactly the coordinates that were newly
// written; pass it unchanged to Undo when backtracking.
func (g *Grid) Assign(hole Hole, word string) ([]Coord, bool) {
	letters := []rune(word)
	if len(letters) != hole.Len() {
		return nil, false
	}
	for i, c := range hole.Cells {
		cur := g.grid[c.Row][c.Col]
		if cur != CellEmpty && cur != letters[i] {
			return nil, false
		}
	}

	var trail []Coord
	for i, c := range hole.Cells {
		if g.grid[c.Row][c.Col] != CellEmpty {
			// Shared with an already-filled crossing hole; leave it alone.
			continue
		}
		g.grid[c.Row][c.Col] = letters[i]
		trail = append(trail, c)
	}
	return trail, true
}

// Undo resets exactly the given coordinates to empty. It is the symmetric
// rollback for a successful Assign: cells the Assign skipped (pre-filled or
// shared with an earlier assignment) are not on the trail and stay as they are.
func (g *Grid) Undo(trail []Coord) {
	for _, c := range trail {
		g.grid[c.Row][c.Col] = CellEmpty
	}
}

// Read returns the word currently spelled by a hole.
func (g *Grid) Read(hole Hole) string {
	letters := make([]rune, hole.Len())
	for i, c := range hole.Cells {
		letters[i] = g.grid[c.Row][c.Col]
	}
	return string(letters)
}

func (g *Grid) Repr() string {
	lines := make([]string, g.Height())
	for y := 0; y < g.Height(); y++ {
		lines[y] = string(g.grid[y])
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, grid: %v}", g.Width(), g.Height(), g.grid)
}
