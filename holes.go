package fillin

// Direction is an enum representing the direction of a hole in a grid, either
// 'Horizontal' or 'Vertical'.
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

func (d Direction) String() string {
	if d == DirectionVertical {
		return "vertical"
	}
	return "horizontal"
}

// Hole is a maximal run of at least two non-blocked cells in one row or one
// column, to be filled by exactly one word. It holds coordinates into the
// grid, not cell values, so two crossing holes alias their shared cell.
type Hole struct {
	Dir   Direction
	Cells []Coord
}

func (h Hole) Len() int {
	return len(h.Cells)
}

// Start returns the coordinate of the first cell.
func (h Hole) Start() Coord {
	return h.Cells[0]
}

// ExtractHoles scans every row left to right, then every column top to bottom,
// accumulating runs of non-blocked cells. Runs end at a blocked cell or the
// grid edge; runs shorter than two cells carry no constraint and are dropped.
//
// Extraction depends only on which cells are blocked, so it returns the same
// holes for a grid regardless of what letters have been assigned.
func ExtractHoles(g *Grid) []Hole {
	var holes []Hole

	for row := 0; row < g.Height(); row++ {
		run := make([]Coord, 0, g.Width())
		for col := 0; col < g.Width(); col++ {
			if g.Get(row, col) == CellBlocked {
				holes = appendRun(holes, DirectionHorizontal, run)
				run = run[:0]
				continue
			}
			run = append(run, Coord{Row: row, Col: col})
		}
		holes = appendRun(holes, DirectionHorizontal, run)
	}

	for col := 0; col < g.Width(); col++ {
		run := make([]Coord, 0, g.Height())
		for row := 0; row < g.Height(); row++ {
			if g.Get(row, col) == CellBlocked {
				holes = appendRun(holes, DirectionVertical, run)
				run = run[:0]
				continue
			}
			run = append(run, Coord{Row: row, Col: col})
		}
		holes = appendRun(holes, DirectionVertical, run)
	}

	return holes
}

func appendRun(holes []Hole, dir Direction, run []Coord) []Hole {
	if len(run) < 2 {
		return holes
	}
	cells := make([]Coord, len(run))
	copy(cells, run)
	return append(holes, Hole{Dir: dir, Cells: cells})
}
