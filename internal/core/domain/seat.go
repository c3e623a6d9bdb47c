package domain

import "fmt"

const (
	DefaultSeatRows = 5
	DefaultSeatCols = 10
)

// Seat is a 0-based (row, column) position in a movie's seating grid.
type Seat struct {
	Row int
	Col int
}

func (s Seat) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row+1, s.Col+1)
}

// SeatGrid holds one availability flag per seat, true meaning available.
type SeatGrid [][]bool

func NewSeatGrid(rows, cols int) SeatGrid {
	grid := make(SeatGrid, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
		for c := range grid[r] {
			grid[r][c] = true
		}
	}

	return grid
}

func (g SeatGrid) Rows() int {
	return len(g)
}

func (g SeatGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

func (g SeatGrid) Contains(s Seat) bool {
	return s.Row >= 0 && s.Row < g.Rows() && s.Col >= 0 && s.Col < len(g[s.Row])
}

// IsAvailable reports false for seats outside the grid.
func (g SeatGrid) IsAvailable(s Seat) bool {
	return g.Contains(s) && g[s.Row][s.Col]
}

func (g SeatGrid) set(s Seat, available bool) {
	g[s.Row][s.Col] = available
}

// Available counts the seats currently free in the grid.
func (g SeatGrid) Available() int {
	n := 0
	for _, row := range g {
		for _, free := range row {
			if free {
				n++
			}
		}
	}

	return n
}

func (g SeatGrid) Clone() SeatGrid {
	if g == nil {
		return nil
	}

	out := make(SeatGrid, len(g))
	for r, row := range g {
		out[r] = append([]bool(nil), row...)
	}

	return out
}
