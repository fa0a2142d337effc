// Package grid holds the live/dead cell matrix of a Life board.
package grid

import (
	"github.com/pkg/errors"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension
var ErrInvalidSize = errors.New("grid: invalid size")

// Grid is a width x height matrix of cells indexed [x][y]
// Zero is dead, any other value is alive. Values above 1 are left over from the
// rule step (neighbour count) and carry no meaning beyond "alive"
type Grid struct {
	width  int
	height int
	mode   FidelityMode
	cells  [][]uint8
}

// New allocates an all-dead grid
func New(width, height int, mode FidelityMode) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", width, height)
	}
	cells := make([][]uint8, width)
	for x := range cells {
		cells[x] = make([]uint8, height)
	}
	return &Grid{width: width, height: height, mode: mode, cells: cells}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of logical rows
func (g *Grid) Height() int { return g.height }

// Mode returns the fidelity mode the grid was sized for
func (g *Grid) Mode() FidelityMode { return g.mode }

// At returns the raw stored value at (x, y)
func (g *Grid) At(x, y int) uint8 { return g.cells[x][y] }

// Set stores v at (x, y)
func (g *Grid) Set(x, y int, v uint8) { g.cells[x][y] = v }

// Alive reports whether (x, y) holds a live cell
func (g *Grid) Alive(x, y int) bool { return g.cells[x][y] != 0 }

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Population counts live cells
func (g *Grid) Population() int {
	n := 0
	for x := range g.cells {
		for _, v := range g.cells[x] {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// SameSize reports whether o has identical dimensions and mode
func (g *Grid) SameSize(o *Grid) bool {
	return o != nil && g.width == o.width && g.height == o.height && g.mode == o.mode
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, mode: g.mode, cells: make([][]uint8, g.width)}
	for x := range g.cells {
		c.cells[x] = append([]uint8(nil), g.cells[x]...)
	}
	return c
}

// Equal compares dimensions and raw cell values
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameSize(o) {
		return false
	}
	for x := range g.cells {
		for y, v := range g.cells[x] {
			if o.cells[x][y] != v {
				return false
			}
		}
	}
	return true
}

// Clear kills every cell
func (g *Grid) Clear() {
	for x := range g.cells {
		clear(g.cells[x])
	}
}
