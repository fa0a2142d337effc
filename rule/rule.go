// Package rule advances a grid by one Game of Life generation (B3/S23, bounded edges)
package rule

import (
	"github.com/lixenwraith/halflife/grid"
)

// Next applies B3/S23 to a single cell
// Live results carry the neighbour count, dead results are 0
func Next(alive bool, neighbors int) uint8 {
	switch {
	case alive && (neighbors == 2 || neighbors == 3):
		return uint8(neighbors)
	case !alive && neighbors == 3:
		return uint8(neighbors)
	default:
		return 0
	}
}

// Neighbors counts live Moore neighbours of (x, y)
// Cells outside the grid do not exist; there is no wraparound
func Neighbors(g *grid.Grid, x, y int) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			if g.Alive(nx, ny) {
				n++
			}
		}
	}
	return n
}

// Step returns the next generation in a freshly allocated grid
// The input grid is never written
func Step(g *grid.Grid) *grid.Grid {
	next, _ := grid.New(g.Width(), g.Height(), g.Mode())
	advance(g, next)
	return next
}

// advance writes the successor of cur into dst; both must share dimensions
func advance(cur, dst *grid.Grid) {
	w, h := cur.Width(), cur.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			dst.Set(x, y, Next(cur.Alive(x, y), Neighbors(cur, x, y)))
		}
	}
}

// Engine steps grids using a reusable back buffer
// The grid returned by Step becomes the front; the grid passed in becomes the next back buffer,
// so callers must not keep references to a grid after stepping it
type Engine struct {
	back *grid.Grid
}

// NewEngine creates an engine with no buffer; one is allocated on first Step
func NewEngine() *Engine {
	return &Engine{}
}

// Step computes the next generation of cur into the back buffer and swaps
func (e *Engine) Step(cur *grid.Grid) *grid.Grid {
	if !cur.SameSize(e.back) || e.back == cur {
		// Reseed changed the shape; the old buffer is dropped, never resized
		e.back, _ = grid.New(cur.Width(), cur.Height(), cur.Mode())
	}
	next := e.back
	advance(cur, next)
	e.back = cur
	return next
}

// Reset drops the back buffer
func (e *Engine) Reset() {
	e.back = nil
}
