// Package render draws a grid onto a character-cell surface using block glyphs
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/halflife/grid"
)

// Glyphs used for half-cell rendering
const (
	GlyphFull  = '█'
	GlyphUpper = '▀'
	GlyphLower = '▄'
	GlyphBlank = ' '
)

// Surface is the drawing target; tcell.Screen satisfies it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// ErrNoSurface is returned when drawing without a surface
var ErrNoSurface = errors.New("render: nil surface")

// GlyphFor maps a vertical pair of cells to one character
func GlyphFor(upper, lower bool) rune {
	switch {
	case upper && lower:
		return GlyphFull
	case upper:
		return GlyphUpper
	case lower:
		return GlyphLower
	default:
		return GlyphBlank
	}
}

// Renderer redraws the whole surface from a grid every frame
type Renderer struct {
	surface Surface
	blank   tcell.Style
}

// NewRenderer creates a renderer bound to surface
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface, blank: tcell.StyleDefault}
}

// Draw writes every visible character cell and commits the frame
func (r *Renderer) Draw(g *grid.Grid, p PaletteIndex) error {
	if r.surface == nil {
		return ErrNoSurface
	}
	if g == nil {
		return errors.New("render: nil grid")
	}

	style := p.Style()
	perCell := g.Mode().RowsPerCell()
	sw, sh := r.surface.Size()

	for col := 0; col < sw; col++ {
		for row := 0; row < sh; row++ {
			if col >= g.Width() {
				r.surface.SetContent(col, row, GlyphBlank, nil, r.blank)
				continue
			}
			ch := r.glyphAt(g, col, row, perCell)
			if ch == GlyphBlank {
				r.surface.SetContent(col, row, GlyphBlank, nil, r.blank)
				continue
			}
			r.surface.SetContent(col, row, ch, nil, style)
		}
	}

	r.surface.Show()
	return nil
}

// glyphAt returns the glyph of terminal cell (col, row); rows beyond the grid are blank
func (r *Renderer) glyphAt(g *grid.Grid, col, row, perCell int) rune {
	if perCell == 1 {
		if row < g.Height() && g.Alive(col, row) {
			return GlyphFull
		}
		return GlyphBlank
	}

	upperY, lowerY := row*2, row*2+1
	upper := upperY < g.Height() && g.Alive(col, upperY)
	lower := lowerY < g.Height() && g.Alive(col, lowerY)
	return GlyphFor(upper, lower)
}
