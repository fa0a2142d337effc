package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// PaletteIndex selects one of the fixed display colors
type PaletteIndex uint8

const (
	PaletteCyan PaletteIndex = iota
	PalettePink
	PaletteGreen
	PaletteWhite

	paletteCount
)

// ErrUnknownPalette is returned by ParsePalette for unrecognised names
var ErrUnknownPalette = errors.New("render: unknown palette")

type paletteEntry struct {
	name  string
	color colorful.Color
}

var palette = [paletteCount]paletteEntry{
	PaletteCyan:  {"cyan", mustHex("#00d7d7")},
	PalettePink:  {"pink", mustHex("#d75fd7")},
	PaletteGreen: {"green", mustHex("#5fd75f")},
	PaletteWhite: {"white", mustHex("#e4e4e4")},
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Next returns the following palette entry, wrapping after the last
func (p PaletteIndex) Next() PaletteIndex {
	return (p.normalize() + 1) % paletteCount
}

// Name returns the config name of the entry
func (p PaletteIndex) Name() string {
	return palette[p.normalize()].name
}

func (p PaletteIndex) String() string { return p.Name() }

// Color returns the tcell foreground color of the entry
func (p PaletteIndex) Color() tcell.Color {
	r, g, b := palette[p.normalize()].color.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Style returns the glyph style for the entry on the terminal's default background
func (p PaletteIndex) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(p.Color())
}

// Out of range values fall back to the first entry
func (p PaletteIndex) normalize() PaletteIndex {
	if p >= paletteCount {
		return PaletteCyan
	}
	return p
}

// Palettes lists every entry in cycle order
func Palettes() []PaletteIndex {
	out := make([]PaletteIndex, paletteCount)
	for i := range out {
		out[i] = PaletteIndex(i)
	}
	return out
}

// ParsePalette resolves a palette by name; "magenta" is accepted for pink
func ParsePalette(name string) (PaletteIndex, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return PaletteCyan, nil
	}
	if n == "magenta" {
		return PalettePink, nil
	}
	for i, e := range palette {
		if e.name == n {
			return PaletteIndex(i), nil
		}
	}
	return PaletteCyan, errors.Wrapf(ErrUnknownPalette, "%q", name)
}
