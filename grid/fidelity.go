package grid

import (
	"strings"

	"github.com/pkg/errors"
)

// FidelityMode selects how many logical rows map onto one terminal row
type FidelityMode uint8

const (
	// Doubled packs two logical rows into each terminal row using half-block glyphs
	Doubled FidelityMode = iota
	// OneToOne maps each logical row to one terminal row
	OneToOne
)

// ErrUnknownFidelity is returned by ParseFidelity for unrecognised names
var ErrUnknownFidelity = errors.New("grid: unknown fidelity mode")

// String returns the config name of the mode
func (m FidelityMode) String() string {
	switch m {
	case Doubled:
		return "doubled"
	case OneToOne:
		return "one"
	default:
		return "unknown"
	}
}

// RowsPerCell is the number of logical rows drawn in one terminal row
func (m FidelityMode) RowsPerCell() int {
	if m == Doubled {
		return 2
	}
	return 1
}

// RowsFor returns the logical grid height for a terminal with termRows rows
func RowsFor(mode FidelityMode, termRows int) int {
	return termRows * mode.RowsPerCell()
}

// ParseFidelity accepts "doubled"/"double"/"2" and "one"/"onetoone"/"1"
func ParseFidelity(s string) (FidelityMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "doubled", "double", "2", "":
		return Doubled, nil
	case "one", "onetoone", "one-to-one", "1":
		return OneToOne, nil
	}
	return Doubled, errors.Wrapf(ErrUnknownFidelity, "%q", s)
}

// MatchesTerminal reports whether the grid was derived from a terminal of the given size
func (g *Grid) MatchesTerminal(termW, termH int) bool {
	return g.width == termW && g.height == RowsFor(g.mode, termH)
}
