package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/halflife/grid"
	"github.com/lixenwraith/halflife/input"
	"github.com/lixenwraith/halflife/render"
)

// Phase is the session lifecycle state
type Phase uint8

const (
	PhaseActive Phase = iota
	PhaseTerminated
)

func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "terminated"
}

// State is the session record threaded through every phase of a tick
type State struct {
	Grid          *grid.Grid
	Mode          grid.FidelityMode
	Running       bool
	PendingReseed bool
	Palette       render.PaletteIndex

	// Generation counts steps since the last reseed
	Generation uint64
}

// NewState creates an active session with no grid yet
func NewState(mode grid.FidelityMode, palette render.PaletteIndex) *State {
	return &State{Mode: mode, Palette: palette, Running: true}
}

// Phase reports Active until the quit flag is observed
func (s *State) Phase() Phase {
	if s.Running {
		return PhaseActive
	}
	return PhaseTerminated
}

// NeedsReseed reports whether the grid must be replaced for a termW x termH terminal
func (s *State) NeedsReseed(termW, termH int) bool {
	return s.PendingReseed || s.Grid == nil || !s.Grid.MatchesTerminal(termW, termH)
}

// Reseed replaces the grid wholesale, keeping only the palette selection
func (s *State) Reseed(termW, termH int, rng *rand.Rand) error {
	g, err := grid.Seed(termW, termH, s.Mode, rng)
	if err != nil {
		return err
	}
	s.Grid = g
	s.Running = true
	s.PendingReseed = false
	s.Generation = 0
	return nil
}

// Apply mutates session flags for an intent; unbound intents are ignored
func (s *State) Apply(intent input.IntentType) {
	switch intent {
	case input.IntentQuit:
		s.Running = false
	case input.IntentReload:
		s.PendingReseed = true
	case input.IntentCyclePalette:
		s.Palette = s.Palette.Next()
	}
}
