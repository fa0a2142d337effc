// Package engine runs the Life session: reseed, step, draw, poll, sleep
package engine

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/halflife/constants"
	"github.com/lixenwraith/halflife/grid"
	"github.com/lixenwraith/halflife/input"
	"github.com/lixenwraith/halflife/render"
	"github.com/lixenwraith/halflife/rule"
)

// Terminal is the platform collaborator driven by the loop
type Terminal interface {
	render.Surface

	// Init enters raw mode and the alternate screen
	Init() error

	// Fini restores the terminal
	Fini()

	// PollKey waits at most timeout; nil event means nothing happened
	PollKey(timeout time.Duration) (*tcell.EventKey, error)
}

// Cue is notified whenever the board is replaced
type Cue interface {
	Reseed()
}

// Options configures a Game
type Options struct {
	Mode        grid.FidelityMode
	Palette     render.PaletteIndex
	Tick        time.Duration
	PollTimeout time.Duration
	Seed        int64

	// Sleep replaces time.Sleep for the post-tick pause
	Sleep func(time.Duration)
}

// Game owns the session state and the components it drives
type Game struct {
	term     Terminal
	renderer *render.Renderer
	rules    *rule.Engine
	rng      *rand.Rand
	state    *State
	cue      Cue

	tick        time.Duration
	pollTimeout time.Duration
	sleep       func(time.Duration)
}

// NewGame wires a session onto term
func NewGame(term Terminal, opts Options) *Game {
	if opts.Tick <= 0 {
		opts.Tick = constants.TickInterval
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = constants.PollTimeout
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	return &Game{
		term:        term,
		renderer:    render.NewRenderer(term),
		rules:       rule.NewEngine(),
		rng:         grid.NewRand(opts.Seed),
		state:       NewState(opts.Mode, opts.Palette),
		tick:        opts.Tick,
		pollTimeout: opts.PollTimeout,
		sleep:       opts.Sleep,
	}
}

// SetCue installs a reseed notifier; nil disables it
func (g *Game) SetCue(c Cue) {
	g.cue = c
}

// State exposes the session record
func (g *Game) State() *State {
	return g.state
}

// Run drives the session until quit or the first terminal failure
// The terminal is restored exactly once on every exit path after a successful Init
func (g *Game) Run() error {
	if err := g.term.Init(); err != nil {
		return errors.Wrap(err, "enter terminal mode")
	}
	defer g.term.Fini()

	if w, h := g.term.Size(); w > 0 && h > 0 {
		if err := g.reseed(w, h, "start"); err != nil {
			return err
		}
	}

	for g.state.Phase() == PhaseActive {
		if err := g.Tick(); err != nil {
			log.Printf("session aborted after %d generations: %v", g.state.Generation, err)
			return err
		}
	}
	log.Printf("session ended by quit key")
	return nil
}

// Tick runs one iteration: resize/reload check, step, draw, poll, sleep
func (g *Game) Tick() error {
	w, h := g.term.Size()

	if w > 0 && h > 0 {
		if g.state.NeedsReseed(w, h) {
			if err := g.reseed(w, h, g.reseedReason()); err != nil {
				return err
			}
		}

		g.state.Grid = g.rules.Step(g.state.Grid)
		g.state.Generation++

		if err := g.renderer.Draw(g.state.Grid, g.state.Palette); err != nil {
			return errors.Wrap(err, "draw frame")
		}
	}
	// A zero-area terminal skips the frame and waits for a resize

	ev, err := g.term.PollKey(g.pollTimeout)
	if err != nil {
		return errors.Wrap(err, "poll input")
	}
	g.state.Apply(input.Handle(ev))

	if g.state.Running {
		g.sleep(g.tick)
	}
	return nil
}

func (g *Game) reseedReason() string {
	switch {
	case g.state.Grid == nil:
		return "start"
	case g.state.PendingReseed:
		return "reload"
	default:
		return "resize"
	}
}

func (g *Game) reseed(w, h int, reason string) error {
	if err := g.state.Reseed(w, h, g.rng); err != nil {
		return errors.Wrapf(err, "reseed %dx%d", w, h)
	}
	g.rules.Reset()
	log.Printf("reseed (%s): %dx%d cells for %dx%d terminal, palette %s",
		reason, g.state.Grid.Width(), g.state.Grid.Height(), w, h, g.state.Palette)
	if g.cue != nil {
		g.cue.Reseed()
	}
	return nil
}
