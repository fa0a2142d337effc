package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ErrClosed is returned by PollKey once the event stream has ended
var ErrClosed = errors.New("terminal: event stream closed")

// ErrNotInitialized is returned by PollKey before Init
var ErrNotInitialized = errors.New("terminal: not initialized")

// Screen adapts tcell.Screen to the session loop
type Screen struct {
	screen tcell.Screen

	events chan tcell.Event
	quit   chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Screen on the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an uninitialised tcell screen (tests pass a SimulationScreen)
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Init enters raw mode and the alternate screen and starts event delivery
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.HideCursor()
	s.screen.Clear()

	s.events = make(chan tcell.Event, 16)
	s.quit = make(chan struct{})
	go s.screen.ChannelEvents(s.events, s.quit)

	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	close(s.quit)
	s.screen.Fini()
	s.finalized = true
}

// Size returns current terminal dimensions in character cells
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// SetContent queues one glyph for the next Show
func (s *Screen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.screen.SetContent(x, y, primary, combining, style)
}

// Show commits queued cells as one frame
func (s *Screen) Show() {
	s.screen.Show()
}

// PollKey waits up to timeout for a key press
// Returns nil without error when the wait expires or a resize arrives
func (s *Screen) PollKey(timeout time.Duration) (*tcell.EventKey, error) {
	s.mu.Lock()
	events, ready := s.events, s.initialized && !s.finalized
	s.mu.Unlock()
	if !ready {
		return nil, ErrNotInitialized
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			return nil, nil
		case ev, ok := <-events:
			if !ok {
				return nil, ErrClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return ev, nil
			case *tcell.EventResize:
				s.screen.Sync()
				return nil, nil
			case *tcell.EventError:
				return nil, errors.Wrap(ev, "terminal input")
			}
			// Mouse, paste and focus events are not bindings
		}
	}
}
