package constants

import "time"

// Session Loop Timing Constants
const (
	// TickInterval is the pause after each tick
	TickInterval = 10 * time.Millisecond

	// PollTimeout bounds the wait for a key press within a tick
	PollTimeout = 10 * time.Millisecond

	// MinInterval and MaxInterval bound configurable tick and poll durations
	MinInterval = time.Millisecond
	MaxInterval = time.Second
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "halflife.log"
)
