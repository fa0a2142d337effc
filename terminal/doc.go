// Package terminal wraps a tcell screen as the session's terminal collaborator.
//
// Features:
//   - Alternate screen and raw input on Init, restored on Fini (safe to call repeatedly)
//   - Cell-addressed drawing committed one frame at a time via Show
//   - Key polling with a bounded wait, fed by tcell's event channel
//   - Resize events resync the screen; callers re-query Size every tick
package terminal
