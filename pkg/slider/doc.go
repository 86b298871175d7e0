// Package slider implements the value-selection state machine behind
// the trellis slider component and a bubbletea model wrapping it.
//
// The machine is pure: every transition takes the current state and
// returns the next state plus the side-effect notifications (value
// changes, drag start/stop) the transition produced. Host frameworks
// deliver input events and animation frames; the machine owns the
// idle/dragging lifecycle, the per-frame coalescing of move events, and
// the numeric rules that convert a track offset into a stepped value.
package slider
