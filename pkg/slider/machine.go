package slider

import (
	"math"

	"github.com/trellis-ui/trellis/internal/logger"
)

// Effect is a side-effect notification emitted by a transition. The
// host decides how to deliver it (callback, message, event).
type Effect interface{ isEffect() }

// ChangeEffect reports that the slider value moved.
type ChangeEffect struct{ Value float64 }

// DragStartEffect reports the idle -> dragging transition.
type DragStartEffect struct{}

// DragStopEffect reports the dragging -> idle transition.
type DragStopEffect struct{}

// FocusEffect and BlurEffect report keyboard focus changes.
type FocusEffect struct{}
type BlurEffect struct{}

func (ChangeEffect) isEffect()    {}
func (DragStartEffect) isEffect() {}
func (DragStopEffect) isEffect()  {}
func (FocusEffect) isEffect()     {}
func (BlurEffect) isEffect()      {}

// State is the observable slider state. Invariant outside transitions:
// Percent == clamp((Value-Min)/(Max-Min), 0, 1), NaN-guarded to 0 for
// degenerate ranges.
type State struct {
	Value    float64
	Percent  float64
	Dragging bool
	Active   bool
	Focused  bool
	Hovered  bool
}

// KeyAction enumerates the keyboard operations on a focused handle.
type KeyAction int

const (
	KeyIncrement KeyAction = iota
	KeyDecrement
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// pageFactor scales Step for page up/down jumps.
const pageFactor = 10

// Machine is the idle/dragging state machine converting track offsets
// and key presses into clamped, stepped values. Transitions use value
// receivers and return the successor machine plus effects; the zero
// machine is not valid, use New.
type Machine struct {
	props Props
	state State

	trackWidth float64

	// One coalesced move may be in flight per frame. Moves arriving
	// while framePending is set are dropped, not queued.
	framePending  bool
	pendingOffset float64
}

// New validates the props (problems are logged as warnings, never
// fatal) and builds an idle machine with the initial value clamped into
// range.
func New(props Props, trackWidth float64, log *logger.Logger) Machine {
	for _, problem := range props.Validate() {
		log.WithComponent("slider").Warn(problem.Error())
	}

	props = props.normalized()
	m := Machine{props: props, trackWidth: trackWidth}
	m.state.Value = clamp(props.Value, props.Min, props.Max)
	m.state.Percent = m.percentFor(m.state.Value)
	return m
}

// State returns the observable state.
func (m Machine) State() State { return m.state }

// Props returns the normalized configuration.
func (m Machine) Props() Props { return m.props }

// Resize updates the pixel (cell) width of the track.
func (m Machine) Resize(trackWidth float64) Machine {
	m.trackWidth = trackWidth
	return m
}

// Press starts a drag from a press on the handle or track. Track
// presses jump the value to the pressed offset before the machine
// enters dragging. Disabled sliders stay inert.
func (m Machine) Press(offset float64) (Machine, []Effect) {
	if m.props.Disabled || m.state.Dragging {
		return m, nil
	}

	var effects []Effect
	m, effects = m.applyOffset(offset)

	m.state.Dragging = true
	m.state.Active = true
	effects = append(effects, DragStartEffect{})
	return m, effects
}

// PressHandle starts a drag without moving the value, for presses
// landing exactly on the handle.
func (m Machine) PressHandle() (Machine, []Effect) {
	if m.props.Disabled || m.state.Dragging {
		return m, nil
	}
	m.state.Dragging = true
	m.state.Active = true
	return m, []Effect{DragStartEffect{}}
}

// Move records a pointer move during a drag. The offset is processed on
// the next Frame; moves arriving while one is pending are dropped.
func (m Machine) Move(offset float64) (Machine, []Effect) {
	if m.props.Disabled || !m.state.Dragging {
		return m, nil
	}
	if m.framePending {
		return m, nil
	}
	m.framePending = true
	m.pendingOffset = offset
	return m, nil
}

// Frame processes the pending move, if any. Hosts call it once per
// animation frame while a drag is active.
func (m Machine) Frame() (Machine, []Effect) {
	if !m.framePending {
		return m, nil
	}
	m.framePending = false
	if !m.state.Dragging {
		return m, nil
	}
	return m.applyOffset(m.pendingOffset)
}

// Release ends a drag from a pointer release or cancel anywhere on the
// input surface.
func (m Machine) Release() (Machine, []Effect) {
	if !m.state.Dragging {
		return m, nil
	}
	m.state.Dragging = false
	m.state.Active = false
	m.framePending = false
	return m, []Effect{DragStopEffect{}}
}

// Key applies a keyboard action on the focused handle. Home and End
// jump to the exact bounds, bypassing step alignment; the remaining
// actions add or subtract (a multiple of) Step with 5-decimal rounding.
func (m Machine) Key(action KeyAction) (Machine, []Effect) {
	if m.props.Disabled {
		return m, nil
	}

	switch action {
	case KeyHome:
		return m.jumpTo(m.props.Min, 0)
	case KeyEnd:
		return m.jumpTo(m.props.Max, 1)
	}

	delta := m.props.Step
	switch action {
	case KeyDecrement:
		delta = -m.props.Step
	case KeyPageUp:
		delta = m.props.Step * pageFactor
	case KeyPageDown:
		delta = -m.props.Step * pageFactor
	}

	next := clamp(roundValue(m.state.Value+delta), m.props.Min, m.props.Max)
	return m.commitValue(next)
}

// SetValue applies an externally supplied value. It is ignored while a
// drag is in progress so external updates cannot fight the gesture.
func (m Machine) SetValue(value float64) (Machine, []Effect) {
	if m.state.Dragging {
		return m, nil
	}
	next := clamp(roundValue(value), m.props.Min, m.props.Max)
	return m.commitValue(next)
}

// Focus marks the handle focused.
func (m Machine) Focus() (Machine, []Effect) {
	if m.props.Disabled || m.state.Focused {
		return m, nil
	}
	m.state.Focused = true
	return m, []Effect{FocusEffect{}}
}

// Blur clears keyboard focus.
func (m Machine) Blur() (Machine, []Effect) {
	if !m.state.Focused {
		return m, nil
	}
	m.state.Focused = false
	return m, []Effect{BlurEffect{}}
}

// Hover updates the pointer-over state.
func (m Machine) Hover(hovered bool) Machine {
	m.state.Hovered = hovered
	return m
}

// applyOffset runs the offset -> value conversion: clamp to the track,
// convert to a percent, interpolate into the range, snap to the nearest
// step offset from Min, round to 5 decimals, and commit.
func (m Machine) applyOffset(offset float64) (Machine, []Effect) {
	offset = clamp(offset, 0, m.trackWidth)

	percent := 0.0
	if m.trackWidth > 0 {
		percent = offset / m.trackWidth
	}

	raw := m.props.Min + (m.props.Max-m.props.Min)*percent
	aligned := clamp(roundValue(m.snapToStep(raw)), m.props.Min, m.props.Max)
	return m.commitValue(aligned)
}

// jumpTo sets the exact value and percent, bypassing alignment.
func (m Machine) jumpTo(value, percent float64) (Machine, []Effect) {
	changed := m.state.Value != value
	m.state.Value = value
	m.state.Percent = percent
	if !changed {
		return m, nil
	}
	return m, []Effect{ChangeEffect{Value: value}}
}

// commitValue updates value and percent and emits a change effect only
// when the value actually moved.
func (m Machine) commitValue(value float64) (Machine, []Effect) {
	if value == m.state.Value {
		return m, nil
	}
	m.state.Value = value
	m.state.Percent = m.percentFor(value)
	return m, []Effect{ChangeEffect{Value: value}}
}

// snapToStep aligns a raw value to the nearest multiple of Step offset
// from Min.
func (m Machine) snapToStep(raw float64) float64 {
	steps := math.Round((raw - m.props.Min) / m.props.Step)
	return m.props.Min + steps*m.props.Step
}

// percentFor converts a value into a percent with a NaN guard for
// degenerate ranges.
func (m Machine) percentFor(value float64) float64 {
	span := m.props.Max - m.props.Min
	if span <= 0 {
		return 0
	}
	return clamp((value-m.props.Min)/span, 0, 1)
}

// roundValue rounds to 5 decimal places so repeated small increments do
// not accumulate floating-point drift (0.01 + 0.06 must be exactly
// 0.07).
func roundValue(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
