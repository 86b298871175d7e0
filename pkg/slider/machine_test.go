package slider

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellis-ui/trellis/internal/logger"
)

func newMachine(t *testing.T, props Props, width float64) Machine {
	t.Helper()
	return New(props, width, nil)
}

func TestNewClampsInitialValue(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01, Value: 4}, 100)

	assert.Equal(t, 1.0, m.State().Value)
	assert.Equal(t, 1.0, m.State().Percent)
}

func TestNewLogsInvalidProps(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf})
	require.NoError(t, err)

	New(Props{Min: 1, Max: 0, Step: -1, Value: 5}, 100, log)

	out := buf.String()
	assert.Contains(t, out, "slider.min")
	assert.Contains(t, out, "slider.step")
}

func TestPressMidTrackSelectsMidValue(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01}, 100)

	m, effects := m.Press(50)

	assert.Equal(t, 0.5, m.State().Value)
	assert.Equal(t, 0.5, m.State().Percent)
	require.Len(t, effects, 2)
	assert.Equal(t, ChangeEffect{Value: 0.5}, effects[0])
	assert.Equal(t, DragStartEffect{}, effects[1])
	assert.True(t, m.State().Dragging)
	assert.True(t, m.State().Active)
}

func TestPressHandleStartsDragWithoutChange(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01, Value: 0.3}, 100)

	m, effects := m.PressHandle()

	assert.Equal(t, []Effect{DragStartEffect{}}, effects)
	assert.Equal(t, 0.3, m.State().Value)
	assert.True(t, m.State().Dragging)
}

func TestIncrementAvoidsFloatDrift(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.06, Value: 0.01}, 100)

	m, effects := m.Key(KeyIncrement)

	// 0.01 + 0.06 is 0.06999999999999999 in raw float64 arithmetic;
	// the machine must surface exactly 0.07.
	assert.Equal(t, 0.07, m.State().Value)
	assert.Equal(t, []Effect{ChangeEffect{Value: 0.07}}, effects)
}

func TestDecrementAndClamp(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.3, Value: 0.2}, 100)

	m, _ = m.Key(KeyDecrement)
	assert.Equal(t, 0.0, m.State().Value)

	// Already at the bound: no further change, no effect.
	m, effects := m.Key(KeyDecrement)
	assert.Equal(t, 0.0, m.State().Value)
	assert.Empty(t, effects)
}

func TestPageKeysJumpByTenSteps(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01, Value: 0.5}, 100)

	m, _ = m.Key(KeyPageUp)
	assert.Equal(t, 0.6, m.State().Value)

	m, _ = m.Key(KeyPageDown)
	assert.Equal(t, 0.5, m.State().Value)
}

func TestHomeEndBypassStepAlignment(t *testing.T) {
	// Step 0.3 does not divide the range evenly, so the bounds are not
	// reachable by stepping. Home and End must land on them exactly.
	m := newMachine(t, Props{Min: 0.05, Max: 0.95, Step: 0.3, Value: 0.35}, 100)

	m, effects := m.Key(KeyEnd)
	assert.Equal(t, 0.95, m.State().Value)
	assert.Equal(t, 1.0, m.State().Percent)
	assert.Equal(t, []Effect{ChangeEffect{Value: 0.95}}, effects)

	m, effects = m.Key(KeyHome)
	assert.Equal(t, 0.05, m.State().Value)
	assert.Equal(t, 0.0, m.State().Percent)
	assert.Equal(t, []Effect{ChangeEffect{Value: 0.05}}, effects)
}

func TestDragAlignsToStepFromMin(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 10, Step: 3}, 100)

	m, _ = m.Press(0)
	m, _ = m.Move(44)
	m, effects := m.Frame()

	// 4.4 snaps to the nearest multiple of 3 offset from Min.
	assert.Equal(t, 3.0, m.State().Value)
	assert.Equal(t, []Effect{ChangeEffect{Value: 3.0}}, effects)
}

func TestMoveCoalescingDropsLaterMoves(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01}, 100)
	m, _ = m.Press(0)

	// Three moves before the frame: only the first survives.
	m, _ = m.Move(10)
	m, _ = m.Move(20)
	m, _ = m.Move(30)

	m, effects := m.Frame()
	assert.Equal(t, 0.1, m.State().Value)
	assert.Equal(t, []Effect{ChangeEffect{Value: 0.1}}, effects)

	// The dropped moves do not replay on the next frame.
	m, effects = m.Frame()
	assert.Empty(t, effects)
	assert.Equal(t, 0.1, m.State().Value)
}

func TestMoveIgnoredWhenIdle(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01, Value: 0.5}, 100)

	m, effects := m.Move(90)
	assert.Empty(t, effects)

	m, effects = m.Frame()
	assert.Empty(t, effects)
	assert.Equal(t, 0.5, m.State().Value)
}

func TestMoveOutsideTrackClamps(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01, Value: 0.5}, 100)
	m, _ = m.Press(50)

	m, _ = m.Move(-400)
	m, _ = m.Frame()
	assert.Equal(t, 0.0, m.State().Value)

	m, _ = m.Move(700)
	m, _ = m.Frame()
	assert.Equal(t, 1.0, m.State().Value)
}

func TestReleaseEndsDrag(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01}, 100)
	m, _ = m.Press(25)

	m, effects := m.Release()
	assert.Equal(t, []Effect{DragStopEffect{}}, effects)
	assert.False(t, m.State().Dragging)
	assert.False(t, m.State().Active)

	// Releasing while idle is a no-op.
	m, effects = m.Release()
	assert.Empty(t, effects)
	_ = m
}

func TestReleaseDiscardsPendingMove(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01}, 100)
	m, _ = m.Press(0)
	m, _ = m.Move(80)
	m, _ = m.Release()

	m, effects := m.Frame()
	assert.Empty(t, effects)
	assert.Equal(t, 0.0, m.State().Value)
}

func TestSetValueIgnoredWhileDragging(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01}, 100)
	m, _ = m.Press(50)

	m, effects := m.SetValue(0.9)
	assert.Empty(t, effects)
	assert.Equal(t, 0.5, m.State().Value)

	m, _ = m.Release()
	m, effects = m.SetValue(0.9)
	assert.Equal(t, []Effect{ChangeEffect{Value: 0.9}}, effects)
	assert.Equal(t, 0.9, m.State().Value)
}

func TestDisabledSliderIsInert(t *testing.T) {
	m := newMachine(t, Props{Min: 0, Max: 1, Step: 0.01, Value: 0.5, Disabled: true}, 100)

	var effects []Effect
	m, effects = m.Press(90)
	assert.Empty(t, effects)

	m, effects = m.Key(KeyIncrement)
	assert.Empty(t, effects)

	m, effects = m.Focus()
	assert.Empty(t, effects)

	assert.Equal(t, 0.5, m.State().Value)
	assert.False(t, m.State().Dragging)
	assert.False(t, m.State().Focused)
}

func TestFocusBlurEffects(t *testing.T) {
	m := newMachine(t, DefaultProps(), 100)

	m, effects := m.Focus()
	assert.Equal(t, []Effect{FocusEffect{}}, effects)

	m, effects = m.Focus()
	assert.Empty(t, effects)

	m, effects = m.Blur()
	assert.Equal(t, []Effect{BlurEffect{}}, effects)

	m, effects = m.Blur()
	assert.Empty(t, effects)
	_ = m
}

func TestDegenerateRangePercentIsZero(t *testing.T) {
	m := New(Props{Min: 1, Max: 1, Step: 0.01, Value: 1}, 100, nil)

	assert.Equal(t, 0.0, m.State().Percent)

	m, _ = m.Press(50)
	assert.False(t, m.State().Percent != m.State().Percent, "percent must not be NaN")
}

func TestZeroWidthTrack(t *testing.T) {
	m := New(DefaultProps(), 0, nil)

	m, _ = m.Press(10)
	assert.Equal(t, 0.0, m.State().Value)
	assert.True(t, m.State().Dragging)
}

func TestPropsNormalizedDefaultsStep(t *testing.T) {
	m := New(Props{Min: 0, Max: 1}, 100, nil)
	assert.Equal(t, DefaultStep, m.Props().Step)
}
