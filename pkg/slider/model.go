package slider

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trellis-ui/trellis/internal/logger"
	"github.com/trellis-ui/trellis/pkg/style"
	"github.com/trellis-ui/trellis/pkg/theme"
)

// frameInterval paces drag updates at roughly 60 updates per second.
const frameInterval = time.Second / 60

// FrameMsg drives the per-frame processing of coalesced pointer moves.
type FrameMsg struct{ at time.Time }

// ChangedMsg is emitted through Update's command stream whenever the
// slider value changes, so parent models can react without callbacks.
type ChangedMsg struct{ Value float64 }

// Model is the bubbletea wrapper around the slider machine. It owns
// the pointer surface, translates tea input messages into machine
// transitions, and renders the track from the theme's slider tokens.
type Model struct {
	controller *Controller
	surface    *Surface
	theme      *theme.Theme
	keys       KeyMap

	// originX is the screen column of the track's first cell, used to
	// convert absolute mouse coordinates into track offsets.
	originX int
	originY int

	showValue bool
	pending   []Effect
}

// NewModel builds a slider model over the given theme.
func NewModel(th *theme.Theme, props Props, log *logger.Logger) Model {
	tokens := th.Slider
	surface := NewSurface()
	machine := New(props, float64(tokens.TrackWidth-1), log)

	m := Model{
		controller: NewController(machine, surface),
		surface:    surface,
		theme:      th,
		keys:       DefaultKeyMap(),
		showValue:  true,
	}
	m.controller.OnEffect = func(e Effect) { m.collect(e) }
	return m
}

// collect buffers effects produced inside Update so they can be turned
// into messages after the transition settles.
func (m *Model) collect(e Effect) {
	m.pending = append(m.pending, e)
}

// Value returns the current slider value.
func (m Model) Value() float64 { return m.controller.State().Value }

// SetValue applies an external value; ignored while dragging.
func (m *Model) SetValue(v float64) { m.controller.SetValue(v) }

// SetOrigin tells the model where its track starts on screen.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Focus gives the slider keyboard focus.
func (m *Model) Focus() { m.controller.Focus() }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.controller.Blur() }

// Close detaches the slider from its surface; call on unmount.
func (m *Model) Close() { m.controller.Close() }

// Init satisfies the bubbletea lifecycle; the slider has no startup
// work.
func (m Model) Init() tea.Cmd { return nil }

// Update routes tea messages into machine transitions and returns the
// commands carrying the resulting notifications and frame ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m.pending = nil
	m.controller.OnEffect = func(e Effect) { m.collect(e) }

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.controller.State().Focused {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Increment):
			m.controller.Key(KeyIncrement)
		case key.Matches(msg, m.keys.Decrement):
			m.controller.Key(KeyDecrement)
		case key.Matches(msg, m.keys.PageUp):
			m.controller.Key(KeyPageUp)
		case key.Matches(msg, m.keys.PageDown):
			m.controller.Key(KeyPageDown)
		case key.Matches(msg, m.keys.Home):
			m.controller.Key(KeyHome)
		case key.Matches(msg, m.keys.End):
			m.controller.Key(KeyEnd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case FrameMsg:
		m.controller.Frame()
	}

	return m, m.flush()
}

// handleMouse routes press events through the model (they must land on
// the track) and move/release events through the surface, which keeps
// delivering them to a dragging slider wherever the pointer goes.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	offset := m.trackOffset(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if msg.Y != m.originY || offset < 0 || offset > m.trackSpan() {
			return
		}
		m.controller.Press(offset)
	case tea.MouseActionMotion:
		m.surface.Publish(PointerEvent{Kind: PointerMove, X: offset})
	case tea.MouseActionRelease:
		m.surface.Publish(PointerEvent{Kind: PointerRelease})
	}
}

// trackOffset converts an absolute column into a track-relative offset,
// mirroring it under RTL so offset 0 is always the Min end.
func (m Model) trackOffset(x int) float64 {
	offset := float64(x - m.originX)
	if m.theme.Direction.IsRTL() {
		offset = m.trackSpan() - offset
	}
	return offset
}

func (m Model) trackSpan() float64 {
	return float64(m.theme.Slider.TrackWidth - 1)
}

// flush converts buffered effects into commands: change notifications
// become ChangedMsg and an active drag keeps the frame tick running.
func (m *Model) flush() tea.Cmd {
	var cmds []tea.Cmd
	for _, effect := range m.pending {
		if change, ok := effect.(ChangeEffect); ok {
			value := change.Value
			cmds = append(cmds, func() tea.Msg { return ChangedMsg{Value: value} })
		}
	}
	m.pending = nil

	if m.controller.State().Dragging {
		cmds = append(cmds, frameTick())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{at: t}
	})
}

// View renders the track with Min on the left under LTR, mirrored
// under RTL.
func (m Model) View() string {
	tokens := m.theme.Slider
	state := m.controller.State()

	width := tokens.TrackWidth
	if width < 2 {
		width = 2
	}
	handleAt := int(float64(width-1)*state.Percent + 0.5)

	handleRune := tokens.HandleRune
	handleColor := tokens.Handle
	if state.Active {
		handleColor = tokens.HandleActive
	}

	filledStyle := lipgloss.NewStyle().Foreground(tokens.Filled)
	trackStyle := lipgloss.NewStyle().Foreground(tokens.Track)
	handleStyle := lipgloss.NewStyle().Foreground(handleColor)
	if m.controller.Machine().Props().Disabled {
		filledStyle = filledStyle.Faint(true)
		trackStyle = trackStyle.Faint(true)
		handleStyle = handleStyle.Faint(true)
	}

	filled := filledStyle.Render(strings.Repeat(tokens.FilledRune, handleAt))
	rest := trackStyle.Render(strings.Repeat(tokens.TrackRune, width-handleAt-1))

	var b strings.Builder
	if m.theme.Direction.IsRTL() {
		b.WriteString(rest)
		b.WriteString(handleStyle.Render(handleRune))
		b.WriteString(filled)
	} else {
		b.WriteString(filled)
		b.WriteString(handleStyle.Render(handleRune))
		b.WriteString(rest)
	}

	if !m.showValue {
		return b.String()
	}

	label := style.Prepare(m.theme, style.Descriptor{
		"foreground": m.theme.Palette.Neutral.Muted,
		"marginLeft": 1,
	})
	return b.String() + style.NewStyle(label).Render(fmt.Sprintf("%.2f", state.Value))
}
