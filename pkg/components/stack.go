package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StackDirection selects the main axis of a Stack.
type StackDirection int

const (
	StackVertical StackDirection = iota
	StackHorizontal
)

// Stack arranges children along one axis with a uniform gap. A
// horizontal stack lays children out in reading order, so an RTL theme
// reverses them.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction StackDirection
	gap       int
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children}
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     StackHorizontal,
	}
}

// WithGap sets the inter-child gap in cells.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithAppliers adds style modifiers applied to the joined output.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// View renders with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders each child, joins along the axis, and applies
// the stack's own modifiers to the joined block.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	rendered := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		rendered = append(rendered, child.ViewWithContext(ctx))
	}
	if len(rendered) == 0 {
		return ""
	}

	if s.direction == StackHorizontal && ctx.RTL() {
		for i, j := 0, len(rendered)-1; i < j; i, j = i+1, j-1 {
			rendered[i], rendered[j] = rendered[j], rendered[i]
		}
	}

	var joined string
	if s.direction == StackHorizontal {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, s.withHorizontalGaps(rendered)...)
	} else {
		joined = lipgloss.JoinVertical(lipgloss.Left, s.withVerticalGaps(rendered)...)
	}

	if len(s.appliers) == 0 && s.overrides == nil {
		return joined
	}
	return s.ComputeStyle(ctx).Render(joined)
}

func (s *Stack) withHorizontalGaps(rendered []string) []string {
	if s.gap == 0 {
		return rendered
	}
	gap := lipgloss.NewStyle().Width(s.gap).Render("")
	out := make([]string, 0, len(rendered)*2-1)
	for i, r := range rendered {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, r)
	}
	return out
}

func (s *Stack) withVerticalGaps(rendered []string) []string {
	if s.gap == 0 {
		return rendered
	}
	out := make([]string, 0, len(rendered)*2-1)
	for i, r := range rendered {
		if i > 0 {
			for g := 0; g < s.gap; g++ {
				out = append(out, "")
			}
		}
		out = append(out, r)
	}
	return out
}
