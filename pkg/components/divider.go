package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trellis-ui/trellis/pkg/style"
)

const defaultDividerWidth = 40

// Divider renders a horizontal rule, optionally labeled.
type Divider struct {
	BaseComponent
	rune  string
	label string
	width int
}

// HorizontalDivider creates a plain rule sized by the render context.
func HorizontalDivider() *Divider {
	return &Divider{BaseComponent: NewBaseComponent(), rune: "─"}
}

// LabeledDivider creates a rule with an inline label.
func LabeledDivider(label string) *Divider {
	d := HorizontalDivider()
	d.label = label
	return d
}

// WithRune changes the rule character.
func (d *Divider) WithRune(r string) *Divider {
	d.rune = r
	return d
}

// WithWidth fixes the rule width, overriding the context width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers adds style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

// View renders with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the rule. A labeled divider puts the label at
// the reading-direction start with a short lead-in.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	base := style.Descriptor{"foreground": ctx.Theme.Palette.Neutral.Muted}
	lineStyle := d.ComputeStyle(ctx, base)

	if d.label == "" {
		return lineStyle.Render(strings.Repeat(d.rune, width))
	}

	lead := strings.Repeat(d.rune, 2)
	labelText := " " + d.label + " "
	remaining := width - lipgloss.Width(lead) - lipgloss.Width(labelText)
	if remaining < 0 {
		remaining = 0
	}
	tail := strings.Repeat(d.rune, remaining)

	if ctx.RTL() {
		return lineStyle.Render(tail) + labelText + lineStyle.Render(lead)
	}
	return lineStyle.Render(lead) + labelText + lineStyle.Render(tail)
}
