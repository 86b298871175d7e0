package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/trellis-ui/trellis/pkg/style"
	"github.com/trellis-ui/trellis/pkg/theme"
)

// Renderable is the composition contract every component satisfies.
type Renderable interface {
	View() string
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries the theme, the style pipeline, and layout
// information into a render. Contexts are values; derivations return
// copies.
type RenderContext struct {
	Theme    *theme.Theme
	Pipeline style.Pipeline
	Width    int
}

// NewContext builds a context over the given theme with the default
// pipeline and no width constraint.
func NewContext(th *theme.Theme) RenderContext {
	return RenderContext{Theme: th, Pipeline: style.Default}
}

// DefaultContext returns a context over the default theme.
func DefaultContext() RenderContext {
	th := theme.DefaultTheme()
	return NewContext(&th)
}

// WithTheme returns a copy of the context using th.
func (r RenderContext) WithTheme(th *theme.Theme) RenderContext {
	r.Theme = th
	return r
}

// WithPipeline returns a copy of the context using p, letting hosts
// swap the vendor prefixer without touching components.
func (r RenderContext) WithPipeline(p style.Pipeline) RenderContext {
	r.Pipeline = p
	return r
}

// WithWidth returns a copy of the context constrained to w cells.
func (r RenderContext) WithWidth(w int) RenderContext {
	r.Width = w
	return r
}

// RTL reports whether the context lays out right-to-left.
func (r RenderContext) RTL() bool {
	return r.Theme != nil && r.Theme.Direction.IsRTL()
}

// StyleFunc derives a style descriptor from the theme. Modifiers
// (Background, Padding, Border, ...) are StyleFuncs; components merge
// their outputs after the component's own base descriptor, so later
// modifiers win.
type StyleFunc func(th *theme.Theme) style.Descriptor

// BaseComponent provides descriptor plumbing shared by all components.
// Embed it and call ComputeStyle from the component's render method.
type BaseComponent struct {
	appliers  []StyleFunc
	overrides style.Descriptor
}

// NewBaseComponent returns an empty base.
func NewBaseComponent() BaseComponent {
	return BaseComponent{}
}

// SetAppliers replaces the modifier list.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = appliers
}

// AddAppliers appends modifiers, preserving earlier ones. The slice is
// copied so components sharing a modifier list never alias.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	merged := make([]StyleFunc, 0, len(b.appliers)+len(appliers))
	merged = append(merged, b.appliers...)
	merged = append(merged, appliers...)
	b.appliers = merged
}

// SetOverrides installs a raw descriptor merged last, after every
// modifier. The escape hatch for one-off adjustments.
func (b *BaseComponent) SetOverrides(d style.Descriptor) {
	b.overrides = d
}

// ComputeStyle merges the base descriptors, the modifier outputs, and
// the overrides, runs the pipeline once, and returns the resulting
// lipgloss style. Every component renders through this single call so
// prepared descriptors are never re-flipped.
func (b BaseComponent) ComputeStyle(ctx RenderContext, base ...style.Descriptor) lipgloss.Style {
	descs := make([]style.Descriptor, 0, len(base)+len(b.appliers)+1)
	descs = append(descs, base...)
	for _, fn := range b.appliers {
		if fn == nil {
			continue
		}
		descs = append(descs, fn(ctx.Theme))
	}
	if b.overrides != nil {
		descs = append(descs, b.overrides)
	}

	prepared := ctx.Pipeline.Prepare(ctx.Theme, descs...)
	return style.Apply(lipgloss.NewStyle(), prepared)
}
