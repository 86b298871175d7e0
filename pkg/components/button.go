package components

import (
	"github.com/trellis-ui/trellis/pkg/style"
	"github.com/trellis-ui/trellis/pkg/theme"
)

// ButtonVariant specifies the visual weight of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantDanger
	ButtonVariantGhost
)

// Button is a visual button with focus and disabled states. Input
// handling belongs to the host model; the button only renders.
type Button struct {
	BaseComponent
	label    string
	icon     string
	variant  ButtonVariant
	custom   style.Descriptor
	focused  bool
	hovered  bool
	disabled bool
}

// NewButton creates a primary button.
func NewButton(label string) *Button {
	return &Button{BaseComponent: NewBaseComponent(), label: label}
}

// WithVariant sets the visual variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithIcon prepends a glyph at the reading-direction start.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithAppliers adds style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// WithStyle merges a custom descriptor over the variant styling. Nested
// "focus" and "hover" blocks apply only in the matching state.
func (b *Button) WithStyle(d style.Descriptor) *Button {
	b.custom = d
	return b
}

// Hover marks the pointer-over state, activating the custom "hover"
// block.
func (b *Button) Hover() *Button {
	b.hovered = true
	return b
}

// Unhover clears the pointer-over state.
func (b *Button) Unhover() *Button {
	b.hovered = false
	return b
}

// Focus marks the button focused.
func (b *Button) Focus() *Button {
	b.focused = true
	return b
}

// Blur clears focus.
func (b *Button) Blur() *Button {
	b.focused = false
	return b
}

// Disable renders the button inert and de-emphasized.
func (b *Button) Disable() *Button {
	b.disabled = true
	return b
}

// Disabled reports the disabled state.
func (b *Button) Disabled() bool { return b.disabled }

// View renders with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	label := b.label
	if b.icon != "" {
		if ctx.RTL() {
			label = label + " " + b.icon
		} else {
			label = b.icon + " " + label
		}
	}

	descs := []style.Descriptor{b.baseDescriptor(ctx.Theme)}
	if b.custom != nil {
		descs = append(descs, b.custom.WithoutNested())
		if b.hovered {
			if hover := b.custom.Nested("hover"); hover != nil {
				descs = append(descs, hover)
			}
		}
		if b.focused {
			if focus := b.custom.Nested("focus"); focus != nil {
				descs = append(descs, focus)
			}
		}
	}

	return b.ComputeStyle(ctx, descs...).Render(label)
}

func (b *Button) baseDescriptor(th *theme.Theme) style.Descriptor {
	set := b.colourSet(th.Palette)

	d := style.Descriptor{
		"paddingLeft":  1,
		"paddingRight": 1,
		"bold":         true,
	}

	if b.variant == ButtonVariantGhost {
		d["foreground"] = set.Base
	} else {
		d["background"] = set.Base
		d["foreground"] = set.OnBase
	}

	if b.focused {
		d["underline"] = true
		d["background"] = set.Muted
		if b.variant == ButtonVariantGhost {
			delete(d, "background")
			d["foreground"] = set.Contrast
		}
	}
	if b.disabled {
		d["faint"] = true
		d["bold"] = false
		d["underline"] = false
	}

	return d
}

func (b *Button) colourSet(p theme.Palette) theme.ColourSet {
	switch b.variant {
	case ButtonVariantSecondary:
		return p.Secondary
	case ButtonVariantSuccess:
		return p.Success
	case ButtonVariantDanger:
		return p.Danger
	case ButtonVariantGhost:
		return p.Primary
	default:
		return p.Primary
	}
}
