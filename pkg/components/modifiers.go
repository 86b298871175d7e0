package components

import (
	"github.com/trellis-ui/trellis/pkg/style"
	"github.com/trellis-ui/trellis/pkg/theme"
)

// Background fills the component with a semantic colour slot, pairing
// the slot's base colour with its on-base foreground.
func Background(slot theme.PaletteSlot) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		set := slot(th.Palette)
		return style.Descriptor{
			"background": set.Base,
			"foreground": set.OnBase,
		}
	}
}

// Foreground colours text with a slot's base colour.
func Foreground(slot theme.PaletteSlot) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		return style.Descriptor{"foreground": slot(th.Palette).Base}
	}
}

// MutedForeground colours text with a slot's muted colour.
func MutedForeground(slot theme.PaletteSlot) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		return style.Descriptor{"foreground": slot(th.Palette).Muted}
	}
}

// Border draws the themed border variant around the component.
func Border(variant theme.BorderVariant) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		return style.Descriptor{"border": th.Borders.ForVariant(variant)}
	}
}

// BorderColor tints the border with a slot's base colour.
func BorderColor(slot theme.PaletteSlot) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		return style.Descriptor{"borderForeground": slot(th.Palette).Base}
	}
}

// Padding applies the themed padding size on all sides.
func Padding(size theme.SpacingSize) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		v := th.Spacing.PaddingValue(size)
		return style.Descriptor{
			"paddingTop": v, "paddingRight": v, "paddingBottom": v, "paddingLeft": v,
		}
	}
}

// PaddingX applies themed horizontal padding. Under RTL the pipeline
// mirrors the sides, which for symmetric padding is a no-op.
func PaddingX(size theme.SpacingSize) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		v := th.Spacing.PaddingValue(size)
		return style.Descriptor{"paddingLeft": v, "paddingRight": v}
	}
}

// PaddingY applies themed vertical padding.
func PaddingY(size theme.SpacingSize) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		v := th.Spacing.PaddingValue(size)
		return style.Descriptor{"paddingTop": v, "paddingBottom": v}
	}
}

// PaddingStart pads the reading-direction start edge: left under LTR,
// mirrored to the right by the pipeline under RTL.
func PaddingStart(size theme.SpacingSize) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		return style.Descriptor{"paddingLeft": th.Spacing.PaddingValue(size)}
	}
}

// Margin applies the themed margin size on all sides.
func Margin(size theme.SpacingSize) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		v := th.Spacing.MarginValue(size)
		return style.Descriptor{
			"marginTop": v, "marginRight": v, "marginBottom": v, "marginLeft": v,
		}
	}
}

// MarginX applies themed horizontal margin.
func MarginX(size theme.SpacingSize) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		v := th.Spacing.MarginValue(size)
		return style.Descriptor{"marginLeft": v, "marginRight": v}
	}
}

// MarginStart margins the reading-direction start edge.
func MarginStart(size theme.SpacingSize) StyleFunc {
	return func(th *theme.Theme) style.Descriptor {
		return style.Descriptor{"marginLeft": th.Spacing.MarginValue(size)}
	}
}

// Bold, Italic, Faint and Underline are attribute modifiers.
func Bold() StyleFunc {
	return func(*theme.Theme) style.Descriptor { return style.Descriptor{"bold": true} }
}

func Italic() StyleFunc {
	return func(*theme.Theme) style.Descriptor { return style.Descriptor{"italic": true} }
}

func Faint() StyleFunc {
	return func(*theme.Theme) style.Descriptor { return style.Descriptor{"faint": true} }
}

func Underline() StyleFunc {
	return func(*theme.Theme) style.Descriptor { return style.Descriptor{"underline": true} }
}

// AlignStart aligns text to the reading-direction start: left under
// LTR, flipped to right by the pipeline under RTL.
func AlignStart() StyleFunc {
	return func(*theme.Theme) style.Descriptor { return style.Descriptor{"textAlign": "left"} }
}

// AlignEnd aligns text to the reading-direction end.
func AlignEnd() StyleFunc {
	return func(*theme.Theme) style.Descriptor { return style.Descriptor{"textAlign": "right"} }
}

// Raw lifts a literal descriptor into a modifier.
func Raw(d style.Descriptor) StyleFunc {
	return func(*theme.Theme) style.Descriptor { return d }
}
