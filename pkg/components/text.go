package components

import (
	"github.com/trellis-ui/trellis/pkg/style"
	"github.com/trellis-ui/trellis/pkg/theme"
)

// TextVariant selects a themed typography preset.
type TextVariant int

const (
	TextVariantBody TextVariant = iota
	TextVariantTitle
	TextVariantSubtitle
	TextVariantCode
	TextVariantEmphasis
	TextVariantFaint
)

// Text renders a styled run of text.
type Text struct {
	BaseComponent
	content string
	variant TextVariant
}

// NewText creates body text.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// TitleText creates title-styled text.
func TitleText(content string) *Text {
	return NewText(content).WithVariant(TextVariantTitle)
}

// SubtitleText creates subtitle-styled text.
func SubtitleText(content string) *Text {
	return NewText(content).WithVariant(TextVariantSubtitle)
}

// EmphasisText creates bold text.
func EmphasisText(content string) *Text {
	return NewText(content).WithVariant(TextVariantEmphasis)
}

// FaintText creates de-emphasized text.
func FaintText(content string) *Text {
	return NewText(content).WithVariant(TextVariantFaint)
}

// CodeText creates inline-code text.
func CodeText(content string) *Text {
	return NewText(content).WithVariant(TextVariantCode)
}

// WithVariant sets the typography variant.
func (t *Text) WithVariant(variant TextVariant) *Text {
	t.variant = variant
	return t
}

// WithAppliers adds style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Bold adds the bold attribute.
func (t *Text) Bold() *Text { return t.WithAppliers(Bold()) }

// Content returns the raw text.
func (t *Text) Content() string { return t.content }

// View renders with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text through the style pipeline.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx, t.variantDescriptor(ctx.Theme)).Render(t.content)
}

func (t *Text) variantDescriptor(th *theme.Theme) style.Descriptor {
	p := th.Palette
	switch t.variant {
	case TextVariantTitle:
		return style.Descriptor{"bold": true, "foreground": p.Primary.Base}
	case TextVariantSubtitle:
		return style.Descriptor{"faint": true, "foreground": p.Secondary.Muted}
	case TextVariantCode:
		return style.Descriptor{
			"foreground":   p.Secondary.Base,
			"background":   p.Surface.Muted,
			"paddingLeft":  1,
			"paddingRight": 1,
		}
	case TextVariantEmphasis:
		return style.Descriptor{"bold": true}
	case TextVariantFaint:
		return style.Descriptor{"faint": true}
	default:
		return style.Descriptor{"foreground": p.Surface.OnBase}
	}
}
