package components

import (
	"github.com/trellis-ui/trellis/pkg/style"
	"github.com/trellis-ui/trellis/pkg/theme"
)

// BadgeVariant specifies the semantic colour of a badge.
type BadgeVariant int

const (
	BadgeVariantNeutral BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantDanger
	BadgeVariantInfo
)

// Badge is a small inline status indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a neutral badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// SuccessBadge, WarningBadge, ErrorBadge and InfoBadge are the common
// status shorthands.
func SuccessBadge(text string) *Badge { return NewBadge(text).WithVariant(BadgeVariantSuccess) }
func WarningBadge(text string) *Badge { return NewBadge(text).WithVariant(BadgeVariantWarning) }
func ErrorBadge(text string) *Badge   { return NewBadge(text).WithVariant(BadgeVariantDanger) }
func InfoBadge(text string) *Badge    { return NewBadge(text).WithVariant(BadgeVariantInfo) }

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers adds style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// View renders with the default context.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	set := b.colourSet(ctx.Theme.Palette)

	base := style.Descriptor{
		"background":   set.Base,
		"foreground":   set.OnBase,
		"paddingLeft":  1,
		"paddingRight": 1,
	}
	return b.ComputeStyle(ctx, base).Render(b.text)
}

func (b *Badge) colourSet(p theme.Palette) theme.ColourSet {
	switch b.variant {
	case BadgeVariantPrimary:
		return p.Primary
	case BadgeVariantSuccess:
		return p.Success
	case BadgeVariantWarning:
		return p.Warning
	case BadgeVariantDanger:
		return p.Danger
	case BadgeVariantInfo:
		return p.Info
	default:
		return p.Neutral
	}
}
