package components

// Icon names a glyph from the built-in set.
type Icon string

const (
	IconCheck   Icon = "check"
	IconCross   Icon = "cross"
	IconArrow   Icon = "arrow"
	IconBullet  Icon = "bullet"
	IconWarning Icon = "warning"
	IconInfo    Icon = "info"
	IconGear    Icon = "gear"
	IconStar    Icon = "star"
	IconSearch  Icon = "search"
)

// glyphs maps icons to their LTR and RTL renderings. Most glyphs are
// direction-neutral; directional ones carry a mirrored form.
var glyphs = map[Icon][2]string{
	IconCheck:   {"✓", "✓"},
	IconCross:   {"✗", "✗"},
	IconArrow:   {"→", "←"},
	IconBullet:  {"•", "•"},
	IconWarning: {"⚠", "⚠"},
	IconInfo:    {"ℹ", "ℹ"},
	IconGear:    {"⚙", "⚙"},
	IconStar:    {"★", "★"},
	IconSearch:  {"🔍", "🔍"},
}

// Glyph returns the icon's rendering for the context direction. Unknown
// icons render as a bullet.
func Glyph(icon Icon, ctx RenderContext) string {
	pair, ok := glyphs[icon]
	if !ok {
		pair = glyphs[IconBullet]
	}
	if ctx.RTL() {
		return pair[1]
	}
	return pair[0]
}
