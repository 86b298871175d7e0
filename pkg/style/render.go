package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Apply maps a prepared descriptor onto a lipgloss style, the terminal
// rendering target. Keys without a terminal equivalent (vendor-prefixed
// variants, transform, float) are ignored, as is the flip marker.
func Apply(base lipgloss.Style, d Descriptor) lipgloss.Style {
	for key, value := range d {
		switch key {
		case "foreground":
			if c, ok := asColor(value); ok {
				base = base.Foreground(c)
			}
		case "background":
			if c, ok := asColor(value); ok {
				base = base.Background(c)
			}
		case "borderForeground":
			if c, ok := asColor(value); ok {
				base = base.BorderForeground(c)
			}
		case "border":
			if b, ok := value.(lipgloss.Border); ok {
				base = base.Border(b)
			}
		case "bold":
			base = base.Bold(asBool(value))
		case "italic":
			base = base.Italic(asBool(value))
		case "underline":
			base = base.Underline(asBool(value))
		case "faint":
			base = base.Faint(asBool(value))
		case "strikethrough":
			base = base.Strikethrough(asBool(value))
		case "reverse":
			base = base.Reverse(asBool(value))
		case "paddingLeft":
			if n, ok := asInt(value); ok {
				base = base.PaddingLeft(n)
			}
		case "paddingRight":
			if n, ok := asInt(value); ok {
				base = base.PaddingRight(n)
			}
		case "paddingTop":
			if n, ok := asInt(value); ok {
				base = base.PaddingTop(n)
			}
		case "paddingBottom":
			if n, ok := asInt(value); ok {
				base = base.PaddingBottom(n)
			}
		case "marginLeft":
			if n, ok := asInt(value); ok {
				base = base.MarginLeft(n)
			}
		case "marginRight":
			if n, ok := asInt(value); ok {
				base = base.MarginRight(n)
			}
		case "marginTop":
			if n, ok := asInt(value); ok {
				base = base.MarginTop(n)
			}
		case "marginBottom":
			if n, ok := asInt(value); ok {
				base = base.MarginBottom(n)
			}
		case "width":
			if n, ok := asInt(value); ok {
				base = base.Width(n)
			}
		case "height":
			if n, ok := asInt(value); ok {
				base = base.Height(n)
			}
		case "textAlign":
			switch value {
			case "left":
				base = base.Align(lipgloss.Left)
			case "center":
				base = base.Align(lipgloss.Center)
			case "right":
				base = base.Align(lipgloss.Right)
			}
		}
	}
	return base
}

// NewStyle builds a lipgloss style from scratch for the descriptor.
func NewStyle(d Descriptor) lipgloss.Style {
	return Apply(lipgloss.NewStyle(), d)
}

func asColor(value any) (lipgloss.TerminalColor, bool) {
	switch v := value.(type) {
	case lipgloss.TerminalColor:
		return v, true
	case string:
		return lipgloss.Color(v), true
	default:
		return nil, false
	}
}

func asBool(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	default:
		return 0, false
	}
}
