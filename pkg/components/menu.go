package components

import (
	"strings"

	"github.com/trellis-ui/trellis/pkg/style"
)

// MenuItem is a single selectable entry.
type MenuItem struct {
	Label    string
	Icon     string
	Disabled bool
}

// Menu renders a vertical list of items with a movable cursor.
// Disabled items render de-emphasized and the cursor skips them.
type Menu struct {
	BaseComponent
	items  []MenuItem
	cursor int
}

// NewMenu creates a menu over the given items with the cursor on the
// first enabled item.
func NewMenu(items ...MenuItem) *Menu {
	m := &Menu{BaseComponent: NewBaseComponent(), items: items}
	if len(items) > 0 && items[0].Disabled {
		m.CursorDown()
	}
	return m
}

// WithAppliers adds style modifiers applied to every row.
func (m *Menu) WithAppliers(appliers ...StyleFunc) *Menu {
	m.AddAppliers(appliers...)
	return m
}

// Cursor returns the selected index, or -1 for an empty menu.
func (m *Menu) Cursor() int {
	if len(m.items) == 0 {
		return -1
	}
	return m.cursor
}

// Selected returns the item under the cursor.
func (m *Menu) Selected() (MenuItem, bool) {
	if len(m.items) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// CursorDown moves to the next enabled item, stopping at the end.
func (m *Menu) CursorDown() {
	for i := m.cursor + 1; i < len(m.items); i++ {
		if !m.items[i].Disabled {
			m.cursor = i
			return
		}
	}
}

// CursorUp moves to the previous enabled item, stopping at the start.
func (m *Menu) CursorUp() {
	for i := m.cursor - 1; i >= 0; i-- {
		if !m.items[i].Disabled {
			m.cursor = i
			return
		}
	}
}

// View renders with the default context.
func (m *Menu) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the menu. The cursor pointer sits at the
// reading-direction start of the selected row; under RTL the pipeline
// mirrors row padding and the pointer glyph points the other way.
func (m *Menu) ViewWithContext(ctx RenderContext) string {
	p := ctx.Theme.Palette

	pointer := "▸"
	if ctx.RTL() {
		pointer = "◂"
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		base := style.Descriptor{"paddingLeft": 2, "foreground": p.Surface.OnBase}

		selected := i == m.cursor && !item.Disabled
		if selected {
			base["foreground"] = p.Primary.Base
			base["bold"] = true
			base["paddingLeft"] = 0
		}
		if item.Disabled {
			base["faint"] = true
		}

		label := item.Label
		if item.Icon != "" {
			if ctx.RTL() {
				label = label + " " + item.Icon
			} else {
				label = item.Icon + " " + label
			}
		}
		if selected {
			if ctx.RTL() {
				label = label + " " + pointer
			} else {
				label = pointer + " " + label
			}
		}

		rows = append(rows, m.ComputeStyle(ctx, base).Render(label))
	}

	return strings.Join(rows, "\n")
}
