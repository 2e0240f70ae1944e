package widgets

import (
	"fmt"
	"log"
	"strings"

	"sportui/internal/render"
	"sportui/internal/ui"
)

// Tabs is a menu bar. Changing the current tab notifies the bus so the
// owner can switch pages after the input pass.
type Tabs struct {
	ui.EventBase
	Title   string
	Source  string // reported in ui.SelectionChangedEvent
	names   []string
	current int
	sender  ui.Sender
	theme   ui.TabsTheme
}

// NewTabs creates a tab bar with the first tab current.
func NewTabs(source string, names ...string) *Tabs {
	return &Tabs{
		Title:  "Menu",
		Source: source,
		names:  names,
		theme:  ui.DefaultTheme().Tabs,
	}
}

// SetSender sets where selection changes are reported.
func (t *Tabs) SetSender(s ui.Sender) { t.sender = s }

// Len returns the number of tabs.
func (t *Tabs) Len() int { return len(t.names) }

// Current returns the index of the current tab.
func (t *Tabs) Current() int { return t.current }

// Name returns the name of tab i, or "".
func (t *Tabs) Name(i int) string {
	if i < 0 || i >= len(t.names) {
		return ""
	}
	return t.names[i]
}

// SetCurrent makes tab i current. It reports false for an index out of range.
// Selecting the current tab again is a no-op.
func (t *Tabs) SetCurrent(i int) bool {
	if i < 0 || i >= len(t.names) {
		log.Printf("widgets: cannot select tab %d of %d", i, len(t.names))
		return false
	}
	if i != t.current {
		t.current = i
		ui.NotifySelection(t.sender, t.Source, i)
	}
	return true
}

// Next moves to the following tab, stopping at the last.
func (t *Tabs) Next() int {
	if t.current < len(t.names)-1 {
		t.SetCurrent(t.current + 1)
	}
	return t.current
}

// Prev moves to the preceding tab, stopping at the first.
func (t *Tabs) Prev() int {
	if t.current > 0 {
		t.SetCurrent(t.current - 1)
	}
	return t.current
}

// ApplyTheme implements ui.Themeable.
func (t *Tabs) ApplyTheme(th *ui.Theme) { t.theme = th.Tabs }

// Draw implements ui.Drawable.
func (t *Tabs) Draw(f ui.Frame, area render.Rect) {
	labels := make([]string, len(t.names))
	for i, name := range t.names {
		label := fmt.Sprintf("%s[%d]", name, i+1)
		if i == t.current {
			labels[i] = t.theme.Active.Render(label)
		} else {
			labels[i] = t.theme.Tab.Render(label)
		}
	}
	line := t.theme.Tab.Render(t.Title+": ") + strings.Join(labels, t.theme.Tab.Render(" | "))
	renderBox(f, area, t.theme.Box, line)
}

var _ ui.EventComponent = (*Tabs)(nil)
