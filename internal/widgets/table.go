package widgets

import (
	"github.com/charmbracelet/bubbles/table"

	"sportui/internal/render"
	"sportui/internal/ui"
)

// Column describes one table column.
type Column = table.Column

// Table shows a list of values, one row each, with a selection that only
// moves (and is only reported) while the table is focused. Up and Down wrap
// around.
type Table[V any] struct {
	ui.EventBase
	columns  []Column
	row      func(V) []string
	values   []V
	selected int
	theme    ui.TableTheme
}

// NewTable creates an empty table. row renders a value into its cells.
func NewTable[V any](columns []Column, row func(V) []string) *Table[V] {
	t := &Table[V]{
		columns:  columns,
		row:      row,
		selected: -1,
		theme:    ui.DefaultTheme().Table,
	}
	t.Keys().Bind(ui.KeyDown, func() bool {
		t.Next()
		return true
	})
	t.Keys().Bind(ui.KeyUp, func() bool {
		t.Prev()
		return true
	})
	return t
}

// Len returns the number of rows.
func (t *Table[V]) Len() int { return len(t.values) }

// Values returns the rows.
func (t *Table[V]) Values() []V { return t.values }

// SetValues replaces the rows. The selection is kept when it still points at
// a row.
func (t *Table[V]) SetValues(values []V) {
	t.values = values
	if t.selected >= len(values) {
		t.selected = len(values) - 1
	}
}

// Clear drops all rows.
func (t *Table[V]) Clear() {
	t.values = nil
	t.selected = -1
}

// Select moves the selection to i if it is a valid row.
func (t *Table[V]) Select(i int) {
	if i >= 0 && i < len(t.values) {
		t.selected = i
	}
}

// Selected returns the selected row. There is none while unfocused.
func (t *Table[V]) Selected() (int, bool) {
	if !t.Focused() || t.selected < 0 {
		return 0, false
	}
	return t.selected, true
}

// Value returns the value of the selected row.
func (t *Table[V]) Value() (V, bool) {
	i, ok := t.Selected()
	if !ok {
		var zero V
		return zero, false
	}
	return t.values[i], true
}

// Next selects the following row, wrapping to the first.
func (t *Table[V]) Next() {
	if len(t.values) == 0 || !t.Focused() {
		return
	}
	i, ok := t.Selected()
	switch {
	case !ok:
		i = 0
	case i >= len(t.values)-1:
		i = 0
	default:
		i++
	}
	t.Select(i)
}

// Prev selects the preceding row, wrapping to the last.
func (t *Table[V]) Prev() {
	if len(t.values) == 0 || !t.Focused() {
		return
	}
	i, ok := t.Selected()
	switch {
	case !ok:
		i = 0
	case i == 0:
		i = len(t.values) - 1
	default:
		i--
	}
	t.Select(i)
}

// ApplyTheme implements ui.Themeable.
func (t *Table[V]) ApplyTheme(th *ui.Theme) { t.theme = th.Table }

// Draw implements ui.Drawable.
func (t *Table[V]) Draw(f ui.Frame, area render.Rect) {
	box := t.theme.Box
	w := innerWidth(box, area)
	h := area.H - box.GetVerticalFrameSize()
	if w <= 0 || h <= 0 {
		return
	}

	rows := make([]table.Row, len(t.values))
	for i, v := range t.values {
		rows[i] = t.row(v)
	}
	styles := table.DefaultStyles()
	styles.Header = t.theme.Header
	styles.Cell = t.theme.Cell
	styles.Selected = t.theme.Cell
	if _, ok := t.Selected(); ok {
		styles.Selected = t.theme.Highlight
	}

	m := table.New(
		table.WithColumns(t.columns),
		table.WithRows(rows),
		table.WithWidth(w),
		table.WithHeight(h),
		table.WithStyles(styles),
	)
	if i, ok := t.Selected(); ok {
		m.SetCursor(i)
	}
	renderBox(f, area, box, m.View())
}

var _ ui.EventComponent = (*Table[int])(nil)
