package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

const sgrReset = "\x1b[0m"

// Width returns the number of terminal columns s occupies, ignoring escape
// sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending it with Ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= runewidth.StringWidth(Ellipsis) {
		return Ellipsis
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads s with spaces to exactly width columns, cutting it when it is
// wider.
func PadRight(s string, width int) string {
	w := Width(s)
	switch {
	case w == width:
		return s
	case w > width:
		return ansi.Cut(s, 0, width)
	}
	return s + strings.Repeat(" ", width-w)
}

func cutRange(s string, left, right int) string {
	if right <= left {
		return ""
	}
	return ansi.Cut(s, left, right)
}

func cutFrom(s string, left int) string {
	return cutRange(s, left, Width(s))
}

// resetIfStyled closes any SGR state a painted segment leaves open so it does
// not bleed into the cells to its right.
func resetIfStyled(seg string) string {
	if strings.Contains(seg, "\x1b[") {
		return sgrReset
	}
	return ""
}
