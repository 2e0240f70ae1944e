package ui

import "github.com/charmbracelet/lipgloss"

// Palette holds the theme colors as lipgloss color strings.
type Palette struct {
	Accent    string // titles, highlights
	Highlight string // selected items, borders
	Danger    string // errors
	Warning   string // warnings
	Muted     string // dimmed text, hints
	Text      string // normal text
}

// DefaultPalette returns the built-in ANSI-256 palette.
func DefaultPalette() Palette {
	return Palette{
		Accent:    "86",
		Highlight: "205",
		Danger:    "196",
		Warning:   "208",
		Muted:     "241",
		Text:      "252",
	}
}

// TableTheme styles table widgets.
type TableTheme struct {
	Box       lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Highlight lipgloss.Style
}

// TextEditTheme styles text fields.
type TextEditTheme struct {
	Box        lipgloss.Style
	BoxFocused lipgloss.Style
	Title      lipgloss.Style
	TitleError lipgloss.Style
	Text       lipgloss.Style
}

// MessageBoxTheme styles message boxes per severity.
type MessageBoxTheme struct {
	Info  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
	Title lipgloss.Style
	Text  lipgloss.Style
	Help  lipgloss.Style
}

// TabsTheme styles the tab bar.
type TabsTheme struct {
	Box    lipgloss.Style
	Tab    lipgloss.Style
	Active lipgloss.Style
}

// FooterTheme styles the help bar.
type FooterTheme struct {
	Box  lipgloss.Style
	Key  lipgloss.Style
	Desc lipgloss.Style
}

// Theme is an immutable styling snapshot passed down through ApplyTheme.
// Components keep the parts they need; a new snapshot replaces the old one.
type Theme struct {
	Palette    Palette
	Table      TableTheme
	TextEdit   TextEditTheme
	MessageBox MessageBoxTheme
	Tabs       TabsTheme
	Footer     FooterTheme
}

// DefaultTheme returns the theme built from DefaultPalette.
func DefaultTheme() *Theme {
	return NewTheme(DefaultPalette())
}

// NewTheme derives every style from p.
func NewTheme(p Palette) *Theme {
	box := func(border string) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border))
	}
	return &Theme{
		Palette: p,
		Table: TableTheme{
			Box: box(p.Highlight),
			Header: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(p.Danger)),
			Cell: lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.Text)),
			Highlight: lipgloss.NewStyle().
				Reverse(true),
		},
		TextEdit: TextEditTheme{
			Box:        box(p.Muted),
			BoxFocused: box(p.Highlight),
			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(p.Accent)),
			TitleError: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(p.Danger)),
			Text: lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.Text)),
		},
		MessageBox: MessageBoxTheme{
			Info:  box(p.Text).Padding(0, 1),
			Warn:  box(p.Warning).Padding(0, 1),
			Error: box(p.Danger).Padding(0, 1),
			Title: lipgloss.NewStyle().
				Bold(true),
			Text: lipgloss.NewStyle(),
			Help: lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.Muted)),
		},
		Tabs: TabsTheme{
			Box: box(p.Accent),
			Tab: lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.Accent)),
			Active: lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(lipgloss.Color(p.Highlight)),
		},
		Footer: FooterTheme{
			Box: box(p.Muted),
			Key: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(p.Highlight)),
			Desc: lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.Muted)),
		},
	}
}
