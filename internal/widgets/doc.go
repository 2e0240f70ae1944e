// Package widgets holds the leaf components drawn inside layers: labels,
// validated text fields, tables, tab bars, message boxes and the help footer.
//
// Every widget embeds ui.EventBase or ui.Base, so it only reacts to input
// while focused and visible, and keeps the styles from the last theme it was
// given through ApplyTheme.
package widgets
