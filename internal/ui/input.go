package ui

import tea "github.com/charmbracelet/bubbletea"

type keySpec struct {
	code KeyCode
	mod  Modifier
}

var teaKeys = map[tea.KeyType]keySpec{
	tea.KeyNull:       {KeyNull, 0},
	tea.KeyEnter:      {KeyEnter, 0},
	tea.KeyBackspace:  {KeyBackspace, 0},
	tea.KeyTab:        {KeyTab, 0},
	tea.KeyShiftTab:   {KeyBackTab, ModShift},
	tea.KeyEsc:        {KeyEsc, 0},
	tea.KeyUp:         {KeyUp, 0},
	tea.KeyDown:       {KeyDown, 0},
	tea.KeyLeft:       {KeyLeft, 0},
	tea.KeyRight:      {KeyRight, 0},
	tea.KeyHome:       {KeyHome, 0},
	tea.KeyEnd:        {KeyEnd, 0},
	tea.KeyPgUp:       {KeyPageUp, 0},
	tea.KeyPgDown:     {KeyPageDown, 0},
	tea.KeyDelete:     {KeyDelete, 0},
	tea.KeyInsert:     {KeyInsert, 0},
	tea.KeyShiftUp:    {KeyUp, ModShift},
	tea.KeyShiftDown:  {KeyDown, ModShift},
	tea.KeyShiftLeft:  {KeyLeft, ModShift},
	tea.KeyShiftRight: {KeyRight, ModShift},
	tea.KeyShiftHome:  {KeyHome, ModShift},
	tea.KeyShiftEnd:   {KeyEnd, ModShift},
	tea.KeyCtrlUp:     {KeyUp, ModCtrl},
	tea.KeyCtrlDown:   {KeyDown, ModCtrl},
	tea.KeyCtrlLeft:   {KeyLeft, ModCtrl},
	tea.KeyCtrlRight:  {KeyRight, ModCtrl},
	tea.KeyCtrlHome:   {KeyHome, ModCtrl},
	tea.KeyCtrlEnd:    {KeyEnd, ModCtrl},
	tea.KeyCtrlPgUp:   {KeyPageUp, ModCtrl},
	tea.KeyCtrlPgDown: {KeyPageDown, ModCtrl},
}

var teaFunctionKeys = [...]tea.KeyType{
	tea.KeyF1, tea.KeyF2, tea.KeyF3, tea.KeyF4, tea.KeyF5,
	tea.KeyF6, tea.KeyF7, tea.KeyF8, tea.KeyF9, tea.KeyF10,
	tea.KeyF11, tea.KeyF12, tea.KeyF13, tea.KeyF14, tea.KeyF15,
	tea.KeyF16, tea.KeyF17, tea.KeyF18, tea.KeyF19, tea.KeyF20,
}

// InputEvents classifies a Bubble Tea message. Messages that are not input
// yield nil. A non-paste key message carrying several runes becomes one
// character event per rune, in order.
func InputEvents(msg tea.Msg) []Event {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return keyEvents(msg)
	case tea.MouseMsg:
		return []Event{mouseEvent(msg)}
	case tea.WindowSizeMsg:
		return []Event{ResizeEvent{Width: msg.Width, Height: msg.Height}}
	case tea.FocusMsg:
		return []Event{FocusEvent{Gained: true}}
	case tea.BlurMsg:
		return []Event{FocusEvent{Gained: false}}
	}
	return nil
}

func keyEvents(msg tea.KeyMsg) []Event {
	var alt Modifier
	if msg.Alt {
		alt = ModAlt
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste {
			return []Event{PasteEvent{Text: string(msg.Runes)}}
		}
		out := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, KeyEvent{Code: KeyChar, Rune: r, Mod: alt})
		}
		return out
	case tea.KeySpace:
		return []Event{KeyEvent{Code: KeyChar, Rune: ' ', Mod: alt}}
	}
	if spec, ok := teaKeys[msg.Type]; ok {
		return []Event{KeyEvent{Code: spec.code, Mod: spec.mod | alt}}
	}
	for i, fk := range teaFunctionKeys {
		if msg.Type == fk {
			return []Event{KeyEvent{Code: KeyFunction, Fn: i + 1, Mod: alt}}
		}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return []Event{KeyEvent{Code: KeyChar, Rune: r, Mod: ModCtrl | alt}}
	}
	// remaining control codes (ctrl+\, ctrl+] ...) are modifier chords
	return []Event{KeyEvent{Code: KeyModifier, Mod: ModCtrl | alt}}
}

func mouseEvent(msg tea.MouseMsg) MouseEvent {
	ev := MouseEvent{X: msg.X, Y: msg.Y, Button: int(msg.Button)}
	switch msg.Action {
	case tea.MouseActionRelease:
		ev.Action = MouseRelease
	case tea.MouseActionMotion:
		ev.Action = MouseMotion
	default:
		ev.Action = MousePress
	}
	if msg.Shift {
		ev.Mod |= ModShift
	}
	if msg.Ctrl {
		ev.Mod |= ModCtrl
	}
	if msg.Alt {
		ev.Mod |= ModAlt
	}
	return ev
}
