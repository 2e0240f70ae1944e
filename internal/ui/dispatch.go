package ui

// Hint is a bound key with a human readable description, for help bars.
type Hint struct {
	Key  string
	Desc string
}

// Dispatcher maps classified input events to the callbacks a component
// registered. Every case that has no callback reports "not consumed".
//
// Key names in hints use the same notation as KeyEvent.String: "esc",
// "enter", "a", "ctrl+s".
type Dispatcher struct {
	keys   map[KeyCode]func() bool
	runes  map[rune]func() bool
	chords map[string]func() bool
	char   func(r rune) bool
	paste  func(text string) bool
	resize func(width, height int) bool
	focus  func(gained bool) bool
	hints  []Hint
}

// NewDispatcher creates a dispatcher with nothing bound.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		keys:   make(map[KeyCode]func() bool),
		runes:  make(map[rune]func() bool),
		chords: make(map[string]func() bool),
	}
}

// Bind registers fn for a non-character key, replacing any earlier binding.
// Function, media and modifier keys are never dispatched, so binding them has
// no effect.
func (d *Dispatcher) Bind(code KeyCode, fn func() bool) {
	d.BindWithDesc(code, fn, "")
}

// BindWithDesc is Bind with a description for the help bar.
func (d *Dispatcher) BindWithDesc(code KeyCode, fn func() bool, desc string) {
	d.keys[code] = fn
	d.addHint(code.String(), desc)
}

// BindRune registers a single-character shortcut. Shortcuts are consulted
// before the generic character callback and their result is final.
func (d *Dispatcher) BindRune(r rune, fn func() bool, desc string) {
	d.runes[r] = fn
	d.addHint(Char(r).String(), desc)
}

// BindChord registers a ctrl/alt combination by name, e.g. "ctrl+s".
func (d *Dispatcher) BindChord(name string, fn func() bool, desc string) {
	d.chords[name] = fn
	d.addHint(name, desc)
}

// BindChar registers the callback for plain character input.
func (d *Dispatcher) BindChar(fn func(r rune) bool) { d.char = fn }

// BindPaste registers the callback for pasted text.
func (d *Dispatcher) BindPaste(fn func(text string) bool) { d.paste = fn }

// BindResize registers the callback for terminal resizes.
func (d *Dispatcher) BindResize(fn func(width, height int) bool) { d.resize = fn }

// BindFocus registers the callback for window focus changes.
func (d *Dispatcher) BindFocus(fn func(gained bool) bool) { d.focus = fn }

// Bound reports whether code has a callback.
func (d *Dispatcher) Bound(code KeyCode) bool {
	if d == nil {
		return false
	}
	return d.keys[code] != nil
}

// Hints returns the described bindings in registration order.
func (d *Dispatcher) Hints() []Hint {
	if d == nil {
		return nil
	}
	out := make([]Hint, len(d.hints))
	copy(out, d.hints)
	return out
}

func (d *Dispatcher) addHint(key, desc string) {
	for i, h := range d.hints {
		if h.Key == key {
			if desc == "" {
				d.hints = append(d.hints[:i], d.hints[i+1:]...)
			} else {
				d.hints[i].Desc = desc
			}
			return
		}
	}
	if desc != "" {
		d.hints = append(d.hints, Hint{Key: key, Desc: desc})
	}
}

// Dispatch routes ev to exactly one callback and returns its result, or
// false when the case is unbound or not routed at all.
func (d *Dispatcher) Dispatch(ev Event) bool {
	if d == nil {
		return false
	}
	switch ev := ev.(type) {
	case KeyEvent:
		return d.dispatchKey(ev)
	case PasteEvent:
		if d.paste != nil {
			return d.paste(ev.Text)
		}
	case ResizeEvent:
		if d.resize != nil {
			return d.resize(ev.Width, ev.Height)
		}
	case FocusEvent:
		if d.focus != nil {
			return d.focus(ev.Gained)
		}
	case MouseEvent:
		// pointer input is classified but not routed to components yet
		return false
	}
	return false
}

func (d *Dispatcher) dispatchKey(ev KeyEvent) bool {
	switch ev.Code {
	case KeyChar:
		if ev.Mod.Has(ModCtrl) || ev.Mod.Has(ModAlt) {
			if fn := d.chords[ev.String()]; fn != nil {
				return fn()
			}
			return false
		}
		if fn := d.runes[ev.Rune]; fn != nil {
			return fn()
		}
		if d.char != nil {
			return d.char(ev.Rune)
		}
		return false
	case KeyBackspace, KeyEnter, KeyTab, KeyBackTab, KeyEsc,
		KeyLeft, KeyRight, KeyUp, KeyDown, KeyHome, KeyEnd, KeyPageUp, KeyPageDown,
		KeyDelete, KeyInsert, KeyNull,
		KeyCapsLock, KeyScrollLock, KeyNumLock,
		KeyPrintScreen, KeyPause, KeyMenu, KeyKeypadBegin:
		if fn := d.keys[ev.Code]; fn != nil {
			return fn()
		}
		return false
	case KeyFunction, KeyMedia, KeyModifier:
		return false
	}
	return false
}
