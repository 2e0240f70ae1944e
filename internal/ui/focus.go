package ui

// FocusManager moves focus around a fixed tab order of targets. Exactly one
// registered target is focused while the manager is active.
type FocusManager struct {
	Current  string   // ID of the focused target
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)

	targets map[string]FocusTarget
	blurred bool
}

// Register appends a target to the tab order. The first registered target
// becomes current.
func (f *FocusManager) Register(id string, t FocusTarget) {
	if f.targets == nil {
		f.targets = make(map[string]FocusTarget)
	}
	f.targets[id] = t
	f.Order = append(f.Order, id)
	if f.Current == "" {
		f.Current = id
	}
	f.apply()
}

// Target returns the target registered under id.
func (f *FocusManager) Target(id string) FocusTarget {
	return f.targets[id]
}

// Next advances focus to the next target in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous target in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	next := (idx + delta + len(f.Order)) % len(f.Order)
	f.move(f.Order[next])
	return f.Current
}

// SetFocus focuses the target with the given ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.move(id)
	return true
}

// Activate re-focuses the current target after Blur.
func (f *FocusManager) Activate() {
	f.blurred = false
	f.apply()
}

// Blur takes focus away from every target, keeping Current for Activate.
func (f *FocusManager) Blur() {
	f.blurred = true
	f.apply()
}

func (f *FocusManager) move(id string) {
	from := f.Current
	f.Current = id
	f.blurred = false
	f.apply()
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func (f *FocusManager) apply() {
	for id, t := range f.targets {
		t.SetFocus(!f.blurred && id == f.Current)
	}
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
