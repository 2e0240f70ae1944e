package sport

import (
	"fmt"

	"sportui/internal/render"
	"sportui/internal/sport/store"
	"sportui/internal/ui"
	"sportui/internal/widgets"
)

const (
	fieldName        = "name"
	fieldDescription = "description"
	maxNameLength    = 100
)

// ExerciseEditor is the modal popup for adding or changing an exercise.
// The focused field gets input first; once it gives up focus (Esc or
// Enter) the editor's own keys apply: accept saves, reject or the quit key
// closes, Tab and Shift+Tab move between fields.
type ExerciseEditor struct {
	ui.BaseLayer
	ctrl        *Controller
	sender      ui.Sender
	id          store.ID
	insert      bool
	name        *widgets.TextEdit
	description *widgets.TextEdit
	fields      ui.FocusManager
	theme       ui.MessageBoxTheme
}

// NewExerciseEditor creates an editor for a new exercise.
func NewExerciseEditor(ctrl *Controller, sender ui.Sender) *ExerciseEditor {
	e := &ExerciseEditor{
		ctrl:        ctrl,
		sender:      sender,
		insert:      true,
		name:        widgets.NewTextEdit("Name:", "", widgets.StrValidator{Min: 0, Max: maxNameLength}),
		description: widgets.NewTextEdit("Description:", "", widgets.DefaultStrValidator()),
		theme:       ui.DefaultTheme().MessageBox,
	}
	e.SetModal(true)
	e.fields.Register(fieldName, e.name)
	e.fields.Register(fieldDescription, e.description)
	e.SetFocus(true)

	km := ctrl.KeyMap()
	keys := e.Keys()
	bindNamed(keys, km.Accept, e.save, "save")
	bindNamed(keys, km.Reject, e.close, "close")
	keys.BindWithDesc(ui.KeyTab, e.nextField, "next field")
	keys.BindWithDesc(ui.KeyBackTab, e.prevField, "previous field")
	keys.BindChar(func(r rune) bool {
		if isRune(km.Quit, r) {
			e.close()
		}
		return true
	})
	return e
}

// Load fills the fields from an existing exercise; saving updates it.
func (e *ExerciseEditor) Load(ex store.Exercise) {
	e.insert = false
	e.id = ex.ID
	e.name.SetText(ex.Name)
	e.description.SetText(ex.Description)
}

// Exercise returns the exercise described by the fields.
func (e *ExerciseEditor) Exercise() store.Exercise {
	return store.Exercise{ID: e.id, Name: e.name.Text(), Description: e.description.Text()}
}

// Field returns the text field registered under id.
func (e *ExerciseEditor) Field(id string) *widgets.TextEdit {
	t, _ := e.fields.Target(id).(*widgets.TextEdit)
	return t
}

// CurrentField returns the ID of the field that has or last had focus.
func (e *ExerciseEditor) CurrentField() string { return e.fields.Current }

// SetFocus implements ui.FocusTarget. Gaining focus puts the cursor in the
// name field.
func (e *ExerciseEditor) SetFocus(focused bool) {
	e.BaseLayer.SetFocus(focused)
	if focused {
		e.fields.SetFocus(fieldName)
		return
	}
	e.fields.Blur()
}

// HandleInput implements ui.EventComponent.
func (e *ExerciseEditor) HandleInput(ev ui.Event) bool {
	if !ui.Admitted(e) {
		return false
	}
	if f := e.Field(e.fields.Current); f != nil && ui.Admitted(f) && f.HandleInput(ev) {
		return true
	}
	return e.Keys().Dispatch(ev)
}

// ApplyTheme implements ui.Themeable.
func (e *ExerciseEditor) ApplyTheme(th *ui.Theme) {
	e.theme = th.MessageBox
	e.name.ApplyTheme(th)
	e.description.ApplyTheme(th)
}

func (e *ExerciseEditor) nextField() bool {
	e.fields.Next()
	return true
}

func (e *ExerciseEditor) prevField() bool {
	e.fields.Prev()
	return true
}

func (e *ExerciseEditor) close() bool {
	e.SetVisible(false)
	e.RequestRemove()
	return true
}

func (e *ExerciseEditor) save() bool {
	if !e.name.Valid() || !e.description.Valid() {
		return false
	}
	var err error
	if e.insert {
		_, err = e.ctrl.InsertExercise(e.Exercise())
	} else {
		err = e.ctrl.UpdateExercise(e.Exercise())
	}
	if err != nil {
		ui.PushLayer(e.sender, widgets.Error("Exercises", fmt.Sprintf("Can't save exercise:\n%v", err)))
		return false
	}
	return e.close()
}

// Draw implements ui.Drawable.
func (e *ExerciseEditor) Draw(f ui.Frame, area render.Rect) {
	area = area.Centered(50, 50)
	if area.Empty() {
		return
	}
	f.Clear(area)
	box := e.theme.Info
	f.Render(area, box.
		Width(max(area.W-box.GetHorizontalBorderSize(), 0)).
		Height(max(area.H-box.GetVerticalBorderSize(), 0)).
		Render(e.theme.Title.Render("Exercise")))

	inner := area.Inset(1)
	rows := inner.SplitRows(1, 3, 0, 1)
	e.name.Draw(f, rows[1])
	e.description.Draw(f, rows[2])

	km := e.ctrl.KeyMap()
	help := fmt.Sprintf("%s: save  %s/%s: close  tab: next field", km.Accept, km.Reject, km.Quit)
	f.Render(rows[3], e.theme.Help.Render(render.Truncate(help, rows[3].W)))
}

var _ ui.Layer = (*ExerciseEditor)(nil)
