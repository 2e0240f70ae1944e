package sport

import (
	"fmt"
	"strconv"

	"sportui/internal/sport/store"
	"sportui/internal/ui"
	"sportui/internal/widgets"
)

var exerciseColumns = []widgets.Column{
	{Title: "#", Width: 4},
	{Title: "Name", Width: 30},
	{Title: "Description", Width: 40},
}

func exerciseRow(e store.Exercise) []string {
	return []string{strconv.FormatUint(e.ID, 10), e.Name, e.Description}
}

// ExercisesTable lists the exercises and opens the editor and delete
// confirmation popups for the selected row.
type ExercisesTable struct {
	*widgets.Table[store.Exercise]
	ctrl   *Controller
	sender ui.Sender
}

// NewExercisesTable creates the table and loads the current exercises.
func NewExercisesTable(ctrl *Controller, sender ui.Sender) *ExercisesTable {
	t := &ExercisesTable{
		Table:  widgets.NewTable(exerciseColumns, exerciseRow),
		ctrl:   ctrl,
		sender: sender,
	}
	t.Reload()
	ctrl.OnChange(t.Reload)

	keys := t.Keys()
	keys.BindRune('a', t.add, "add")
	keys.BindRune('d', t.remove, "delete")
	keys.BindRune('u', t.update, "update")
	// reload never consumes so outer handlers still see the key
	keys.BindRune('r', func() bool {
		t.Reload()
		return false
	}, "reload")
	return t
}

// Reload re-reads the exercises from the controller.
func (t *ExercisesTable) Reload() {
	t.SetValues(t.ctrl.Exercises())
}

func (t *ExercisesTable) add() bool {
	ui.PushLayer(t.sender, NewExerciseEditor(t.ctrl, t.sender))
	return true
}

func (t *ExercisesTable) update() bool {
	e, ok := t.Value()
	if !ok {
		return false
	}
	editor := NewExerciseEditor(t.ctrl, t.sender)
	editor.Load(e)
	ui.PushLayer(t.sender, editor)
	return true
}

func (t *ExercisesTable) remove() bool {
	e, ok := t.Value()
	if !ok {
		return false
	}
	ctrl, sender := t.ctrl, t.sender
	msg := fmt.Sprintf("Are you sure you want to delete the entry `%s`?", e.Name)
	confirm := widgets.Warn("Exercises", msg).OnAccept(func() {
		if err := ctrl.RemoveExercise(e.ID); err != nil {
			ui.PushLayer(sender, widgets.Error("Exercises", fmt.Sprintf("Can't remove exercise:\n%v", err)))
		}
	})
	ui.PushLayer(sender, confirm)
	return true
}
