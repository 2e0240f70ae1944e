package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFocusManager() (*FocusManager, map[string]*field) {
	fields := map[string]*field{}
	fm := &FocusManager{}
	for _, id := range []string{"name", "description", "notes"} {
		fields[id] = newField(id, nil)
		fm.Register(id, fields[id])
	}
	return fm, fields
}

func TestFocusManager_RegisterFocusesFirst(t *testing.T) {
	fm, fields := newFocusManager()
	assert.Equal(t, "name", fm.Current)
	assert.True(t, fields["name"].Focused())
	assert.False(t, fields["description"].Focused())
	assert.Same(t, fields["notes"], fm.Target("notes"))
}

func TestFocusManager_NextPrevWrap(t *testing.T) {
	fm, fields := newFocusManager()
	var changes [][2]string
	fm.OnChange = func(from, to string) { changes = append(changes, [2]string{from, to}) }

	assert.Equal(t, "description", fm.Next())
	assert.Equal(t, "notes", fm.Next())
	assert.Equal(t, "name", fm.Next())
	assert.Equal(t, "notes", fm.Prev())

	assert.True(t, fields["notes"].Focused())
	assert.False(t, fields["name"].Focused())
	assert.Len(t, changes, 4)
	assert.Equal(t, [2]string{"name", "notes"}, changes[3])
}

func TestFocusManager_SetFocus(t *testing.T) {
	fm, fields := newFocusManager()
	assert.True(t, fm.SetFocus("notes"))
	assert.False(t, fm.SetFocus("missing"))
	assert.Equal(t, "notes", fm.Current)
	assert.True(t, fields["notes"].Focused())
}

func TestFocusManager_BlurActivate(t *testing.T) {
	fm, fields := newFocusManager()
	fm.Next()
	fm.Blur()
	for id, f := range fields {
		assert.False(t, f.Focused(), id)
	}
	fm.Activate()
	assert.True(t, fields["description"].Focused())
}

func TestFocusManager_Empty(t *testing.T) {
	var fm FocusManager
	assert.Equal(t, "", fm.Next())
	assert.Equal(t, "", fm.Prev())
}
