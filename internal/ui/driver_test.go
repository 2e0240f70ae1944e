package ui

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportui/internal/render"
)

// page is a non-modal layer that opens a modal popup on 'a'.
func newPage(d *Driver, rec *recorder) (*stubLayer, **stubLayer) {
	var popup *stubLayer
	page := newStub("page", rec, false)
	page.hook = func(l *stubLayer, ev Event) {
		if ke, ok := ev.(KeyEvent); ok && ke.Code == KeyChar && ke.Rune == 'a' {
			popup = newStub("popup", rec, false)
			popup.SetModal(true)
			popup.hook = func(p *stubLayer, ev Event) {
				if ke, ok := ev.(KeyEvent); ok && ke.Code == KeyEsc {
					p.RequestRemove()
					p.consume = true
				}
			}
			PushLayer(d.Bus(), popup)
		}
	}
	return page, &popup
}

func TestDriver_OpenAndClosePopup(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	d := NewDriver()
	page, popup := newPage(d, rec)
	d.AddLayer(page)

	res := d.Step(ctx, []Event{Char('a')})
	require.NotNil(t, *popup)
	assert.Equal(t, 1, res.Pushed)
	assert.Equal(t, []Layer{page, *popup}, d.Layers())
	assert.True(t, (*popup).Focused())
	assert.True(t, (*popup).Visible())

	rec.input = nil
	res = d.Step(ctx, []Event{Key(KeyEsc)})
	assert.Equal(t, 1, res.Consumed)
	assert.Equal(t, 1, res.Swept)
	assert.Equal(t, []string{"popup"}, rec.input, "page never sees the key")
	assert.Equal(t, []Layer{page}, d.Layers())
}

func TestDriver_PushesKeepEnqueueOrder(t *testing.T) {
	rec := &recorder{}
	d := NewDriver()
	base := newStub("base", rec, true)
	a, b := newStub("a", rec, false), newStub("b", rec, false)
	base.hook = func(*stubLayer, Event) {
		PushLayer(d.Bus(), a)
		PushLayer(d.Bus(), b)
	}
	d.AddLayer(base)

	res := d.Step(context.Background(), []Event{Char('x')})
	assert.Equal(t, 2, res.Pushed)
	assert.Equal(t, []Layer{base, a, b}, d.Layers())
	assert.Same(t, b, d.Top())
}

func TestDriver_PushedLayerSeesOnlyLaterEvents(t *testing.T) {
	rec := &recorder{}
	d := NewDriver()
	page, _ := newPage(d, rec)
	d.AddLayer(page)

	d.Step(context.Background(), []Event{Char('a'), Char('b')})
	assert.Equal(t, []string{"page", "page"}, rec.input)
}

func TestDriver_Fallback(t *testing.T) {
	rec := &recorder{}
	d := NewDriver()
	d.AddLayer(newStub("page", rec, false))
	var got []Event
	d.SetFallback(func(ev Event) bool {
		got = append(got, ev)
		return true
	})

	res := d.Step(context.Background(), []Event{Char('q')})
	assert.Equal(t, []Event{Char('q')}, got)
	assert.Equal(t, 1, res.Fallback)
	assert.Zero(t, res.Consumed)
}

func TestDriver_FocusEventIsBroadcast(t *testing.T) {
	rec := &recorder{}
	d := NewDriver()
	a, b := newStub("a", rec, false), newStub("b", rec, false)
	d.AddLayer(a)
	d.AddLayer(b)

	res := d.Step(context.Background(), []Event{FocusEvent{Gained: false}})
	assert.Equal(t, 1, res.Consumed)
	assert.Empty(t, rec.input)
	assert.False(t, a.Focused())
	assert.False(t, b.Focused())

	d.Step(context.Background(), []Event{FocusEvent{Gained: true}})
	assert.True(t, a.Focused())
}

func TestDriver_SubscribersAndDrops(t *testing.T) {
	var buf bytes.Buffer
	d := NewDriver(WithLogger(log.New(&buf, "", 0)))
	rec := &recorder{}
	page := newStub("page", rec, true)
	page.hook = func(*stubLayer, Event) {
		NotifySelection(d.Bus(), "menu", 1)
		Relay(d.Bus(), Char('z'))
	}
	d.AddLayer(page)

	res := d.Step(context.Background(), []Event{Char('x')})
	assert.Equal(t, 2, res.Dropped, "no subscribers yet")

	var seen []UIEvent
	d.Subscribe(func(e UIEvent) { seen = append(seen, e) })
	res = d.Step(context.Background(), []Event{Char('x')})
	assert.Equal(t, 1, res.Notified)
	assert.Equal(t, 1, res.Relayed)
	assert.Zero(t, res.Dropped)
	assert.Equal(t, []UIEvent{
		SelectionChangedEvent{Source: "menu", Index: 1},
		RelayEvent{Event: Char('z')},
	}, seen)
}

func TestDriver_AddLayerDuringStepIsDeferred(t *testing.T) {
	rec := &recorder{}
	d := NewDriver()
	late := newStub("late", rec, true)
	page := newStub("page", rec, false)
	page.hook = func(*stubLayer, Event) {
		d.AddLayer(late)
		assert.Len(t, d.Layers(), 1, "stack unchanged mid-pass")
	}
	d.AddLayer(page)

	d.Step(context.Background(), []Event{Char('x')})
	assert.Equal(t, []Layer{page, late}, d.Layers())
	assert.Zero(t, d.Pending())
}

func TestDriver_LogsPushes(t *testing.T) {
	var buf bytes.Buffer
	d := NewDriver(WithLogger(log.New(&buf, "", 0)), WithSessionID("s-1"))
	PushLayer(d.Bus(), newStub("a", &recorder{}, false))
	d.Step(context.Background(), nil)

	assert.Equal(t, "s-1", d.Session())
	assert.Contains(t, buf.String(), "ui: pushed *ui.stubLayer (modal=false), stack=1")
}

func TestDriver_TickDrawsBeforeInput(t *testing.T) {
	rec := &recorder{}
	d := NewDriver()
	page, popup := newPage(d, rec)
	d.AddLayer(page)

	canvas := render.NewCanvas(10, 2)
	d.Tick(context.Background(), canvas, []Event{Char('a')})
	require.NotNil(t, *popup)
	assert.Equal(t, []string{"page"}, rec.draw, "popup pushed after the draw")

	rec.draw = nil
	d.Tick(context.Background(), canvas, nil)
	assert.Equal(t, []string{"page", "popup"}, rec.draw)
	assert.Equal(t, "popup     ", canvas.Line(0))
}

func TestDriver_EmptyStepIsInert(t *testing.T) {
	d := NewDriver()
	assert.Equal(t, StepResult{}, d.Step(context.Background(), nil))
	assert.Nil(t, d.Top())
	assert.NotEmpty(t, d.Session())
}
