package ui

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// options holds optional configuration for a Driver.
type options struct {
	logger    *log.Logger
	tracer    trace.Tracer
	sessionID string
}

// Option configures a Driver.
type Option func(*options)

// WithLogger sets the logger (default discards).
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracer sets the tracer used for per-step spans (default is the
// global otel tracer, a no-op unless a provider was installed).
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(o *options) { o.sessionID = id }
}

// StepResult summarises one input/drain/sweep step.
type StepResult struct {
	Events   int // input events offered
	Consumed int // events a layer consumed
	Fallback int // events handed to the fallback
	Pushed   int // layers pushed from the bus
	Notified int // selection events handed to subscribers
	Relayed  int // relayed terminal events handed to subscribers
	Dropped  int // bus events with no receiver
	Swept    int // layers removed
}

// Driver runs the per-tick cycle of a UI session: draw, input, drain, sweep.
// It is the only code that mutates the layer stack once the session runs.
type Driver struct {
	stack       LayerStack
	bus         *Bus
	fallback    func(Event) bool
	subscribers []func(UIEvent)
	stepping    bool

	logger  *log.Logger
	tracer  trace.Tracer
	session string
}

// NewDriver creates a driver with an empty stack and bus.
func NewDriver(opts ...Option) *Driver {
	cfg := options{
		logger: log.New(io.Discard, "", 0),
		tracer: otel.Tracer("sportui/ui"),
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.sessionID == "" {
		cfg.sessionID = uuid.NewString()
	}
	return &Driver{
		bus:     NewBus(),
		logger:  cfg.logger,
		tracer:  cfg.tracer,
		session: cfg.sessionID,
	}
}

// Session returns the session ID stamped on spans.
func (d *Driver) Session() string { return d.session }

// Bus returns the sender components use to schedule stack changes.
func (d *Driver) Bus() Sender { return d.bus }

// Pending returns the number of undrained bus events.
func (d *Driver) Pending() int { return d.bus.Len() }

// Layers returns the current stack bottom to top.
func (d *Driver) Layers() []Layer { return d.stack.Layers() }

// Top returns the topmost layer, or nil.
func (d *Driver) Top() Layer { return d.stack.Peek() }

// AddLayer pushes l directly. Called during a step (from a handler that
// captured the driver) it is deferred through the bus instead.
func (d *Driver) AddLayer(l Layer) {
	if d.stepping {
		PushLayer(d.bus, l)
		return
	}
	d.stack.Push(l)
}

// SetFallback sets the handler for input no layer consumed.
func (d *Driver) SetFallback(fn func(Event) bool) { d.fallback = fn }

// Subscribe registers fn for every drained bus event other than layer pushes.
func (d *Driver) Subscribe(fn func(UIEvent)) {
	d.subscribers = append(d.subscribers, fn)
}

// ApplyTheme passes t to every layer.
func (d *Driver) ApplyTheme(t *Theme) { d.stack.ApplyTheme(t) }

// BroadcastFocus sets window-level focus on every layer.
func (d *Driver) BroadcastFocus(focused bool) { d.stack.BroadcastFocus(focused) }

// Draw paints the stack over the whole frame. It does not change state.
func (d *Driver) Draw(f Frame) {
	d.stack.Draw(f, f.Size())
}

// Tick runs one full cycle: draw, then Step.
func (d *Driver) Tick(ctx context.Context, f Frame, events []Event) StepResult {
	d.Draw(f)
	return d.Step(ctx, events)
}

// Step runs the input, drain and sweep passes, in that order.
func (d *Driver) Step(ctx context.Context, events []Event) StepResult {
	_, span := d.tracer.Start(ctx, "ui.step",
		trace.WithAttributes(attribute.String("sportui.session", d.session)))
	defer span.End()

	var res StepResult
	d.stepping = true
	d.input(events, &res)
	d.stepping = false
	d.drain(&res)
	res.Swept = d.stack.Sweep()
	if res.Swept > 0 {
		d.logger.Printf("ui: swept %d layer(s), stack=%d", res.Swept, d.stack.Len())
	}

	span.SetAttributes(
		attribute.Int("sportui.events", res.Events),
		attribute.Int("sportui.consumed", res.Consumed),
		attribute.Int("sportui.fallback", res.Fallback),
		attribute.Int("sportui.pushed", res.Pushed),
		attribute.Int("sportui.notified", res.Notified),
		attribute.Int("sportui.relayed", res.Relayed),
		attribute.Int("sportui.dropped", res.Dropped),
		attribute.Int("sportui.swept", res.Swept),
		attribute.Int("sportui.layers", d.stack.Len()),
	)
	return res
}

func (d *Driver) input(events []Event, res *StepResult) {
	for _, ev := range events {
		res.Events++
		if fe, ok := ev.(FocusEvent); ok {
			d.stack.BroadcastFocus(fe.Gained)
			res.Consumed++
			continue
		}
		if d.stack.DeliverInput(ev) {
			res.Consumed++
			continue
		}
		if d.fallback != nil {
			res.Fallback++
			d.fallback(ev)
		}
	}
}

func (d *Driver) drain(res *StepResult) {
	for _, e := range d.bus.DrainAll() {
		switch e := e.(type) {
		case PushLayerEvent:
			if e.Layer == nil {
				res.Dropped++
				continue
			}
			d.stack.Push(e.Layer)
			res.Pushed++
			d.logger.Printf("ui: pushed %T (modal=%v), stack=%d", e.Layer, e.Layer.Modal(), d.stack.Len())
		case SelectionChangedEvent, RelayEvent:
			if len(d.subscribers) == 0 {
				res.Dropped++
				continue
			}
			for _, fn := range d.subscribers {
				fn(e)
			}
			if _, ok := e.(RelayEvent); ok {
				res.Relayed++
			} else {
				res.Notified++
			}
		default:
			res.Dropped++
			d.logger.Printf("ui: dropping unknown event %T", e)
		}
	}
}
