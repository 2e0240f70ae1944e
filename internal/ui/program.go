package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sportui/internal/render"
)

// tickMsg drives the periodic step when no input arrives.
type tickMsg time.Time

// Ensure Program can be used as tea.Model.
var _ tea.Model = (*Program)(nil)

// Program adapts a Driver to Bubble Tea: messages become input events for a
// step, View runs the draw pass into a canvas sized to the terminal.
type Program struct {
	ctx      context.Context
	driver   *Driver
	canvas   *render.Canvas
	tickRate time.Duration
	focused  bool
	quitting bool
	last     string
}

// NewProgram wraps d. tickRate <= 0 disables the periodic tick.
func NewProgram(ctx context.Context, d *Driver, tickRate time.Duration) *Program {
	return &Program{
		ctx:      ctx,
		driver:   d,
		canvas:   render.NewCanvas(0, 0),
		tickRate: tickRate,
		focused:  true,
	}
}

// Quit makes the program exit after the current message.
func (p *Program) Quit() { p.quitting = true }

// Init implements tea.Model.
func (p *Program) Init() tea.Cmd {
	return p.tick()
}

// Update implements tea.Model.
func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tickMsg:
		p.driver.Step(p.ctx, nil)
		cmd = p.tick()
	case tea.WindowSizeMsg:
		p.canvas.Resize(msg.Width, msg.Height)
	case tea.FocusMsg:
		p.focused = true
	case tea.BlurMsg:
		p.focused = false
	}
	if events := InputEvents(msg); len(events) > 0 {
		p.driver.Step(p.ctx, events)
	}
	if p.quitting {
		return p, tea.Quit
	}
	return p, cmd
}

// View implements tea.Model. While the terminal window is unfocused the
// last frame is shown unchanged.
func (p *Program) View() string {
	if p.quitting {
		return ""
	}
	if p.focused {
		p.canvas.Clear(p.canvas.Size())
		p.driver.Draw(p.canvas)
		p.last = p.canvas.String()
	}
	return p.last
}

func (p *Program) tick() tea.Cmd {
	if p.tickRate <= 0 {
		return nil
	}
	return tea.Tick(p.tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}
