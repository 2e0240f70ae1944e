package sport

import (
	"fmt"
	"strings"

	"sportui/internal/render"
	"sportui/internal/ui"
)

// Page is a screen selectable from the menu.
type Page interface {
	ui.EventComponent
	Title() string
	// Hints lists the page's own commands for the footer.
	Hints() []ui.Hint
}

// ExercisesPage shows the exercises table.
type ExercisesPage struct {
	*ui.Group
	table *ExercisesTable
}

// NewExercisesPage creates the page.
func NewExercisesPage(ctrl *Controller, sender ui.Sender) *ExercisesPage {
	table := NewExercisesTable(ctrl, sender)
	return &ExercisesPage{Group: ui.NewGroup(table), table: table}
}

// Title implements Page.
func (p *ExercisesPage) Title() string { return "Exercises" }

// Table returns the exercises table.
func (p *ExercisesPage) Table() *ExercisesTable { return p.table }

// Hints implements Page.
func (p *ExercisesPage) Hints() []ui.Hint {
	if !p.table.Focused() {
		return nil
	}
	return p.table.Keys().Hints()
}

// AccountPage shows the account holder.
type AccountPage struct {
	ui.EventBase
	ctrl  *Controller
	theme ui.TableTheme
}

// NewAccountPage creates the page.
func NewAccountPage(ctrl *Controller) *AccountPage {
	return &AccountPage{
		ctrl:  ctrl,
		theme: ui.DefaultTheme().Table,
	}
}

// Title implements Page.
func (p *AccountPage) Title() string { return "Account" }

// Hints implements Page.
func (p *AccountPage) Hints() []ui.Hint { return nil }

// ApplyTheme implements ui.Themeable.
func (p *AccountPage) ApplyTheme(th *ui.Theme) { p.theme = th.Table }

// Lines returns the text shown on the page.
func (p *AccountPage) Lines() []string {
	acc, err := p.ctrl.Account()
	if err != nil {
		return []string{fmt.Sprintf("No account with ID %d", p.ctrl.AccountID())}
	}
	lines := []string{
		"Name:   " + acc.FullName(),
		"Gender: " + acc.Gender,
		fmt.Sprintf("Height: %d cm", acc.Height),
	}
	if !acc.BirthDate.IsZero() {
		lines = append(lines, "Born:   "+acc.BirthDate.Format("2006-01-02"))
	}
	return lines
}

// Draw implements ui.Drawable.
func (p *AccountPage) Draw(f ui.Frame, area render.Rect) {
	box := p.theme.Box
	f.Render(area, box.
		Width(max(area.W-box.GetHorizontalBorderSize(), 0)).
		Height(max(area.H-box.GetVerticalBorderSize(), 0)).
		Render(p.theme.Header.Render("Account")+"\n"+strings.Join(p.Lines(), "\n")))
}

var (
	_ Page = (*ExercisesPage)(nil)
	_ Page = (*AccountPage)(nil)
)
