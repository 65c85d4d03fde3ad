package page

import (
	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/backend"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/ui/component"
	"github.com/atomicstack/gridpop/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Details stacks a row table over a free-form input. ctrl+j and ctrl+k move
// focus between them.
type Details struct {
	chain  *Chain
	table  *component.Table
	input  *component.Input
	sender action.Sender
	keys   DetailsKeyMap
	help   help.Model
}

// NewDetails builds the details page listing items.
func NewDetails(items []state.Item, sender action.Sender) *Details {
	table := component.NewTable("Rows", items, sender, action.PageCounter)
	input := component.NewInput(component.WithTitle("Notes"))
	return &Details{
		chain:  NewChain(table, input),
		table:  table,
		input:  input,
		sender: sender,
		keys:   defaultDetailsKeyMap(),
		help:   help.New(),
	}
}

func (d *Details) ID() action.PageID { return action.PageDetails }

// Table exposes the row list.
func (d *Details) Table() *component.Table { return d.table }

// Input exposes the notes editor.
func (d *Details) Input() *component.Input { return d.input }

// Focused returns the index of the focused region.
func (d *Details) Focused() int { return d.chain.Focused() }

func (d *Details) GetAction(evt backend.Event) action.Action { return Translate(evt) }

func (d *Details) HandleAction(a action.Action) {
	if d.chain.Deliver(a) == action.Ignored {
		return
	}
	switch {
	case matches(a, d.keys.Quit):
		d.sender.Send(action.Quit())
	case matches(a, d.keys.FocusNext):
		d.FocusNext()
	case matches(a, d.keys.FocusPrev):
		d.FocusPrev()
	case matches(a, d.keys.Home):
		d.sender.Send(action.ChangePage(action.PageHome))
	}
}

func (d *Details) FocusNext() { d.chain.FocusNext() }
func (d *Details) FocusPrev() { d.chain.FocusPrev() }

func (d *Details) Draw(area layout.Rect) string {
	parts := layout.Split(area, layout.Vertical, layout.Percentage(50), layout.Min(3), layout.Length(1))
	d.help.Width = area.Width
	bindings := []key.Binding{d.keys.FocusNext, d.keys.FocusPrev, d.keys.Home, d.keys.Quit}
	return joinRegions(
		d.table.Draw(parts[0]),
		d.input.Draw(parts[1]),
		layout.Fit(d.help.ShortHelpView(bindings), parts[2].Width, parts[2].Height),
	)
}
