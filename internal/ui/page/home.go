package page

import (
	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/backend"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/ui/component"
	"github.com/charmbracelet/bubbles/help"
)

// Home shows the grid editor above a key help line.
type Home struct {
	chain  *Chain
	grid   *component.Grid
	sender action.Sender
	keys   HomeKeyMap
	help   help.Model
}

// NewHome builds the grid page over rows.
func NewHome(rows [][]string, persister component.Persister, sender action.Sender) *Home {
	grid := component.NewGrid(rows, persister)
	return &Home{
		chain:  NewChain(grid),
		grid:   grid,
		sender: sender,
		keys:   defaultHomeKeyMap(),
		help:   help.New(),
	}
}

func (h *Home) ID() action.PageID { return action.PageHome }

// Grid exposes the editor.
func (h *Home) Grid() *component.Grid { return h.grid }

func (h *Home) GetAction(evt backend.Event) action.Action { return Translate(evt) }

// HandleAction delivers a to the grid and interprets quit and page keys only
// when the grid left them unconsumed.
func (h *Home) HandleAction(a action.Action) {
	if h.chain.Deliver(a) == action.Ignored {
		return
	}
	switch {
	case matches(a, h.keys.Quit):
		h.sender.Send(action.Quit())
	case matches(a, h.keys.Details):
		h.sender.Send(action.ChangePage(action.PageDetails))
	}
}

func (h *Home) FocusNext() { h.chain.FocusNext() }
func (h *Home) FocusPrev() { h.chain.FocusPrev() }

func (h *Home) Draw(area layout.Rect) string {
	parts := layout.Split(area, layout.Vertical, layout.Min(3), layout.Length(1))
	h.help.Width = area.Width
	bindings := append(h.grid.Keys().ShortHelp(), h.keys.Details, h.keys.Quit)
	return joinRegions(
		h.grid.Draw(parts[0]),
		layout.Fit(h.help.ShortHelpView(bindings), parts[1].Width, parts[1].Height),
	)
}

var _ help.KeyMap = component.GridKeyMap{}
