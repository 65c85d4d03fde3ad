package page

import (
	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/backend"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/ui/component"
)

// Counter hosts a single counter; enter on it returns to the grid.
type Counter struct {
	chain   *Chain
	counter *component.Counter
	sender  action.Sender
	keys    CounterKeyMap
}

// NewCounter builds the counter page.
func NewCounter(sender action.Sender) *Counter {
	counter := component.NewCounter(sender, action.PageHome)
	return &Counter{
		chain:   NewChain(counter),
		counter: counter,
		sender:  sender,
		keys:    defaultCounterKeyMap(),
	}
}

func (c *Counter) ID() action.PageID { return action.PageCounter }

// Counter exposes the leaf.
func (c *Counter) Counter() *component.Counter { return c.counter }

func (c *Counter) GetAction(evt backend.Event) action.Action { return Translate(evt) }

func (c *Counter) HandleAction(a action.Action) {
	if c.chain.Deliver(a) == action.Ignored {
		return
	}
	if matches(a, c.keys.Quit) {
		c.sender.Send(action.Quit())
	}
}

func (c *Counter) FocusNext() { c.chain.FocusNext() }
func (c *Counter) FocusPrev() { c.chain.FocusPrev() }

func (c *Counter) Draw(area layout.Rect) string {
	return c.counter.Draw(area)
}
