package page

import (
	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/logging/events"
	"github.com/atomicstack/gridpop/internal/ui/component"
)

// Chain is an ordered set of components with exactly one focus holder.
// Moving past either end is a no-op.
type Chain struct {
	components []component.Component
	focused    int
}

// NewChain focuses the first component.
func NewChain(components ...component.Component) *Chain {
	c := &Chain{components: components}
	if len(components) > 0 {
		components[0].Focus()
	}
	return c
}

// Len returns the number of components.
func (c *Chain) Len() int { return len(c.components) }

// Focused returns the index of the focus holder.
func (c *Chain) Focused() int { return c.focused }

// Current returns the focus holder, or nil for an empty chain.
func (c *Chain) Current() component.Component {
	if len(c.components) == 0 {
		return nil
	}
	return c.components[c.focused]
}

// Deliver routes a to the focus holder.
func (c *Chain) Deliver(a action.Action) action.Response {
	current := c.Current()
	if current == nil {
		return action.Handled
	}
	return current.HandleAction(a)
}

// FocusNext moves focus one step forward.
func (c *Chain) FocusNext() {
	if c.focused+1 >= len(c.components) {
		return
	}
	c.move(c.focused + 1)
}

// FocusPrev moves focus one step back.
func (c *Chain) FocusPrev() {
	if c.focused == 0 {
		return
	}
	c.move(c.focused - 1)
}

func (c *Chain) move(to int) {
	from := c.focused
	c.components[from].Unfocus()
	c.focused = to
	c.components[to].Focus()
	events.Focus.Move(from, to)
}
