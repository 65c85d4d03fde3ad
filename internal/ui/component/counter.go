package component

import (
	"fmt"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/theme"
)

// Counter is an integer adjusted with j and k.
type Counter struct {
	focusState
	keys   CounterKeyMap
	value  int
	sender action.Sender
	target action.PageID
}

// NewCounter builds a counter at zero. Enter sends ChangePage(target).
func NewCounter(sender action.Sender, target action.PageID) *Counter {
	return &Counter{
		keys:   DefaultCounterKeyMap(),
		sender: sender,
		target: target,
	}
}

// Value returns the current count.
func (c *Counter) Value() int { return c.value }

// HandleAction implements Component.
func (c *Counter) HandleAction(a action.Action) action.Response {
	switch {
	case matches(a, c.keys.Increment):
		c.value++
	case matches(a, c.keys.Decrement):
		c.value--
	case matches(a, c.keys.Select):
		if c.sender != nil {
			c.sender.Send(action.ChangePage(c.target))
		}
	}
	return action.Handled
}

// Draw implements Component.
func (c *Counter) Draw(area layout.Rect) string {
	styles := theme.Default()
	body := styles.Info.Render("Press j or k to decrement or increment.") + "\n\n" +
		styles.Counter.Render(fmt.Sprintf("Counter: %d", c.value))
	return frame(borderFor(c.focused), "", centreLines(body, area.Width-2), area)
}
