package page

import "github.com/charmbracelet/bubbles/key"

// HomeKeyMap lists page-level bindings of the grid page.
type HomeKeyMap struct {
	Quit    key.Binding
	Details key.Binding
}

func defaultHomeKeyMap() HomeKeyMap {
	return HomeKeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Details: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "details")),
	}
}

// DetailsKeyMap lists page-level bindings of the details page.
type DetailsKeyMap struct {
	Quit      key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Home      key.Binding
}

func defaultDetailsKeyMap() DetailsKeyMap {
	return DetailsKeyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		FocusNext: key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "next pane")),
		FocusPrev: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "prev pane")),
		Home:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "grid")),
	}
}

// CounterKeyMap lists page-level bindings of the counter page.
type CounterKeyMap struct {
	Quit key.Binding
}

func defaultCounterKeyMap() CounterKeyMap {
	return CounterKeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}
