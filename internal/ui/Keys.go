package ui

import (
	"github.com/Mshel/arcade/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Mode  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
	Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
	Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
	Mode:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "switch controls")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "leave game")),
}

// headingFor maps arrow keys and WASD to a heading.
func headingFor(msg tea.KeyMsg) (game.Heading, bool) {
	switch {
	case key.Matches(msg, keys.Up):
		return game.Up, true
	case key.Matches(msg, keys.Down):
		return game.Down, true
	case key.Matches(msg, keys.Left):
		return game.Left, true
	case key.Matches(msg, keys.Right):
		return game.Right, true
	}
	return game.Up, false
}

func helpLine(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
