package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Animate  key.Binding
	Rotate   key.Binding
	Less     key.Binding
	More     key.Binding
	Gravity  key.Binding
	Hide     key.Binding
	RoundCap key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Animate:  key.NewBinding(key.WithKeys(" ", "a"), key.WithHelp("space", "random")),
		Rotate:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
		Less:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "adjust")),
		More:     key.NewBinding(key.WithKeys("right", "l")),
		Gravity:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gravity")),
		Hide:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "indicator")),
		RoundCap: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cap")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Animate, k.Rotate, k.Less, k.Gravity, k.Hide, k.RoundCap, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
