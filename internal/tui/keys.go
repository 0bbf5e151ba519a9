package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start   key.Binding
	Left    key.Binding
	Right   key.Binding
	Pick    key.Binding
	Choice  key.Binding
	Primary key.Binding
	Link    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("enter", " ", "s"), key.WithHelp("enter", "start")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Pick:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick")),
		Choice:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "pick")),
		Primary: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "button")),
		Link:    key.NewBinding(key.WithKeys("tab", "o"), key.WithHelp("tab", "link")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpKeys adapts the bindings of one screen to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
