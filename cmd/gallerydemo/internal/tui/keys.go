package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Toggle    key.Binding
	SwipeDown key.Binding
	SwipeUp   key.Binding
	Release   key.Binding
	More      key.Binding
	Detail    key.Binding
	Share     key.Binding
	Rotate    key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "chrome")),
		SwipeDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "drag")),
		SwipeUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "drag back")),
		Release:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "release")),
		More:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "more")),
		Detail:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "detail")),
		Share:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Rotate:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
		Close:     key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.SwipeDown, k.Release, k.More, k.Detail, k.Share, k.Rotate, k.Close}
}
