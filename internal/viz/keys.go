package viz

import "github.com/charmbracelet/bubbles/key"

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Mode   key.Binding
	Erase  key.Binding
	Theme  key.Binding
	Quit   key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Mode, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Mode, k.Erase, k.Theme, k.Quit}}
}

var menuKeys = menuKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Mode:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "random/custom")),
	Erase:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "erase")),
	Theme:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type liveKeyMap struct {
	Pause  key.Binding
	Step   key.Binding
	Slower key.Binding
	Faster key.Binding
	Theme  key.Binding
	Help   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k liveKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Slower, k.Faster, k.Help, k.Back, k.Quit}
}

func (k liveKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step},
		{k.Slower, k.Faster},
		{k.Theme, k.Help, k.Back, k.Quit},
	}
}

var liveKeys = liveKeyMap{
	Pause:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
	Step:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "step while paused")),
	Slower: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "slower")),
	Faster: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "faster")),
	Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
