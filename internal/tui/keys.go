package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Regenerate key.Binding
	Mode       key.Binding
	LengthMode key.Binding
	Longer     key.Binding
	Shorter    key.Binding
	Upper      key.Binding
	Lower      key.Binding
	Digits     key.Binding
	Symbols    key.Binding
	Capitalize key.Binding
	Numbers    key.Binding
	MoreNums   key.Binding
	FewerNums  key.Binding
	Separator  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Regenerate: key.NewBinding(key.WithKeys("r", " ", "enter"), key.WithHelp("r", "regenerate")),
		Mode:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "password/passphrase")),
		LengthMode: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "words/target length")),
		Longer:     key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+", "longer")),
		Shorter:    key.NewBinding(key.WithKeys("-", "left"), key.WithHelp("-", "shorter")),
		Upper:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "uppercase")),
		Lower:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lowercase")),
		Digits:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "digits")),
		Symbols:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "symbols")),
		Capitalize: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "capitalize")),
		Numbers:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "numbers")),
		MoreNums:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "more numbers")),
		FewerNums:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "fewer numbers")),
		Separator:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "separator")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Mode, k.Longer, k.Shorter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.Mode, k.Longer, k.Shorter},
		{k.Upper, k.Lower, k.Digits, k.Symbols},
		{k.LengthMode, k.Capitalize, k.Numbers, k.Separator},
		{k.MoreNums, k.FewerNums, k.Help, k.Quit},
	}
}
