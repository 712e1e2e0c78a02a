package storefront

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Add      key.Binding
	Cart     key.Binding
	Up       key.Binding
	Down     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	Remove   key.Binding
	Checkout key.Binding
	Close    key.Binding
	Filter   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next category")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev category")),
		Add:      key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("a", "add to cart")),
		Cart:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Inc:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Dec:      key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "less")),
		Remove:   key.NewBinding(key.WithKeys("d", "backspace", "delete"), key.WithHelp("d", "remove")),
		Checkout: key.NewBinding(key.WithKeys("x", "enter"), key.WithHelp("x", "checkout")),
		Close:    key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc", "close cart")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	}
}

func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Add, k.NextTab, k.Filter, k.Cart, k.Quit}
}

func (k keyMap) cartHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Inc, k.Dec, k.Remove, k.Checkout, k.Close}
}
