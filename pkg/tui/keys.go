package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit          key.Binding
	Focus         key.Binding
	Save          key.Binding
	Cancel        key.Binding
	Open          key.Binding
	Edit          key.Binding
	Delete        key.Binding
	Copy          key.Binding
	Up            key.Binding
	Down          key.Binding
	Search        key.Binding
	ClearSearch   key.Binding
	AddCategory   key.Binding
	PrevCategory  key.Binding
	NextCategory  key.Binding
	CycleCategory key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Focus:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Save:          key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Open:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view")),
		Edit:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Copy:          key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy to draft")),
		Up:            key.NewBinding(key.WithKeys("up", "k")),
		Down:          key.NewBinding(key.WithKeys("down", "j")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear search")),
		AddCategory:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new category")),
		PrevCategory:  key.NewBinding(key.WithKeys("[")),
		NextCategory:  key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "filter category")),
		CycleCategory: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "note category")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Save, k.Search, k.Open, k.Edit, k.Delete, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Save, k.Cancel, k.CycleCategory},
		{k.Open, k.Edit, k.Delete, k.Copy},
		{k.Search, k.ClearSearch, k.AddCategory, k.NextCategory},
		{k.Quit},
	}
}
