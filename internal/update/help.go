package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/remindlist/internal/views"
)

type keyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Update    key.Binding
	Delete    key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
	Dismiss   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous reminder")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next reminder")),
		Add:       key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add")),
		Update:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "update")),
		Delete:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Palette:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Update, k.Delete, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Up, k.Down},
		{k.Add, k.Update, k.Delete},
		{k.Palette, k.Help, k.Quit},
	}
}

func (m Model) renderHelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# remindlist\n\n")
	b.WriteString("| key | action |\n|---|---|\n")
	for _, group := range m.keys.FullHelp() {
		for _, kb := range group {
			h := kb.Help()
			b.WriteString("| `" + h.Key + "` | " + h.Desc + " |\n")
		}
	}
	b.WriteString("\n## palette\n\n")
	b.WriteString("- `add <name> p:<priority> d:<date>`\n")
	b.WriteString("- `update [name] [p:<priority>] [d:<date>]`\n")
	b.WriteString("- `delete`\n")
	b.WriteString("- `select <n>`\n")
	b.WriteString("\nDates accept `05-Jan-24`, `2024-01-05` or phrases like `next friday`.\n")
	return views.RenderMarkdown(b.String())
}

func (m Model) renderHelpView() string {
	return m.helpViewport.View() + "\n" + m.helpModel.View(m.keys)
}
