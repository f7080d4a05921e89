package views

import (
	"fmt"
	"strings"
)

type FormField struct {
	Label   string
	View    string
	Focused bool
}

type FormPanelData struct {
	Fields       []FormField
	SelectedName string
}

type ListPanelData struct {
	TableView string
	Count     int
	Focused   bool
}

func RenderListPanel(data ListPanelData) string {
	var b strings.Builder
	if data.Focused {
		b.WriteString("> ")
	}
	b.WriteString(fmt.Sprintf("reminders (%d):\n", data.Count))
	if data.Count == 0 {
		b.WriteString("(no reminders yet)\n")
	}
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderFormPanel(data FormPanelData) string {
	var b strings.Builder
	b.WriteString("reminder:\n")
	for _, f := range data.Fields {
		marker := "  "
		if f.Focused {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-9s %s\n", marker, f.Label, f.View))
	}
	selected := data.SelectedName
	if selected == "" {
		selected = "(none)"
	}
	b.WriteString("\nselected: " + selected + "\n")
	b.WriteString("actions: [ctrl+n]add [ctrl+s]update [ctrl+d]delete")
	return b.String()
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "palette: " + inputView + "\n(add <name> p:<n> d:<date> | update | delete | select <n>)"
}

// FocusedPanel wraps a pane body in the highlighted border.
func FocusedPanel(body string, width int) string {
	return focusedStyle.Width(width).Render(body)
}
