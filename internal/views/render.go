package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	ListPane   string
	FormPane   string
	StatusLine string
	IsError    bool
	Footer     string
	// FormFocused highlights the form pane instead of the list pane.
	FormFocused bool
	// Overlay replaces the panes while an alert or the help panel is open.
	Overlay string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedStyle = panelStyle.BorderForeground(lipgloss.Color("12"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	alertStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 3)
)

func RenderApp(data AppData) string {
	body := data.Overlay
	if body == "" {
		left := FocusedPanel(data.ListPane, 46)
		right := panelStyle.Width(40).Render(data.FormPane)
		if data.FormFocused {
			left = panelStyle.Width(46).Render(data.ListPane)
			right = FocusedPanel(data.FormPane, 40)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	status := statusStyle.Render(data.StatusLine)
	if data.IsError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		body,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderAlert draws the blocking message box.
func RenderAlert(message string) string {
	return alertStyle.Render(message + "\n\n" + footerStyle.Render("[enter] ok"))
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
