package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/remindlist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.helpViewport.Width = typed.Width
		m.helpViewport.Height = clamp(typed.Height-6, 4, 40)
		m.screen.table.SetHeight(clamp(typed.Height-8, 3, 30))
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m = m.fail(typed.Err)
		}
		return m, nil
	case AddReminderMsg:
		return m.run((*Model).addReminder), nil
	case UpdateReminderMsg:
		return m.run((*Model).updateReminder), nil
	case DeleteReminderMsg:
		return m.run((*Model).deleteReminder), nil
	case SelectReminderMsg:
		if !m.screen.selectRow(typed.Index) {
			m.Status = StatusBar{Text: fmt.Sprintf("no reminder at position %d", typed.Index+1), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

// run applies one presenter-backed action to m.
func (m Model) run(action func(*Model) error) Model {
	if err := action(&m); err != nil {
		return m.fail(err)
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	// The alert is modal: nothing else reacts until it is dismissed.
	if m.screen.alert != "" {
		if key.Matches(msg, m.keys.Dismiss) {
			m.screen.alert = ""
		}
		return m, nil
	}

	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}

	if m.HelpVisible {
		switch {
		case key.Matches(msg, m.keys.Help), msg.String() == "esc":
			m.HelpVisible = false
			m.Status = StatusBar{Text: "help hidden"}
		case key.Matches(msg, m.keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.helpViewport, cmd = m.helpViewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		m.screen.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.screen.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Add):
		return m.run((*Model).addReminder), nil
	case key.Matches(msg, m.keys.Update):
		return m.run((*Model).updateReminder), nil
	case key.Matches(msg, m.keys.Delete):
		return m.run((*Model).deleteReminder), nil
	}

	if m.screen.focus != focusList {
		if msg.String() == "esc" {
			m.screen.setFocus(focusList)
			return m, nil
		}
		i := int(m.screen.focus) - 1
		var cmd tea.Cmd
		m.screen.inputs[i], cmd = m.screen.inputs[i].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Palette):
		return m.openPalette(), nil
	case key.Matches(msg, m.keys.Help):
		m.HelpVisible = true
		m.helpViewport.GotoTop()
		m.Status = StatusBar{Text: "help shown"}
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case msg.String() == "enter":
		m.screen.selectRow(m.screen.table.Cursor())
	}
	return m, nil
}

// moveSelection steps the list selection. The first move with nothing
// selected picks the row under the cursor.
func (m Model) moveSelection(step int) {
	current := m.screen.SelectedIndex()
	next := m.screen.table.Cursor()
	if current >= 0 {
		next = current + step
	}
	m.screen.selectRow(clamp(next, 0, m.screen.rowCount-1))
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	header := "remindlist"
	if m.storeLabel != "" {
		header += " · " + m.storeLabel
	}

	overlay := ""
	switch {
	case m.screen.alert != "":
		overlay = views.RenderAlert(m.screen.alert)
	case m.HelpVisible:
		overlay = m.renderHelpView()
	}

	footer := m.helpModel.ShortHelpView(m.keys.ShortHelp())
	if p := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()); p != "" {
		footer = p
	}

	return views.RenderApp(views.AppData{
		Header:      header,
		ListPane:    m.renderListPane(),
		FormPane:    m.renderFormPane(),
		FormFocused: m.screen.focus != focusList,
		StatusLine:  m.Status.Text,
		IsError:     m.Status.IsError,
		Footer:      footer,
		Overlay:     overlay,
	})
}

func (m Model) renderListPane() string {
	return views.RenderListPanel(views.ListPanelData{
		TableView: m.screen.table.View(),
		Count:     m.screen.rowCount,
		Focused:   m.screen.focus == focusList,
	})
}

func (m Model) renderFormPane() string {
	labels := [3]string{"name", "priority", "date"}
	fields := make([]views.FormField, 0, len(labels))
	for i, label := range labels {
		fields = append(fields, views.FormField{
			Label:   label,
			View:    m.screen.inputs[i].View(),
			Focused: int(m.screen.focus) == i+1,
		})
	}
	return views.RenderFormPanel(views.FormPanelData{
		Fields:       fields,
		SelectedName: m.selectedName(),
	})
}
