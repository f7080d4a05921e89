package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/remindlist/internal/commands"
	"github.com/sandeepkv93/remindlist/internal/dateinput"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
	return m, nil
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.FieldArgs) (commands.Result, error) {
			if err := m.applyFieldArgs(a); err != nil {
				return commands.Result{}, err
			}
			if err := m.addReminder(); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Update: func(a commands.FieldArgs) (commands.Result, error) {
			if err := m.applyFieldArgs(a); err != nil {
				return commands.Result{}, err
			}
			if err := m.updateReminder(); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func() (commands.Result, error) {
			if err := m.deleteReminder(); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Select: func(s commands.SelectArgs) (commands.Result, error) {
			if !m.screen.selectRow(s.Index) {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("no reminder at position %d", s.Index+1),
				}
			}
			return commands.Result{Message: fmt.Sprintf("selected reminder %d", s.Index+1)}, nil
		},
	})
	if err != nil {
		m = m.fail(err)
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}

// applyFieldArgs writes palette overrides into the form so the following
// operation sees exactly what the keyboard path would.
func (m Model) applyFieldArgs(a commands.FieldArgs) error {
	next := m.screen.formValues(m.now())
	if a.Name != "" {
		next.Name = a.Name
	}
	if a.Priority != nil {
		p := *a.Priority
		next.Priority = &p
	}
	if a.Date != "" {
		d, ok := dateinput.Parse(a.Date, m.now())
		if !ok {
			return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unrecognised date %q", a.Date)}
		}
		next.Date = &d
	}
	m.screen.SetForm(next)
	return nil
}
