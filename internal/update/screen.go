package update

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/remindlist/internal/dateinput"
	"github.com/sandeepkv93/remindlist/internal/presenter"
)

type focusArea int

const (
	focusList focusArea = iota
	focusName
	focusPriority
	focusDate
	focusCount
)

const (
	fieldName = iota
	fieldPriority
	fieldDate
)

// screen is the passive view the presenter drives. It is shared by pointer
// across Model copies so presenter writes survive Bubble Tea's value updates.
type screen struct {
	table    table.Model
	inputs   [3]textinput.Model
	focus    focusArea
	selected int
	rowCount int
	alert    string
	onSelect func(index int)
}

var _ presenter.ListView = (*screen)(nil)

func newScreen() *screen {
	cols := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Prio", Width: 5},
		{Title: "Date", Width: 10},
	}
	s := &screen{
		table:    table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(12)),
		selected: -1,
	}

	labels := [3]struct {
		prompt      string
		placeholder string
		limit       int
	}{
		{"name> ", "Buy milk", 128},
		{"prio> ", "1", 6},
		{"date> ", "05-Jan-24 or tomorrow", 32},
	}
	for i, l := range labels {
		in := textinput.New()
		in.Prompt = l.prompt
		in.Placeholder = l.placeholder
		in.CharLimit = l.limit
		in.Width = 28
		s.inputs[i] = in
	}
	return s
}

func (s *screen) SetRows(rows []presenter.Row) {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{r[0], r[1], r[2]})
	}
	s.table.SetRows(out)
	s.rowCount = len(out)
	if s.selected >= s.rowCount {
		s.selected = s.rowCount - 1
	}
	if s.selected >= 0 {
		s.table.SetCursor(s.selected)
	}
}

func (s *screen) SelectedIndex() int {
	return s.selected
}

func (s *screen) SetSelectedIndex(index int) {
	if index < 0 || index >= s.rowCount {
		s.selected = -1
		return
	}
	s.selected = index
	s.table.SetCursor(index)
}

func (s *screen) SetForm(values presenter.FormValues) {
	s.inputs[fieldName].SetValue(values.Name)
	priority := ""
	if values.Priority != nil {
		priority = strconv.Itoa(*values.Priority)
	}
	s.inputs[fieldPriority].SetValue(priority)
	date := ""
	if values.Date != nil {
		date = dateinput.Format(*values.Date)
	}
	s.inputs[fieldDate].SetValue(date)
}

func (s *screen) Alert(message string) {
	s.alert = message
}

func (s *screen) SetSelectHandler(handler func(index int)) {
	s.onSelect = handler
}

// selectRow is the list's selection event.
func (s *screen) selectRow(index int) bool {
	if index < 0 || index >= s.rowCount {
		return false
	}
	s.selected = index
	s.table.SetCursor(index)
	if s.onSelect != nil {
		s.onSelect(index)
	}
	return true
}

// formValues reads the inputs. Blank or unparseable priority and date come
// back as absent fields.
func (s *screen) formValues(now time.Time) presenter.FormValues {
	out := presenter.FormValues{Name: s.inputs[fieldName].Value()}
	if p, ok := parsePriority(s.inputs[fieldPriority].Value()); ok {
		out.Priority = &p
	}
	if d, ok := dateinput.Parse(s.inputs[fieldDate].Value(), now); ok {
		out.Date = &d
	}
	return out
}

func (s *screen) setFocus(f focusArea) {
	s.focus = f
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	if f == focusList {
		s.table.Focus()
		return
	}
	s.table.Blur()
	s.inputs[int(f)-1].Focus()
}

func (s *screen) cycleFocus(step int) {
	next := (int(s.focus) + step + int(focusCount)) % int(focusCount)
	s.setFocus(focusArea(next))
}

func parsePriority(raw string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}
