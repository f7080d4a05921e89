package update

import (
	"fmt"
)

func (m *Model) addReminder() error {
	values := m.screen.formValues(m.now())
	if !values.Complete() {
		m.Status = StatusBar{Text: "add: fill in name, priority and date"}
		return nil
	}
	if err := m.presenter.Add(m.ctx, values); err != nil {
		return err
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added %s", m.selectedName())}
	return nil
}

func (m *Model) updateReminder() error {
	if _, ok := m.presenter.Selected(); !ok {
		m.Status = StatusBar{Text: "update: select a reminder first"}
		return nil
	}
	values := m.screen.formValues(m.now())
	switch {
	case values.Priority == nil:
		m.Status = StatusBar{Text: fmt.Sprintf("update: invalid priority %q", m.screen.inputs[fieldPriority].Value()), IsError: true}
		return nil
	case values.Date == nil:
		m.Status = StatusBar{Text: fmt.Sprintf("update: invalid date %q", m.screen.inputs[fieldDate].Value()), IsError: true}
		return nil
	}
	if err := m.presenter.Update(m.ctx, values); err != nil {
		return err
	}
	if m.screen.alert != "" {
		m.Status = StatusBar{Text: "reminder no longer exists", IsError: true}
		return nil
	}
	m.Status = StatusBar{Text: fmt.Sprintf("updated %s", m.selectedName())}
	return nil
}

func (m *Model) deleteReminder() error {
	target, ok := m.presenter.Selected()
	if !ok {
		m.Status = StatusBar{Text: "delete: select a reminder first"}
		return nil
	}
	if err := m.presenter.Delete(m.ctx); err != nil {
		return err
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %s", target.Name)}
	return nil
}

// fail records an error that aborted an interaction. Nothing is retried.
func (m Model) fail(err error) Model {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.logger.Error("interaction failed", "err", err)
	return m
}

func (m Model) selectedName() string {
	if r, ok := m.presenter.Selected(); ok {
		return r.Name
	}
	return ""
}
