// Package presenter binds the reminder list and its three-field form to a
// reminder store. The view is passive: every list, selection and form change
// is pushed into it explicitly by ReminderList.
package presenter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/remindlist/internal/model"
	"github.com/sandeepkv93/remindlist/internal/storage"
)

// Row holds the display cells of one reminder: name, priority, date.
type Row [3]string

// FormValues mirrors the input fields. A nil pointer is an empty field.
type FormValues struct {
	Name     string
	Priority *int
	Date     *time.Time
}

// Complete reports whether every field is filled, the precondition for Add.
func (f FormValues) Complete() bool {
	return strings.TrimSpace(f.Name) != "" && f.Priority != nil && f.Date != nil
}

func formOf(r model.Reminder) FormValues {
	priority := r.Priority
	date := r.Date
	return FormValues{Name: r.Name, Priority: &priority, Date: &date}
}

// ListView is the passive screen ReminderList drives: a list of rows with a
// single selection, the three-field form and a blocking alert.
type ListView interface {
	SetRows(rows []Row)
	// SelectedIndex is -1 when the list has no selection.
	SelectedIndex() int
	SetSelectedIndex(index int)
	SetForm(values FormValues)
	// Alert shows a message the user has to dismiss.
	Alert(message string)
	SetSelectHandler(handler func(index int))
}

// ReminderList owns the working copy of the store's reminders and the
// current selection. When selected is set it is always an element of items.
type ReminderList struct {
	store    storage.Repository
	view     ListView
	logger   *slog.Logger
	items    []model.Reminder
	selected *model.Reminder
}

// New wires a presenter to store and view. Call Initialize before use.
func New(store storage.Repository, view ListView, logger *slog.Logger) *ReminderList {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ReminderList{
		store:  store,
		view:   view,
		logger: logger.With("component", "presenter"),
	}
}

// Initialize loads the list from the store and registers OnSelect with the view.
func (p *ReminderList) Initialize(ctx context.Context) error {
	if err := p.reload(ctx); err != nil {
		return err
	}
	p.view.SetSelectHandler(p.OnSelect)
	p.logger.Debug("reminder list initialized", "count", len(p.items))
	return nil
}

// OnSelect makes items[index] the selection and shows it in the form.
// Out-of-range indexes are ignored.
func (p *ReminderList) OnSelect(index int) {
	if index < 0 || index >= len(p.items) {
		return
	}
	p.selectAt(index)
}

// Add persists a new reminder when every form field is filled, reloads the
// list and selects the new row.
func (p *ReminderList) Add(ctx context.Context, in FormValues) error {
	if !in.Complete() {
		return nil
	}
	created, err := p.store.Persist(ctx, model.Reminder{
		Name:     strings.TrimSpace(in.Name),
		Priority: *in.Priority,
		Date:     *in.Date,
	})
	if err != nil {
		return fmt.Errorf("add reminder: %w", err)
	}
	if err := p.reload(ctx); err != nil {
		return err
	}
	if i := p.indexOf(created.ID); i >= 0 {
		created = p.items[i]
		p.view.SetSelectedIndex(i)
	}
	p.selected = &created
	p.logger.Info("reminder added", "op", "add", "id", created.ID)
	return nil
}

// Update merges the form into the selected reminder. A reminder removed by
// another client is dropped locally and reported through the view's alert;
// any other store error is returned.
func (p *ReminderList) Update(ctx context.Context, in FormValues) error {
	if p.selected == nil {
		return nil
	}
	target := *p.selected
	target.Name = strings.TrimSpace(in.Name)
	target.Priority = 0
	if in.Priority != nil {
		target.Priority = *in.Priority
	}
	target.Date = time.Time{}
	if in.Date != nil {
		target.Date = *in.Date
	}

	merged, err := p.store.Merge(ctx, target)
	switch {
	case err == nil:
		p.selected = &merged
		if err := p.reload(ctx); err != nil {
			return err
		}
		if i := p.indexOf(merged.ID); i >= 0 {
			fresh := p.items[i]
			p.selected = &fresh
		}
		p.logger.Info("reminder updated", "op", "update", "id", merged.ID)
		return nil
	case errors.Is(err, storage.ErrNotFound):
		p.logger.Info("reminder deleted by another user", "op", "update", "id", target.ID)
		p.dropStale(target.ID)
		p.view.Alert(fmt.Sprintf("Reminder %s has been deleted by another user.", target.Name))
		if len(p.items) > 0 {
			p.selectAt(0)
			p.view.SetSelectedIndex(0)
		} else {
			p.selected = nil
		}
		return nil
	default:
		return fmt.Errorf("update reminder %s: %w", target.ID, err)
	}
}

// Delete removes the selected reminder and selects the row that takes its
// place. A reminder already gone from the store is removed locally too.
func (p *ReminderList) Delete(ctx context.Context) error {
	if p.selected == nil {
		return nil
	}
	target := *p.selected
	index := p.indexOf(target.ID)

	if err := p.store.Delete(ctx, target); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("delete reminder %s: %w", target.ID, err)
		}
		p.logger.Info("reminder already deleted by another user", "op", "delete", "id", target.ID)
	}

	p.removeAt(index)
	if index >= len(p.items) {
		index = len(p.items) - 1
	}
	if index < 0 {
		index = 0
	}
	if len(p.items) == 0 {
		p.selected = nil
		return nil
	}
	p.selectAt(index)
	p.view.SetSelectedIndex(index)
	return nil
}

// Render returns the display cells for r: name, priority, dd-Mon-yy date.
func (p *ReminderList) Render(r model.Reminder) Row {
	return Row{r.Name, strconv.Itoa(r.Priority), r.Date.Format(model.DateLayout)}
}

func (p *ReminderList) Items() []model.Reminder {
	out := make([]model.Reminder, len(p.items))
	copy(out, p.items)
	return out
}

func (p *ReminderList) Selected() (model.Reminder, bool) {
	if p.selected == nil {
		return model.Reminder{}, false
	}
	return *p.selected, true
}

func (p *ReminderList) reload(ctx context.Context) error {
	reminders, err := p.store.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load reminders: %w", err)
	}
	p.items = dedupe(reminders)
	p.pushRows()
	return nil
}

func (p *ReminderList) pushRows() {
	rows := make([]Row, 0, len(p.items))
	for _, item := range p.items {
		rows = append(rows, p.Render(item))
	}
	p.view.SetRows(rows)
}

func (p *ReminderList) selectAt(index int) {
	sel := p.items[index]
	p.selected = &sel
	p.view.SetForm(formOf(sel))
}

// dropStale removes the item at the view's selected index, falling back to a
// lookup by id when the view points somewhere else.
func (p *ReminderList) dropStale(id string) {
	index := p.view.SelectedIndex()
	if index < 0 || index >= len(p.items) || p.items[index].ID != id {
		index = p.indexOf(id)
	}
	p.removeAt(index)
}

func (p *ReminderList) removeAt(index int) {
	if index < 0 || index >= len(p.items) {
		return
	}
	p.items = append(p.items[:index:index], p.items[index+1:]...)
	p.pushRows()
}

func (p *ReminderList) indexOf(id string) int {
	for i, item := range p.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func dedupe(in []model.Reminder) []model.Reminder {
	seen := make(map[string]bool, len(in))
	out := make([]model.Reminder, 0, len(in))
	for _, item := range in {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}
