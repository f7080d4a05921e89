package presenter

import (
	"context"
	"strconv"

	"github.com/sandeepkv93/remindlist/internal/model"
	"github.com/sandeepkv93/remindlist/internal/storage"
)

// fakeStore is an in-memory storage.Repository shared by "other users" in
// tests. Error fields are returned instead of touching the data.
type fakeStore struct {
	items  []model.Reminder
	nextID int

	persistCalls int
	mergeCalls   int
	deleteCalls  int

	FindAllErr error
	PersistErr error
	MergeErr   error
	DeleteErr  error
}

func newFakeStore(seed ...model.Reminder) *fakeStore {
	s := &fakeStore{nextID: 1}
	for _, r := range seed {
		if r.ID == "" {
			r.ID = s.newID()
		}
		s.items = append(s.items, r)
	}
	return s
}

func (s *fakeStore) newID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

// removeBehindBack simulates another client deleting a record.
func (s *fakeStore) removeBehindBack(id string) {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *fakeStore) FindAll(ctx context.Context) ([]model.Reminder, error) {
	if s.FindAllErr != nil {
		return nil, s.FindAllErr
	}
	out := make([]model.Reminder, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *fakeStore) Persist(ctx context.Context, in model.Reminder) (model.Reminder, error) {
	s.persistCalls++
	if s.PersistErr != nil {
		return model.Reminder{}, s.PersistErr
	}
	if err := in.Validate(); err != nil {
		return model.Reminder{}, err
	}
	in.ID = s.newID()
	s.items = append(s.items, in)
	return in, nil
}

func (s *fakeStore) Merge(ctx context.Context, in model.Reminder) (model.Reminder, error) {
	s.mergeCalls++
	if s.MergeErr != nil {
		return model.Reminder{}, s.MergeErr
	}
	if err := in.Validate(); err != nil {
		return model.Reminder{}, err
	}
	for i, item := range s.items {
		if item.ID == in.ID {
			s.items[i] = in
			return in, nil
		}
	}
	return model.Reminder{}, storage.ErrNotFound
}

func (s *fakeStore) Delete(ctx context.Context, in model.Reminder) error {
	s.deleteCalls++
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	for i, item := range s.items {
		if item.ID == in.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

type fakeView struct {
	rows     []Row
	selected int
	form     FormValues
	forms    int
	alerts   []string
	onSelect func(index int)
}

func newFakeView() *fakeView {
	return &fakeView{selected: -1}
}

func (v *fakeView) SetRows(rows []Row) {
	v.rows = rows
	if v.selected >= len(rows) {
		v.selected = len(rows) - 1
	}
}

func (v *fakeView) SelectedIndex() int         { return v.selected }
func (v *fakeView) SetSelectedIndex(index int) { v.selected = index }
func (v *fakeView) Alert(message string)       { v.alerts = append(v.alerts, message) }

func (v *fakeView) SetForm(values FormValues) {
	v.form = values
	v.forms++
}

func (v *fakeView) SetSelectHandler(handler func(index int)) {
	v.onSelect = handler
}

// click mimics the user selecting a row in the list.
func (v *fakeView) click(index int) {
	v.selected = index
	if v.onSelect != nil {
		v.onSelect(index)
	}
}
