package main

import "github.com/sandeepkv93/remindlist/internal/presenter"

// printView collects the rows a presenter pushes so they can be written to a
// non-interactive output.
type printView struct {
	rows     []presenter.Row
	// selected is index+1 so the zero value means no selection.
	selected int
}

func (v *printView) SetRows(rows []presenter.Row) {
	v.rows = append(v.rows[:0], rows...)
}

func (v *printView) SelectedIndex() int               { return v.selected - 1 }
func (v *printView) SetSelectedIndex(index int)       { v.selected = index + 1 }
func (v *printView) SetForm(presenter.FormValues)     {}
func (v *printView) Alert(string)                     {}
func (v *printView) SetSelectHandler(func(index int)) {}
