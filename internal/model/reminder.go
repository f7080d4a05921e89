package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidReminder = errors.New("model: invalid reminder")

// DateLayout is the display form of a reminder date (dd-MMM-yy).
const DateLayout = "02-Jan-06"

type Reminder struct {
	ID       string
	Name     string
	Priority int
	Date     time.Time
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidReminder)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidReminder)
	}
	return nil
}

// Day truncates t to its calendar date in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (r Reminder) String() string {
	return fmt.Sprintf("%s (p%d, %s)", r.Name, r.Priority, r.Date.Format(DateLayout))
}
