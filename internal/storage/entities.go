package storage

import (
	"time"

	"github.com/sandeepkv93/remindlist/internal/model"
)

const dateLayout = "2006-01-02"

// reminderRecord is the JSON form kept in badger.
type reminderRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Priority  int       `json:"priority"`
	Date      string    `json:"date"`
	Seq       uint64    `json:"seq"`
	CreatedAt time.Time `json:"created_at"`
}

func toRecord(in model.Reminder) reminderRecord {
	return reminderRecord{
		ID:       in.ID,
		Name:     in.Name,
		Priority: in.Priority,
		Date:     in.Date.Format(dateLayout),
	}
}

func (r reminderRecord) toModel() (model.Reminder, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return model.Reminder{}, err
	}
	return model.Reminder{ID: r.ID, Name: r.Name, Priority: r.Priority, Date: date}, nil
}

// normalizeDate keeps the calendar date of t and pins it to UTC midnight,
// which is what both backends hand back on read.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
