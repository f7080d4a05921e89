// Package dateinput turns the text typed into the date field into a calendar
// date. Exact layouts are tried first, then natural language ("tomorrow",
// "next friday") through go-dateparser.
package dateinput

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/sandeepkv93/remindlist/internal/model"
)

var layouts = []string{
	model.DateLayout,
	"2006-01-02",
	"02-Jan-2006",
	"2 Jan 2006",
}

// Parse reports false for blank or unrecognised input, which the form treats
// as an empty field.
func Parse(raw string, now time.Time) (time.Time, bool) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return model.Day(t), true
		}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, false
	}
	return model.Day(result.Time), true
}

// Format is the inverse used when a reminder is pushed back into the form.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}
