package model

import (
	"errors"
	"testing"
	"time"
)

func TestReminderValidateSuccess(t *testing.T) {
	rem := Reminder{
		ID:       "rem-1",
		Name:     "Buy milk",
		Priority: 2,
		Date:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	if err := rem.Validate(); err != nil {
		t.Fatalf("expected valid reminder, got error: %v", err)
	}
}

func TestReminderValidateMissingFields(t *testing.T) {
	cases := []struct {
		name string
		in   Reminder
	}{
		{"blank name", Reminder{Name: "   ", Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}},
		{"zero date", Reminder{Name: "Buy milk", Priority: 1}},
	}
	for _, tc := range cases {
		err := tc.in.Validate()
		if err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
		if !errors.Is(err, ErrInvalidReminder) {
			t.Fatalf("%s: expected ErrInvalidReminder, got: %v", tc.name, err)
		}
	}
}

func TestReminderZeroPriorityIsValid(t *testing.T) {
	rem := Reminder{Name: "Stretch", Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)}
	if err := rem.Validate(); err != nil {
		t.Fatalf("priority 0 should be accepted: %v", err)
	}
}

func TestDayDropsTimeOfDay(t *testing.T) {
	in := time.Date(2024, 3, 2, 17, 45, 12, 99, time.UTC)
	got := Day(in)
	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Day(%v) = %v, want %v", in, got, want)
	}
}

func TestReminderString(t *testing.T) {
	rem := Reminder{Name: "B", Priority: 3, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)}
	if got := rem.String(); got != "B (p3, 02-Mar-24)" {
		t.Fatalf("unexpected string form: %q", got)
	}
}
