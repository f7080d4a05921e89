package dateinput

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 4, 15, 30, 0, 0, time.UTC)

func TestParseExactLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"02-Mar-24":   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		"2024-01-05":  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		"05-Jan-2024": time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		" 2 Jan 2025": time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, ok := Parse(in, now)
		require.True(t, ok, "input %q", in)
		assert.True(t, want.Equal(got), "input %q: got %v want %v", in, got, want)
	}
}

func TestParseNaturalLanguage(t *testing.T) {
	got, ok := Parse("tomorrow", now)
	require.True(t, ok)
	y, m, d := got.Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.January, m)
	assert.Equal(t, 5, d)
}

func TestParseBlankIsAbsent(t *testing.T) {
	_, ok := Parse("   ", now)
	assert.False(t, ok)
}

func TestFormatRoundTrip(t *testing.T) {
	d := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "02-Mar-24", Format(d))
	assert.Equal(t, "", Format(time.Time{}))

	back, ok := Parse(Format(d), now)
	require.True(t, ok)
	assert.True(t, d.Equal(back))
}
