package record

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	ts, err := ParseDate("%d/%m/%Y", "24/10/1982")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1982, time.October, 24, 0, 0, 0, 0, time.UTC), ts)
}

func TestParseDate_DefaultFormat(t *testing.T) {
	ts, err := ParseDate("", "30/10/1982")
	require.NoError(t, err)
	assert.Equal(t, 30, ts.Day())
}

func TestParseDate_ISO(t *testing.T) {
	ts, err := ParseDate("%Y-%m-%d %H:%M:%S", "1996-07-06 13:14:15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1996, time.July, 6, 13, 14, 15, 0, time.UTC), ts)
}

func TestParseDate_TimePassesThrough(t *testing.T) {
	in := time.Date(2001, time.March, 3, 4, 5, 6, 0, time.UTC)
	ts, err := ParseDate("%d/%m/%Y", in)
	require.NoError(t, err)
	assert.Equal(t, in, ts)
}

func TestParseDate_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		err  error
	}{
		{"nil", nil, ErrNoDate},
		{"empty string", "  ", ErrNoDate},
		{"zero time", time.Time{}, ErrNoDate},
		{"garbage", "not a date", ErrBadDate},
		{"wrong layout", "1982-10-24", ErrBadDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDate("%d/%m/%Y", tc.raw)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(1982, time.October, 24, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "24/10/1982", FormatDate("", ts))
}

func TestEvent_Resolve(t *testing.T) {
	e := New(Record{"date": "24/10/1982"})
	e.Resolve("%d/%m/%Y", e.Get("date"))
	assert.True(t, e.HasDate())

	bad := New(Record{"date": "yesterday"})
	bad.Resolve("%d/%m/%Y", bad.Get("date"))
	assert.False(t, bad.HasDate())
	assert.ErrorIs(t, bad.DateErr, ErrBadDate)
}

func TestEvent_String(t *testing.T) {
	e := New(Record{"name": "firefox", "count": 3, "nil": nil})

	assert.Equal(t, "firefox", e.String("name"))
	assert.Equal(t, "3", e.String("count"))
	assert.Equal(t, "", e.String("nil"))
	assert.Equal(t, "", e.String("missing"))
}

func TestByDate_UndatedLast(t *testing.T) {
	a := New(Record{})
	a.Date = time.Date(1982, time.October, 25, 0, 0, 0, 0, time.UTC)
	b := New(Record{})
	b.Date = time.Date(1982, time.October, 24, 0, 0, 0, 0, time.UTC)
	c := New(Record{})
	c.DateErr = ErrBadDate

	events := []*Event{c, a, b}
	slices.SortStableFunc(events, ByDate)

	assert.Equal(t, []*Event{b, a, c}, events)
}

func TestFromRecords(t *testing.T) {
	events := FromRecords([]Record{{"a": 1}, nil})
	require.Len(t, events, 2)
	assert.NotNil(t, events[1].Record)
}
