package render

import (
	"testing"
	"time"

	"github.com/safedep/timelineviewer/core/aggregate"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/granularity"
	"github.com/safedep/timelineviewer/core/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oct(d int) time.Time {
	return time.Date(1982, time.October, d, 0, 0, 0, 0, time.UTC)
}

func spec(unit string, from, to time.Time, dates ...time.Time) chart.Spec {
	events := make([]*record.Event, len(dates))
	for i, d := range dates {
		events[i] = &record.Event{Record: record.Record{}, Date: d}
	}
	u := granularity.MustLookup(unit)
	dim := aggregate.NewDimension(events, func(e *record.Event) (time.Time, bool) { return e.Date, true })
	return chart.Spec{
		Dimension: dim,
		Group:     dim.Group(u.Floor, func(*record.Event) float64 { return 1 }),
		Domain:    aggregate.NewRange(from, to),
		Units:     u,
	}
}

func TestSeries_FillsGaps(t *testing.T) {
	s := Series(spec(granularity.Days, oct(24), oct(28), oct(24), oct(24), oct(27)))

	require.Len(t, s, 5)
	assert.Equal(t, chart.Datum{Key: oct(24), Value: 2}, s[0])
	assert.Equal(t, chart.Datum{Key: oct(25), Value: 0}, s[1])
	assert.Equal(t, chart.Datum{Key: oct(27), Value: 1}, s[3])
}

func TestSeries_StartsAtBucketOfDomainStart(t *testing.T) {
	s := Series(spec(granularity.Months, oct(24), time.Date(1982, time.December, 2, 0, 0, 0, 0, time.UTC), oct(30)))

	require.Len(t, s, 3)
	assert.Equal(t, time.Date(1982, time.October, 1, 0, 0, 0, 0, time.UTC), s[0].Key)
	assert.Equal(t, 1.0, s[0].Value)
}

func TestSeries_Capped(t *testing.T) {
	s := Series(spec(granularity.Seconds, oct(24), oct(25)))
	assert.Len(t, s, MaxBuckets)
}

func TestSeries_Empty(t *testing.T) {
	assert.Nil(t, Series(chart.Spec{}))
}

func TestSelected(t *testing.T) {
	r := []aggregate.Range{aggregate.NewRange(oct(25), oct(26))}

	days := granularity.MustLookup(granularity.Days)

	assert.True(t, Selected(r, days, oct(25)))
	assert.True(t, Selected(r, days, oct(26)))
	assert.False(t, Selected(r, days, oct(27)))
	assert.False(t, Selected(nil, days, oct(25)))
}

func TestOverlaps(t *testing.T) {
	days := granularity.MustLookup(granularity.Days)
	noon := oct(24).Add(12 * time.Hour)

	cases := []struct {
		name string
		sel  aggregate.Range
		key  time.Time
		want bool
	}{
		{"empty selection", aggregate.Range{}, oct(24), false},
		{"starts inside bucket", aggregate.NewRange(noon, oct(26)), oct(24), true},
		{"ends inside bucket", aggregate.NewRange(oct(22), noon), oct(24), true},
		{"ends on bucket start", aggregate.NewRange(oct(22), oct(24)), oct(24), true},
		{"starts on next bucket", aggregate.NewRange(oct(25), oct(26)), oct(24), false},
		{"ends before bucket", aggregate.NewRange(oct(20), noon), oct(25), false},
		{"inside one bucket", aggregate.NewRange(noon, noon.Add(time.Hour)), oct(24), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.sel, days, tc.key))
		})
	}
}

func TestLabel(t *testing.T) {
	ts := time.Date(1982, time.October, 24, 13, 5, 9, 0, time.UTC)

	assert.Equal(t, "13:05:09", Label(granularity.Seconds, ts))
	assert.Equal(t, "1982-10-24 13:05", Label(granularity.Hours, ts))
	assert.Equal(t, "1982-10-24", Label(granularity.Weeks, ts))
	assert.Equal(t, "1982-10", Label(granularity.Months, ts))
	assert.Equal(t, "1982", Label(granularity.Years, ts))
}
