package render

import (
	"time"

	"github.com/safedep/timelineviewer/core/aggregate"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/granularity"
)

// MaxBuckets caps how many buckets Series expands a domain into.
const MaxBuckets = 5000

// Series returns one datum per unit bucket from the bucket holding the
// domain start through the domain end. Buckets without events are zero.
func Series(spec chart.Spec) []chart.Datum {
	if spec.Group == nil || spec.Domain.Empty() {
		return nil
	}

	u := spec.Units
	var out []chart.Datum
	for k := u.Floor(spec.Domain.From); !k.After(spec.Domain.To) && len(out) < MaxBuckets; k = u.Increment(k) {
		v, _ := spec.Group.Get(k)
		out = append(out, chart.Datum{Key: k, Value: v})
	}
	return out
}

// Selected reports whether the bucket of unit starting at key overlaps the
// first filter.
func Selected(filters []aggregate.Range, unit granularity.Unit, key time.Time) bool {
	return len(filters) > 0 && Overlaps(filters[0], unit, key)
}

// Overlaps reports whether sel shares an instant with the bucket
// [key, unit.Increment(key)).
func Overlaps(sel aggregate.Range, unit granularity.Unit, key time.Time) bool {
	b := sel.Bounds()
	if b == nil {
		return false
	}
	return b[0].Before(unit.Increment(key)) && !b[1].Before(key)
}

// Label formats a bucket key at the precision of its unit.
func Label(unit string, t time.Time) string {
	switch unit {
	case granularity.Seconds:
		return t.Format(time.TimeOnly)
	case granularity.Minutes, granularity.Hours:
		return t.Format("2006-01-02 15:04")
	case granularity.Months:
		return t.Format("2006-01")
	case granularity.Years:
		return t.Format("2006")
	default:
		return t.Format(time.DateOnly)
	}
}
