// Package granularity maps the symbolic time units used by display options
// (seconds through years) to concrete bucketing and stepping operations.
package granularity

import (
	"errors"
	"fmt"
	"time"
)

// Unit names as they appear in the displayScale and displayNavigationStep options.
const (
	Seconds = "seconds"
	Minutes = "minutes"
	Hours   = "hours"
	Days    = "days"
	Weeks   = "weeks"
	Months  = "months"
	Years   = "years"
)

// ErrUnknownUnit is returned by Lookup for names outside the fixed table.
var ErrUnknownUnit = errors.New("unknown granularity unit")

// Unit is one entry of the granularity table. The zero Unit is not usable;
// obtain units through Lookup or MustLookup.
type Unit struct {
	name  string
	floor func(time.Time) time.Time
	step  func(time.Time, int) time.Time
}

var table = map[string]Unit{
	Seconds: {
		name:  Seconds,
		floor: func(t time.Time) time.Time { return clock(t, t.Hour(), t.Minute(), t.Second()) },
		step:  func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Second) },
	},
	Minutes: {
		name:  Minutes,
		floor: func(t time.Time) time.Time { return clock(t, t.Hour(), t.Minute(), 0) },
		step:  func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Minute) },
	},
	Hours: {
		name:  Hours,
		floor: func(t time.Time) time.Time { return clock(t, t.Hour(), 0, 0) },
		step:  func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Hour) },
	},
	Days: {
		name:  Days,
		floor: func(t time.Time) time.Time { return clock(t, 0, 0, 0) },
		step:  func(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) },
	},
	Weeks: {
		name: Weeks,
		floor: func(t time.Time) time.Time {
			d := clock(t, 0, 0, 0)
			return d.AddDate(0, 0, -int(d.Weekday()))
		},
		step: func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) },
	},
	Months: {
		name:  Months,
		floor: func(t time.Time) time.Time { return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()) },
		step:  func(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) },
	},
	Years: {
		name:  Years,
		floor: func(t time.Time) time.Time { return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location()) },
		step:  func(t time.Time, n int) time.Time { return t.AddDate(n, 0, 0) },
	},
}

// Names lists the table entries from finest to coarsest.
func Names() []string {
	return []string{Seconds, Minutes, Hours, Days, Weeks, Months, Years}
}

// Lookup returns the unit registered under name.
func Lookup(name string) (Unit, error) {
	u, ok := table[name]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// MustLookup is Lookup for callers where an unknown name is a programming error.
func MustLookup(name string) Unit {
	u, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return u
}

// Name returns the option string for the unit.
func (u Unit) Name() string {
	return u.name
}

// Floor rounds t down to the start of its unit.
func (u Unit) Floor(t time.Time) time.Time {
	return u.floor(t)
}

// Increment returns t advanced by one unit.
func (u Unit) Increment(t time.Time) time.Time {
	return u.step(t, 1)
}

// Decrement returns t moved back by one unit.
func (u Unit) Decrement(t time.Time) time.Time {
	return u.step(t, -1)
}

// Sequence returns every unit boundary in [start, end).
func (u Unit) Sequence(start, end time.Time) []time.Time {
	var out []time.Time
	if !start.Before(end) {
		return out
	}
	origin := u.Floor(start)
	k := 0
	if origin.Before(start) {
		k = 1
	}
	for ; ; k++ {
		b := u.step(origin, k)
		if !b.Before(end) {
			return out
		}
		out = append(out, b)
	}
}

func clock(t time.Time, h, m, s int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), h, m, s, 0, t.Location())
}
