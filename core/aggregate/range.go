package aggregate

import "time"

// Range is an inclusive time interval. The zero Range is empty.
type Range struct {
	From time.Time
	To   time.Time

	set bool
}

// NewRange returns the interval [from, to].
func NewRange(from, to time.Time) Range {
	return Range{From: from, To: to, set: true}
}

// Empty reports whether r selects nothing.
func (r Range) Empty() bool {
	return !r.set
}

// Contains reports whether t lies within r, bounds included.
func (r Range) Contains(t time.Time) bool {
	if !r.set {
		return false
	}
	return !t.Before(r.From) && !t.After(r.To)
}

// Bounds returns nil for an empty range, otherwise [From, To].
func (r Range) Bounds() []time.Time {
	if !r.set {
		return nil
	}
	return []time.Time{r.From, r.To}
}

// Equal reports whether r and o denote the same interval.
func (r Range) Equal(o Range) bool {
	if r.set != o.set {
		return false
	}
	return !r.set || (r.From.Equal(o.From) && r.To.Equal(o.To))
}
