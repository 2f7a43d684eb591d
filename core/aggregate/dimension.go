// Package aggregate is the in-memory aggregation engine behind charts and
// tables: a Dimension keys items by time, a Group sums weights per key.
package aggregate

import (
	"slices"
	"time"
)

// KeyFunc maps an item to its dimension key. Items reporting false are left out.
type KeyFunc[T any] func(T) (time.Time, bool)

type entry[T any] struct {
	key  time.Time
	item T
}

// Dimension is a keyed, optionally range-filtered view of a dataset.
type Dimension[T any] struct {
	entries []entry[T] // ascending by key, stable for equal keys
	filter  Range
}

// NewDimension indexes items by key.
func NewDimension[T any](items []T, key KeyFunc[T]) *Dimension[T] {
	d := &Dimension[T]{entries: make([]entry[T], 0, len(items))}
	for _, it := range items {
		k, ok := key(it)
		if !ok {
			continue
		}
		d.entries = append(d.entries, entry[T]{key: k, item: it})
	}
	slices.SortStableFunc(d.entries, func(a, b entry[T]) int { return a.key.Compare(b.key) })
	return d
}

// Size returns the number of keyed items, ignoring the filter.
func (d *Dimension[T]) Size() int {
	return len(d.entries)
}

// FilterRange restricts Top to keys inside r.
func (d *Dimension[T]) FilterRange(r Range) {
	d.filter = r
}

// FilterAll removes the filter.
func (d *Dimension[T]) FilterAll() {
	d.filter = Range{}
}

// Filter returns the active filter; empty when none is set.
func (d *Dimension[T]) Filter() Range {
	return d.filter
}

func (d *Dimension[T]) visible(e entry[T]) bool {
	return d.filter.Empty() || d.filter.Contains(e.key)
}

// Top returns up to n filtered items with the largest keys, largest first.
// n <= 0 returns every filtered item.
func (d *Dimension[T]) Top(n int) []T {
	var out []T
	for i := len(d.entries) - 1; i >= 0; i-- {
		if n > 0 && len(out) == n {
			break
		}
		if d.visible(d.entries[i]) {
			out = append(out, d.entries[i].item)
		}
	}
	return out
}

// Bucket returns every item keyed exactly at key, regardless of the filter.
func (d *Dimension[T]) Bucket(key time.Time) []T {
	i, _ := slices.BinarySearchFunc(d.entries, key, func(e entry[T], k time.Time) int { return e.key.Compare(k) })
	var out []T
	for ; i < len(d.entries) && d.entries[i].key.Equal(key); i++ {
		out = append(out, d.entries[i].item)
	}
	return out
}

// Group builds a group summing weight per bucket(key). bucket must be
// monotone non-decreasing; nil groups by exact key.
func (d *Dimension[T]) Group(bucket func(time.Time) time.Time, weight func(T) float64) *Group[T] {
	if bucket == nil {
		bucket = func(t time.Time) time.Time { return t }
	}
	g := &Group[T]{dim: d, bucket: bucket}
	for _, e := range d.entries {
		k := bucket(e.key)
		w := weight(e.item)
		n := len(g.buckets)
		if n > 0 && g.buckets[n-1].Key.Equal(k) {
			g.buckets[n-1].Value += w
			continue
		}
		g.buckets = append(g.buckets, Bucket{Key: k, Value: w})
	}
	return g
}

// Bucket is one (key, aggregate) pair of a group.
type Bucket struct {
	Key   time.Time
	Value float64
}

// Group is a weighted per-key summary of a dimension. Like crossfilter
// groups, it does not observe its own dimension's filter.
type Group[T any] struct {
	dim     *Dimension[T]
	bucket  func(time.Time) time.Time
	buckets []Bucket
}

// All returns every bucket ordered by key.
func (g *Group[T]) All() []Bucket {
	return slices.Clone(g.buckets)
}

// Get returns the aggregate at key.
func (g *Group[T]) Get(key time.Time) (float64, bool) {
	i, ok := slices.BinarySearchFunc(g.buckets, key, func(b Bucket, k time.Time) int { return b.Key.Compare(k) })
	if !ok {
		return 0, false
	}
	return g.buckets[i].Value, true
}

// Members returns the dimension items that fall in the bucket at key,
// regardless of the dimension filter.
func (g *Group[T]) Members(key time.Time) []T {
	var out []T
	for _, e := range g.dim.entries {
		if g.bucket(e.key).Equal(key) {
			out = append(out, e.item)
		}
	}
	return out
}

// Dimension returns the dimension the group summarises.
func (g *Group[T]) Dimension() *Dimension[T] {
	return g.dim
}
