// Package record holds the events displayed on a timeline.
package record

import (
	"fmt"
	"time"
)

// Record is one input item: an arbitrary attribute mapping supplied by the host.
type Record map[string]any

// Event is a Record after ingestion, annotated with its resolved date.
type Event struct {
	Record Record

	// Date is the resolved instant. Only meaningful when DateErr is nil.
	Date time.Time

	// DateErr is set when the raw date could not be resolved.
	DateErr error
}

// New wraps a record without resolving its date.
func New(r Record) *Event {
	if r == nil {
		r = Record{}
	}
	return &Event{Record: r}
}

// FromRecords wraps every record.
func FromRecords(records []Record) []*Event {
	out := make([]*Event, len(records))
	for i, r := range records {
		out[i] = New(r)
	}
	return out
}

// Get returns the named attribute.
func (e *Event) Get(key string) any {
	return e.Record[key]
}

// String returns the named attribute formatted as text, or "" when absent.
func (e *Event) String(key string) string {
	v, ok := e.Record[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// HasDate reports whether the event carries a usable resolved date.
func (e *Event) HasDate() bool {
	return e.DateErr == nil && !e.Date.IsZero()
}

// Resolve parses raw with format and stores the outcome on the event.
func (e *Event) Resolve(format string, raw any) {
	e.Date, e.DateErr = ParseDate(format, raw)
}

// ByDate orders dated events ascending, undated events last.
func ByDate(a, b *Event) int {
	switch {
	case a.HasDate() && !b.HasDate():
		return -1
	case !a.HasDate() && b.HasDate():
		return 1
	case !a.HasDate() && !b.HasDate():
		return 0
	}
	return a.Date.Compare(b.Date)
}
