package tui

import (
	"time"
)

// SummaryView is a timeline reduced to its buckets.
type SummaryView struct {
	Title     string        `json:"title"`
	Scale     string        `json:"scale"`
	From      time.Time     `json:"from"`
	To        time.Time     `json:"to"`
	Total     int           `json:"total"`
	Undated   int           `json:"undated"`
	Selected  int           `json:"selected"`
	Selection *RangeView    `json:"selection,omitempty"`
	Buckets   []*BucketView `json:"buckets"`
}

// RangeView is an inclusive time range.
type RangeView struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// BucketView is one x axis bucket.
type BucketView struct {
	Key      time.Time `json:"key"`
	Label    string    `json:"label"`
	Value    float64   `json:"value"`
	Selected bool      `json:"selected"`
}

// EventsView holds event rows under named columns.
type EventsView struct {
	Columns []string        `json:"columns"`
	Rows    []*EventRowView `json:"rows"`
}

// EventRowView is one event. Values follow EventsView.Columns.
type EventRowView struct {
	Group  string   `json:"group,omitempty"`
	Values []string `json:"values"`
}

// ConfigView represents configuration for display.
type ConfigView struct {
	Location string         `json:"location"`
	Values   map[string]any `json:"values"`
}
