// Package options holds the display and data configuration of a timeline.
//
// A Store is an immutable defaults table overlaid with per-instance values.
// Values are not validated on write; the typed readers below are the points
// where a malformed value surfaces.
package options

import (
	"maps"

	"github.com/safedep/timelineviewer/core/record"
)

// Name identifies an option.
type Name string

// Recognised options.
const (
	DataCountHandler       Name = "dataCountHandler"
	DataDateHandler        Name = "dataDateHandler"
	DataDateFormat         Name = "dataDateFormat"
	DisplayChartType       Name = "displayChartType"
	DisplayInteractionType Name = "displayInteractionType"
	DisplayHeight          Name = "displayHeight"
	DisplayWidth           Name = "displayWidth"
	DisplayMargins         Name = "displayMargins"
	DisplayStartDate       Name = "displayStartDate"
	DisplayEndDate         Name = "displayEndDate"
	DisplayScale           Name = "displayScale"
	DisplayTicks           Name = "displayTicks"
	DisplayColors          Name = "displayColors"
	DisplayNavigationStep  Name = "displayNavigationStep"
	DataTableSize          Name = "dataTableSize"
	DataTableColumns       Name = "dataTableColumns"
	DataTableGroupingRule  Name = "dataTableGroupingRule"
)

// Auto is the start/end date sentinel meaning "derive from the data".
const Auto = "auto"

// Interaction types.
const (
	InteractionClick = "click"
	InteractionBrush = "brush"
)

// CountHandler weighs an event on the y axis.
type CountHandler func(*record.Event) float64

// DateHandler extracts the raw date value of an event.
type DateHandler func(*record.Event) any

// GroupingRule returns the data table group an event belongs to.
type GroupingRule func(*record.Event) string

// Column is one data table column.
type Column struct {
	Label string
	Value func(*record.Event) any
}

// Margins around the plotting area.
type Margins struct {
	Top    int `mapstructure:"top" yaml:"top"`
	Right  int `mapstructure:"right" yaml:"right"`
	Bottom int `mapstructure:"bottom" yaml:"bottom"`
	Left   int `mapstructure:"left" yaml:"left"`
}

// Values maps option names to values.
type Values map[Name]any

var defaults = Values{
	DataCountHandler:       CountHandler(func(*record.Event) float64 { return 1 }),
	DataDateHandler:        DateHandler(func(e *record.Event) any { return e.Get("date") }),
	DataDateFormat:         record.DefaultDateFormat,
	DisplayChartType:       "bar",
	DisplayInteractionType: InteractionClick,
	DisplayHeight:          300,
	DisplayWidth:           1500,
	DisplayMargins:         Margins{Top: 10, Right: 50, Bottom: 30, Left: 30},
	DisplayStartDate:       Auto,
	DisplayEndDate:         Auto,
	DisplayScale:           "months",
	DisplayTicks:           4,
	DisplayColors:          []string{"steelblue"},
	DisplayNavigationStep:  "years",
	DataTableSize:          20,
	DataTableColumns:       []Column(nil),
	DataTableGroupingRule:  GroupingRule(func(*record.Event) string { return " " }),
}

// Defaults returns a copy of the defaults table.
func Defaults() Values {
	return maps.Clone(defaults)
}

// Store is the option set of one timeline instance.
type Store struct {
	overlay Values
}

// New creates a store seeded with the defaults and overridden by overrides.
func New(overrides Values) *Store {
	s := &Store{overlay: make(Values, len(overrides))}
	for k, v := range overrides {
		s.overlay[k] = v
	}
	return s
}

// Get returns the current value of name. Recognised options always have one.
func (s *Store) Get(name Name) any {
	if v, ok := s.overlay[name]; ok {
		return v
	}
	return defaults[name]
}

// Set replaces the value of name unconditionally.
func (s *Store) Set(name Name, value any) {
	s.overlay[name] = value
}

// Values returns a snapshot of every effective option value.
func (s *Store) Values() Values {
	out := Defaults()
	for k, v := range s.overlay {
		out[k] = v
	}
	return out
}
