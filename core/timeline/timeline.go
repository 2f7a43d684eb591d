// Package timeline is the coordinator of a timeline widget. It owns the
// dataset, the filter predicate, the option store, the active chart adapter
// and the optional data table, and bubbles their events to the host.
//
// A Timeline is not safe for concurrent use. Every operation runs its event
// handlers synchronously before returning.
package timeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/safedep/dry/log"
	"github.com/safedep/timelineviewer/core/aggregate"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/datatable"
	"github.com/safedep/timelineviewer/core/eventbus"
	"github.com/safedep/timelineviewer/core/options"
	"github.com/safedep/timelineviewer/core/record"
	"github.com/safedep/timelineviewer/internal/version"
)

// DisplayName is the widget name reported by Name.
const DisplayName = "Timelineviewer"

// ErrDestroyed is returned by Render after Destroy.
var ErrDestroyed = errors.New("timeline has been destroyed")

// Predicate narrows the dataset. A nil Predicate accepts every event.
type Predicate func(*record.Event) bool

// ClickPayload is the payload of a dataClick event.
type ClickPayload struct {
	Key    time.Time
	Value  float64
	Events []*record.Event
}

// BrushPayload is the payload of a dataBrush event.
type BrushPayload struct {
	Range  aggregate.Range
	Events []*record.Event
}

// Chart events re-emitted on the timeline bus unchanged.
var relayed = []string{
	eventbus.AfterRender,
	eventbus.BeforeSetSelectionRange,
	eventbus.AfterSetSelectionRange,
	eventbus.AfterSelectionRangeChanged,
	eventbus.BeforeNextPeriod,
	eventbus.AfterNextPeriod,
	eventbus.BeforePreviousPeriod,
	eventbus.AfterPreviousPeriod,
	eventbus.PeriodChanged,
}

type Timeline struct {
	id        uuid.UUID
	container string
	opts      *options.Store
	engine    chart.Engine
	bus       *eventbus.Bus

	data   []*record.Event
	filter Predicate

	chart *chart.Chart
	table *datatable.DataTable

	dimension *chart.Dimension
	group     *chart.Group

	destroyed bool
}

// New creates a timeline drawing into container with engine. overrides are
// laid over the default options.
func New(container string, overrides options.Values, engine chart.Engine) *Timeline {
	t := &Timeline{
		id:        uuid.New(),
		container: container,
		opts:      options.New(overrides),
		engine:    engine,
		bus:       eventbus.New(),
	}

	// Internal listeners go first so derived state is settled before any
	// host handler for the same event runs.
	t.initializeEvents()
	t.initializeChart()
	return t
}

func (t *Timeline) ID() uuid.UUID { return t.id }

// Name returns the widget name with its version.
func (t *Timeline) Name() string {
	return fmt.Sprintf("%s %s", DisplayName, version.Version)
}

// Container returns the container the chart draws into.
func (t *Timeline) Container() string { return t.container }

// Options exposes the option store to the chart adapter and data table.
func (t *Timeline) Options() *options.Store { return t.opts }

// Chart returns the active chart adapter.
func (t *Timeline) Chart() *chart.Chart { return t.chart }

// DataTable returns the data table, or nil when none was created.
func (t *Timeline) DataTable() *datatable.DataTable { return t.table }

// Dimension returns the aggregation dimension from the last render, or nil
// once the data, the filter or the chart type changed since.
func (t *Timeline) Dimension() *chart.Dimension { return t.dimension }

// Group returns the aggregation group from the last render, or nil.
func (t *Timeline) Group() *chart.Group { return t.group }

// On subscribes to a timeline event.
func (t *Timeline) On(name string, fn eventbus.Handler) {
	t.bus.On(name, fn)
}

// SetData replaces the dataset. Dates are resolved before afterSetData
// reaches host handlers.
func (t *Timeline) SetData(records []record.Record) {
	t.bus.Emit(eventbus.BeforeSetData, nil)
	t.data = record.FromRecords(records)
	t.bus.Emit(eventbus.AfterSetData, nil)
}

// GetData returns the dataset narrowed by the filter.
func (t *Timeline) GetData() []*record.Event {
	out := make([]*record.Event, 0, len(t.data))
	for _, e := range t.data {
		if t.filter == nil || t.filter(e) {
			out = append(out, e)
		}
	}
	return out
}

// GetSelectedData returns the filtered events dated inside the selection.
// It is empty when nothing is selected.
func (t *Timeline) GetSelectedData() []*record.Event {
	sel := t.GetSelectionRange()
	if sel.Empty() {
		return []*record.Event{}
	}

	out := []*record.Event{}
	for _, e := range t.GetData() {
		if e.HasDate() && sel.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// SetFilter replaces the filter predicate. nil removes it.
func (t *Timeline) SetFilter(p Predicate) {
	t.bus.Emit(eventbus.BeforeSetFilter, nil)
	t.filter = p
	t.bus.Emit(eventbus.AfterSetFilter, nil)
}

func (t *Timeline) GetFilter() Predicate { return t.filter }

// ClearFilter is SetFilter(nil).
func (t *Timeline) ClearFilter() { t.SetFilter(nil) }

// GetOption returns the current value of an option.
func (t *Timeline) GetOption(name options.Name) any {
	return t.opts.Get(name)
}

// SetOption overwrites an option. The generic and the named before/after
// events fire even when the value does not change.
func (t *Timeline) SetOption(name options.Name, value any) {
	t.bus.Emit(eventbus.BeforeSetOption, name)
	t.bus.Emit(eventbus.BeforeSetOptionFor(string(name)), name)
	t.opts.Set(name, value)
	t.bus.Emit(eventbus.AfterSetOption, name)
	t.bus.Emit(eventbus.AfterSetOptionFor(string(name)), name)
}

// SetSelectionRange selects [from, to]. A zero bound clears the selection.
func (t *Timeline) SetSelectionRange(from, to time.Time) {
	t.chart.SetSelectionRange(from, to)
}

func (t *Timeline) GetSelectionRange() aggregate.Range {
	return t.chart.GetSelectionRange()
}

func (t *Timeline) ClearSelectionRange() {
	t.chart.ClearSelectionRange()
}

// NextPeriod moves the display window forward by displayNavigationStep.
func (t *Timeline) NextPeriod() { t.chart.NextPeriod() }

// PreviousPeriod moves the display window back by displayNavigationStep.
func (t *Timeline) PreviousPeriod() { t.chart.PreviousPeriod() }

// EarliestDate is the earliest resolved date of the filtered dataset, or
// the current time when it has no dated events.
func (t *Timeline) EarliestDate() time.Time {
	var earliest time.Time
	for _, e := range t.GetData() {
		if e.HasDate() && (earliest.IsZero() || e.Date.Before(earliest)) {
			earliest = e.Date
		}
	}
	if earliest.IsZero() {
		return time.Now()
	}
	return earliest
}

// LatestDate is the latest resolved date of the filtered dataset, or the
// current time when it has no dated events.
func (t *Timeline) LatestDate() time.Time {
	var latest time.Time
	for _, e := range t.GetData() {
		if e.HasDate() && (latest.IsZero() || e.Date.After(latest)) {
			latest = e.Date
		}
	}
	if latest.IsZero() {
		return time.Now()
	}
	return latest
}

// Render rebuilds the aggregation and draws the chart, then the data table.
func (t *Timeline) Render() error {
	if t.destroyed {
		return ErrDestroyed
	}

	t.bus.Emit(eventbus.BeforeRender, nil)

	if err := t.chart.Render(t.dimension, t.group); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	if t.table != nil {
		if err := t.table.Render(t.dimension); err != nil {
			return err
		}
	}
	return nil
}

// CreateDataTable attaches a data table drawing into container. It replaces
// any previous table.
func (t *Timeline) CreateDataTable(container string, engine datatable.Engine) *datatable.DataTable {
	t.bus.Emit(eventbus.BeforeCreateDataTable, nil)
	if t.table != nil {
		t.table.Discard()
	}
	t.table = datatable.New(container, t.opts, engine)
	t.bus.Emit(eventbus.AfterCreateDataTable, nil)
	return t.table
}

// Destroy releases the chart, the table and every subscription.
func (t *Timeline) Destroy() {
	if t.destroyed {
		return
	}
	t.chart.Discard()
	if t.table != nil {
		t.table.Discard()
		t.table = nil
	}
	t.bus.Reset()
	t.data = nil
	t.dimension = nil
	t.group = nil
	t.destroyed = true
	log.Debugf("timeline %s: destroyed", t.id)
}

// Destroyed reports whether Destroy has been called.
func (t *Timeline) Destroyed() bool { return t.destroyed }
