package timeline

import (
	"time"

	"github.com/safedep/dry/log"
	"github.com/safedep/timelineviewer/core/aggregate"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/eventbus"
	"github.com/safedep/timelineviewer/core/options"
	"github.com/safedep/timelineviewer/core/record"
)

func (t *Timeline) initializeEvents() {
	t.On(eventbus.AfterSetData, func(eventbus.Event) { t.parseDates() })
	t.On(eventbus.AfterSetData, func(eventbus.Event) { t.chart.InitializeDates() })
	t.On(eventbus.AfterSetData, func(eventbus.Event) { t.dropAggregation() })
	t.On(eventbus.AfterSetFilter, func(eventbus.Event) { t.dropAggregation() })
	t.On(eventbus.BeforeRender, func(eventbus.Event) { t.setupAggregation() })
	t.On(eventbus.AfterSetOptionFor(string(options.DisplayChartType)), func(eventbus.Event) { t.swapChart() })

	dateChanged := func(eventbus.Event) {
		t.chart.InitializeDates()
		t.bus.Emit(eventbus.PeriodChanged, nil)
	}
	t.On(eventbus.AfterSetOptionFor(string(options.DisplayStartDate)), dateChanged)
	t.On(eventbus.AfterSetOptionFor(string(options.DisplayEndDate)), dateChanged)

	reparse := func(eventbus.Event) {
		t.parseDates()
		t.chart.InitializeDates()
	}
	t.On(eventbus.AfterSetOptionFor(string(options.DataDateFormat)), reparse)
	t.On(eventbus.AfterSetOptionFor(string(options.DataDateHandler)), reparse)

	t.On(eventbus.AfterSelectionRangeChanged, func(eventbus.Event) { t.refreshTable() })
}

// initializeChart builds the adapter selected by displayChartType and wires
// its events to the timeline bus.
func (t *Timeline) initializeChart() {
	kind := chart.KindOf(t.opts.String(options.DisplayChartType))
	c := chart.New(kind, t.container, t, t.engine)

	c.RelayTo(t.bus, relayed...)
	c.On(eventbus.DataClick, func(e eventbus.Event) {
		if d, ok := e.Payload.(chart.Datum); ok {
			t.handleDataClick(d)
		}
	})
	c.On(eventbus.DataBrush, func(eventbus.Event) { t.handleDataBrush() })

	t.chart = c
	c.InitializeDates()
}

// swapChart discards the active adapter, its window and its selection.
func (t *Timeline) swapChart() {
	old := t.chart
	old.Discard()
	t.dropAggregation()
	t.initializeChart()
	log.Debugf("timeline %s: chart swapped from %s to %s", t.id, old.Kind(), t.chart.Kind())
}

func (t *Timeline) parseDates() {
	format := t.opts.String(options.DataDateFormat)
	extract := t.opts.DateHandler()

	failed := 0
	for _, e := range t.data {
		e.Resolve(format, extract(e))
		if e.DateErr != nil {
			failed++
		}
	}
	if failed > 0 {
		log.Warnf("timeline %s: %d of %d events have no usable date", t.id, failed, len(t.data))
	}
}

func (t *Timeline) setupAggregation() {
	unit := t.chart.Scale()
	weight := t.opts.CountHandler()

	t.dimension = t.newDimension()
	t.group = t.dimension.Group(unit.Floor, weight)
}

// dropAggregation forgets the handles built for the last render. They hold
// the previous dataset and the discarded drawable's filter.
func (t *Timeline) dropAggregation() {
	t.dimension = nil
	t.group = nil
}

func (t *Timeline) newDimension() *chart.Dimension {
	return aggregate.NewDimension(t.GetData(), func(e *record.Event) (time.Time, bool) {
		return e.Date, e.HasDate()
	})
}

// refreshTable redraws a rendered table after the selection moved. Without
// current handles it narrows a fresh dimension to the selection.
func (t *Timeline) refreshTable() {
	if t.table == nil || !t.table.Rendered() {
		return
	}
	dim := t.dimension
	if dim == nil {
		dim = t.newDimension()
		if sel := t.GetSelectionRange(); !sel.Empty() {
			dim.FilterRange(sel)
		}
	}
	if err := t.table.Render(dim); err != nil {
		log.Errorf("timeline %s: %v", t.id, err)
	}
}

func (t *Timeline) handleDataClick(d chart.Datum) {
	var events []*record.Event
	if t.group != nil {
		events = t.group.Members(d.Key)
	}
	t.bus.Emit(eventbus.DataClick, ClickPayload{Key: d.Key, Value: d.Value, Events: events})
}

func (t *Timeline) handleDataBrush() {
	t.bus.Emit(eventbus.DataBrush, BrushPayload{
		Range:  t.GetSelectionRange(),
		Events: t.GetSelectedData(),
	})
}
