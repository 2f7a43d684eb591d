// Package chart implements the timeline chart adapter: the display window,
// the selection range and period navigation shared by the bar, line and area
// variants, on top of a pluggable drawing Engine.
package chart

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/safedep/dry/log"
	"github.com/safedep/timelineviewer/core/aggregate"
	"github.com/safedep/timelineviewer/core/eventbus"
	"github.com/safedep/timelineviewer/core/granularity"
	"github.com/safedep/timelineviewer/core/options"
)

// ErrNoEngine is returned by Render when the chart has no drawing engine.
var ErrNoEngine = errors.New("chart has no drawing engine")

// Host is what a chart needs from the timeline that owns it.
type Host interface {
	Options() *options.Store
	EarliestDate() time.Time
	LatestDate() time.Time
}

// Chart is the adapter between a timeline and a drawing engine.
type Chart struct {
	id        uuid.UUID
	kind      Kind
	variant   variant
	container string
	host      Host
	engine    Engine
	bus       *eventbus.Bus

	drawable  Drawable
	selection aggregate.Range
	start     time.Time
	end       time.Time
	filtering bool
}

// New creates a chart of the given kind. The display window is left unset
// until InitializeDates is called.
func New(kind Kind, container string, host Host, engine Engine) *Chart {
	kind = KindOf(string(kind))
	c := &Chart{
		id:        uuid.New(),
		kind:      kind,
		variant:   variants[kind],
		container: container,
		host:      host,
		engine:    engine,
		bus:       eventbus.New(),
	}
	c.initializeEvents()
	return c
}

// ID identifies this adapter instance.
func (c *Chart) ID() uuid.UUID { return c.id }

// Kind returns the chart variant.
func (c *Chart) Kind() Kind { return c.kind }

// Container returns the container the chart draws into.
func (c *Chart) Container() string { return c.container }

// Drawable returns the engine chart from the last render, or nil.
func (c *Chart) Drawable() Drawable { return c.drawable }

// On subscribes to a chart event.
func (c *Chart) On(name string, fn eventbus.Handler) {
	c.bus.On(name, fn)
}

// RelayTo re-emits the named chart events on dst.
func (c *Chart) RelayTo(dst *eventbus.Bus, names ...string) {
	eventbus.Relay(c.bus, dst, names...)
}

// Discard drops every subscription. The chart must not be used afterwards.
func (c *Chart) Discard() {
	c.bus.Reset()
	c.drawable = nil
}

// Render builds a drawable from the aggregation handles and draws it.
func (c *Chart) Render(dim *Dimension, group *Group) error {
	if c.engine == nil {
		return ErrNoEngine
	}

	spec := Spec{
		Dimension: dim,
		Group:     group,
		Width:     c.Width(),
		Height:    c.Height(),
		Margins:   c.Margins(),
		Colors:    c.Colors(),
		Ticks:     c.Ticks(),
		Brush:     c.Brushable(),
		Domain:    aggregate.NewRange(c.StartDate(), c.EndDate()),
		Units:     c.Scale(),
	}
	c.variant.draw(&spec)

	d, err := c.engine.NewChart(c.container, spec)
	if err != nil {
		return fmt.Errorf("failed to create %s chart: %w", c.kind, err)
	}

	c.drawable = d
	c.filtering = false
	if !c.selection.Empty() {
		d.Filter(c.selection)
	}

	d.On(HookPostRender, func() { c.bus.Emit(eventbus.AfterRender, nil) })
	d.On(HookFiltered, func() { c.filtering = true })
	d.On(HookPostRedraw, func() {
		if !c.filtering {
			return
		}
		c.filtering = false
		c.selection = firstFilter(d)
		c.bus.Emit(eventbus.DataBrush, nil)
	})

	log.Debugf("chart %s: rendering %s into %q, window %s - %s",
		c.id, c.kind, c.container, spec.Domain.From.Format(time.RFC3339), spec.Domain.To.Format(time.RFC3339))

	return d.Render()
}

// SetSelectionRange selects [from, to]. A zero bound clears the selection.
// The before/after events fire even when the range does not change.
func (c *Chart) SetSelectionRange(from, to time.Time) {
	c.bus.Emit(eventbus.BeforeSetSelectionRange, nil)
	if !from.IsZero() && !to.IsZero() {
		c.selection = aggregate.NewRange(from, to)
	} else {
		c.selection = aggregate.Range{}
	}
	c.bus.Emit(eventbus.AfterSetSelectionRange, nil)
	c.bus.Emit(eventbus.AfterSelectionRangeChanged, nil)
}

// GetSelectionRange returns the drawable's active filter once rendered,
// otherwise the locally held range.
func (c *Chart) GetSelectionRange() aggregate.Range {
	if c.drawable != nil {
		return firstFilter(c.drawable)
	}
	return c.selection
}

// ClearSelectionRange empties the selection.
func (c *Chart) ClearSelectionRange() {
	c.SetSelectionRange(time.Time{}, time.Time{})
}

// NextPeriod moves the display window forward by one navigation step.
func (c *Chart) NextPeriod() {
	c.bus.Emit(eventbus.BeforeNextPeriod, nil)
	step := c.NavigationStep()
	c.start = step.Increment(c.StartDate())
	c.end = step.Increment(c.EndDate())
	c.bus.Emit(eventbus.AfterNextPeriod, nil)
	c.bus.Emit(eventbus.PeriodChanged, nil)
}

// PreviousPeriod moves the display window back by one navigation step.
func (c *Chart) PreviousPeriod() {
	c.bus.Emit(eventbus.BeforePreviousPeriod, nil)
	step := c.NavigationStep()
	c.start = step.Decrement(c.StartDate())
	c.end = step.Decrement(c.EndDate())
	c.bus.Emit(eventbus.AfterPreviousPeriod, nil)
	c.bus.Emit(eventbus.PeriodChanged, nil)
}

// InitializeDates resolves the display window from the start/end date
// options. The auto sentinel, and any literal that cannot be read, resolve
// to the host's earliest/latest date.
func (c *Chart) InitializeDates() {
	c.start = c.resolveDate(options.DisplayStartDate, c.host.EarliestDate)
	c.end = c.resolveDate(options.DisplayEndDate, c.host.LatestDate)
	log.Debugf("chart %s: window initialised to %s - %s", c.id, c.start, c.end)
}

func (c *Chart) resolveDate(name options.Name, auto func() time.Time) time.Time {
	t, isAuto, err := c.host.Options().Date(name)
	if err != nil {
		log.Warnf("chart %s: %v, falling back to %s", c.id, err, options.Auto)
		return auto()
	}
	if isAuto {
		return auto()
	}
	return t
}

// Window returns the current display window.
func (c *Chart) Window() aggregate.Range {
	return aggregate.NewRange(c.StartDate(), c.EndDate())
}

// StartDate is the window start, or the current time when unset.
func (c *Chart) StartDate() time.Time {
	if c.start.IsZero() {
		return time.Now()
	}
	return c.start
}

// EndDate is the window end, or the current time when unset.
func (c *Chart) EndDate() time.Time {
	if c.end.IsZero() {
		return time.Now()
	}
	return c.end
}

// Width is the display width option.
func (c *Chart) Width() int { return c.host.Options().Int(options.DisplayWidth) }

// Height is the display height option.
func (c *Chart) Height() int { return c.host.Options().Int(options.DisplayHeight) }

// Margins is the display margins option.
func (c *Chart) Margins() options.Margins { return c.host.Options().Margins() }

// Ticks is the y axis tick count option.
func (c *Chart) Ticks() int { return c.host.Options().Int(options.DisplayTicks) }

// Colors is the display colour sequence.
func (c *Chart) Colors() []string { return c.host.Options().Strings(options.DisplayColors) }

// Brushable reports whether the interaction type is brush.
func (c *Chart) Brushable() bool {
	return c.host.Options().String(options.DisplayInteractionType) == options.InteractionBrush
}

// Scale is the bucket unit. An unknown displayScale panics.
func (c *Chart) Scale() granularity.Unit {
	return granularity.MustLookup(c.host.Options().String(options.DisplayScale))
}

// NavigationStep is the period navigation unit. An unknown displayNavigationStep panics.
func (c *Chart) NavigationStep() granularity.Unit {
	return granularity.MustLookup(c.host.Options().String(options.DisplayNavigationStep))
}

func (c *Chart) initializeEvents() {
	c.bus.On(eventbus.AfterSetSelectionRange, func(eventbus.Event) { c.applySelection() })
	c.bus.On(eventbus.DataBrush, func(eventbus.Event) { c.bus.Emit(eventbus.AfterSelectionRangeChanged, nil) })
	c.bus.On(eventbus.AfterRender, func(eventbus.Event) { c.initializeInteractions() })
}

func (c *Chart) initializeInteractions() {
	if c.drawable == nil {
		return
	}
	c.variant.interactions(c.drawable, func(d Datum) { c.bus.Emit(eventbus.DataClick, d) })
}

// applySelection resets the drawable's filters to exactly the local range.
func (c *Chart) applySelection() {
	if c.drawable == nil {
		return
	}
	c.drawable.FilterAll()
	if !c.selection.Empty() {
		c.drawable.Filter(c.selection)
	}
	if err := c.drawable.Redraw(); err != nil {
		log.Errorf("chart %s: redraw failed: %v", c.id, err)
	}
}

func firstFilter(d Drawable) aggregate.Range {
	filters := d.Filters()
	if len(filters) == 0 {
		return aggregate.Range{}
	}
	return filters[0]
}
