package chart

import (
	"time"

	"github.com/safedep/timelineviewer/core/aggregate"
	"github.com/safedep/timelineviewer/core/granularity"
	"github.com/safedep/timelineviewer/core/options"
	"github.com/safedep/timelineviewer/core/record"
)

// Dimension and Group are the aggregation handles a chart draws from.
type (
	Dimension = aggregate.Dimension[*record.Event]
	Group     = aggregate.Group[*record.Event]
)

// Datum is one drawn (bucket, aggregate) pair.
type Datum = aggregate.Bucket

// Primitive is the geometry an engine draws.
type Primitive int

const (
	PrimitiveBar Primitive = iota
	PrimitiveLine
)

// Selector names a class of drawn elements that can be clicked.
type Selector string

const (
	SelectorBar Selector = ".bar"
	SelectorDot Selector = ".dot"
)

// Selector returns the clickable element class drawn by p.
func (p Primitive) Selector() Selector {
	if p == PrimitiveBar {
		return SelectorBar
	}
	return SelectorDot
}

func (p Primitive) String() string {
	if p == PrimitiveBar {
		return "bar"
	}
	return "line"
}

// Hook is a drawable lifecycle point.
type Hook string

const (
	HookPostRender Hook = "postRender"
	HookFiltered   Hook = "filtered"
	HookPostRedraw Hook = "postRedraw"
)

// Spec is everything an engine needs to draw one chart.
type Spec struct {
	Primitive  Primitive
	RenderArea bool

	Dimension *Dimension
	Group     *Group

	Width   int
	Height  int
	Margins options.Margins
	Colors  []string
	Ticks   int
	Brush   bool

	// Domain fixes the x axis to [From, To].
	Domain aggregate.Range

	// Units defines what one step on the x axis is.
	Units granularity.Unit
}

// XUnits returns the x axis unit boundaries inside the domain.
func (s Spec) XUnits() []time.Time {
	if s.Domain.Empty() {
		return nil
	}
	return s.Units.Sequence(s.Domain.From, s.Domain.To)
}

// Engine constructs drawables bound to a container.
type Engine interface {
	NewChart(container string, spec Spec) (Drawable, error)
}

// Drawable is a chart produced by an Engine.
//
// A drawable holds a list of range filters. FilterAll and Filter are
// programmatic and never fire HookFiltered; user interaction (brushing) does.
type Drawable interface {
	Render() error
	Redraw() error

	Filters() []aggregate.Range
	FilterAll()
	Filter(r aggregate.Range)

	On(h Hook, fn func())
	OnClick(sel Selector, fn func(Datum))
}
