// Package headless is an in-memory charting engine. It keeps the filter
// list and hooks of every chart it creates and lets callers drive brushes
// and clicks without a display. Other engines embed its Chart for state.
package headless

import (
	"slices"
	"sync"
	"time"

	"github.com/safedep/timelineviewer/core/aggregate"
	"github.com/safedep/timelineviewer/core/chart"
)

// Engine records every chart it creates.
type Engine struct {
	mu     sync.Mutex
	charts []*Chart
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{}
}

// NewChart implements chart.Engine.
func (e *Engine) NewChart(container string, spec chart.Spec) (chart.Drawable, error) {
	c := NewChart(container, spec)

	e.mu.Lock()
	e.charts = append(e.charts, c)
	e.mu.Unlock()

	return c, nil
}

// Charts returns the created charts, oldest first.
func (e *Engine) Charts() []*Chart {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.charts)
}

// Last returns the most recently created chart, or nil.
func (e *Engine) Last() *Chart {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.charts) == 0 {
		return nil
	}
	return e.charts[len(e.charts)-1]
}

// Chart is an in-memory drawable.
type Chart struct {
	Container string
	Spec      chart.Spec

	// Renders and Redraws count completed draw passes.
	Renders int
	Redraws int

	filters []aggregate.Range
	hooks   map[chart.Hook][]func()
	clicks  map[chart.Selector][]func(chart.Datum)
}

// NewChart creates a drawable for spec.
func NewChart(container string, spec chart.Spec) *Chart {
	return &Chart{
		Container: container,
		Spec:      spec,
		hooks:     make(map[chart.Hook][]func()),
		clicks:    make(map[chart.Selector][]func(chart.Datum)),
	}
}

func (c *Chart) Render() error {
	c.Renders++
	c.fire(chart.HookPostRender)
	return nil
}

func (c *Chart) Redraw() error {
	c.Redraws++
	c.fire(chart.HookPostRedraw)
	return nil
}

func (c *Chart) Filters() []aggregate.Range {
	return slices.Clone(c.filters)
}

func (c *Chart) FilterAll() {
	c.filters = nil
	if c.Spec.Dimension != nil {
		c.Spec.Dimension.FilterAll()
	}
}

// Filter appends r to the filter list and narrows the dimension to it.
func (c *Chart) Filter(r aggregate.Range) {
	c.filters = append(c.filters, r)
	if c.Spec.Dimension != nil {
		c.Spec.Dimension.FilterRange(r)
	}
}

func (c *Chart) On(h chart.Hook, fn func()) {
	c.hooks[h] = append(c.hooks[h], fn)
}

func (c *Chart) OnClick(sel chart.Selector, fn func(chart.Datum)) {
	c.clicks[sel] = append(c.clicks[sel], fn)
}

// Brush simulates the user dragging a brush over r. An empty r clears the
// brush. It fires the filtered hook and redraws.
func (c *Chart) Brush(r aggregate.Range) error {
	c.FilterAll()
	if !r.Empty() {
		c.Filter(r)
	}
	c.fire(chart.HookFiltered)
	return c.Redraw()
}

// Click simulates a click on the element drawn for the bucket at key. It
// reports whether such an element exists.
func (c *Chart) Click(key time.Time) bool {
	d, ok := c.Datum(key)
	if !ok {
		return false
	}
	for _, fn := range c.clicks[c.Spec.Primitive.Selector()] {
		fn(d)
	}
	return true
}

// Datum returns the drawn bucket at key.
func (c *Chart) Datum(key time.Time) (chart.Datum, bool) {
	if c.Spec.Group == nil {
		return chart.Datum{}, false
	}
	v, ok := c.Spec.Group.Get(key)
	if !ok {
		return chart.Datum{}, false
	}
	return chart.Datum{Key: key, Value: v}, true
}

// Visible returns the buckets inside the x domain, ordered by key.
func (c *Chart) Visible() []chart.Datum {
	if c.Spec.Group == nil {
		return nil
	}
	var out []chart.Datum
	for _, b := range c.Spec.Group.All() {
		if c.Spec.Domain.Empty() || c.Spec.Domain.Contains(b.Key) {
			out = append(out, b)
		}
	}
	return out
}

// ClickHandlers returns how many click handlers are wired to sel.
func (c *Chart) ClickHandlers(sel chart.Selector) int {
	return len(c.clicks[sel])
}

func (c *Chart) fire(h chart.Hook) {
	for _, fn := range slices.Clone(c.hooks[h]) {
		fn()
	}
}
