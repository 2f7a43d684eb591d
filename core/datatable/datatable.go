// Package datatable renders the events behind a timeline as a grouped table.
package datatable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/safedep/dry/log"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/eventbus"
	"github.com/safedep/timelineviewer/core/options"
	"github.com/safedep/timelineviewer/core/record"
)

// Group is a run of rows sharing a grouping key.
type Group struct {
	Key  string
	Rows [][]any
}

// Table is a fully computed data table.
type Table struct {
	Columns []string
	Groups  []Group
}

// Len returns the number of rows across all groups.
func (t Table) Len() int {
	n := 0
	for _, g := range t.Groups {
		n += len(g.Rows)
	}
	return n
}

// Engine draws a computed table into a container.
type Engine interface {
	RenderTable(container string, t Table) error
}

// DataTable reads its columns, grouping rule and size from the timeline's
// option store at render time.
type DataTable struct {
	container string
	opts      *options.Store
	engine    Engine
	bus       *eventbus.Bus
	rendered  bool
}

func New(container string, opts *options.Store, engine Engine) *DataTable {
	return &DataTable{
		container: container,
		opts:      opts,
		engine:    engine,
		bus:       eventbus.New(),
	}
}

// On subscribes to a table event. Only afterRender is emitted.
func (d *DataTable) On(name string, fn eventbus.Handler) {
	d.bus.On(name, fn)
}

// Container returns the container the table draws into.
func (d *DataTable) Container() string { return d.container }

// Size is the maximum number of rows.
func (d *DataTable) Size() int { return d.opts.Int(options.DataTableSize) }

// Columns returns the configured columns, or nil.
func (d *DataTable) Columns() []options.Column { return d.opts.Columns() }

// GroupingRule returns the configured grouping rule, or nil.
func (d *DataTable) GroupingRule() options.GroupingRule { return d.opts.GroupingRule() }

// Rendered reports whether the table has been drawn at least once.
func (d *DataTable) Rendered() bool { return d.rendered }

// Valid reports whether the table can be rendered: columns, grouping rule
// and container must all be present.
func (d *DataTable) Valid() bool {
	return d.Columns() != nil && d.GroupingRule() != nil && strings.TrimSpace(d.container) != ""
}

// Build computes the table from the most recent Size events of dim.
func (d *DataTable) Build(dim *chart.Dimension) Table {
	cols := d.Columns()
	rule := d.GroupingRule()

	t := Table{Columns: make([]string, len(cols))}
	for i, c := range cols {
		t.Columns[i] = c.Label
	}
	if dim == nil || rule == nil {
		return t
	}

	events := dim.Top(d.Size())
	slices.SortStableFunc(events, record.ByDate)

	index := make(map[string]int)
	for _, e := range events {
		key := rule(e)
		i, ok := index[key]
		if !ok {
			i = len(t.Groups)
			index[key] = i
			t.Groups = append(t.Groups, Group{Key: key})
		}

		row := make([]any, len(cols))
		for j, c := range cols {
			row[j] = c.Value(e)
		}
		t.Groups[i].Rows = append(t.Groups[i].Rows, row)
	}

	slices.SortStableFunc(t.Groups, func(a, b Group) int { return strings.Compare(a.Key, b.Key) })
	return t
}

// Render draws the table. It does nothing when the table is not valid.
func (d *DataTable) Render(dim *chart.Dimension) error {
	if !d.Valid() {
		log.Debugf("data table %q: not valid, skipping render", d.container)
		return nil
	}
	if d.engine == nil {
		return fmt.Errorf("data table %q: %w", d.container, chart.ErrNoEngine)
	}

	if err := d.engine.RenderTable(d.container, d.Build(dim)); err != nil {
		return fmt.Errorf("failed to render data table %q: %w", d.container, err)
	}

	d.rendered = true
	d.bus.Emit(eventbus.AfterRender, nil)
	return nil
}

// Discard drops every subscription.
func (d *DataTable) Discard() {
	d.bus.Reset()
}
