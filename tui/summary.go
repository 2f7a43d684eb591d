package tui

import (
	"time"

	"github.com/safedep/timelineviewer/core/datatable"
	"github.com/safedep/timelineviewer/core/timeline"
	"github.com/safedep/timelineviewer/render"
	"github.com/spf13/cast"
)

// Summarize reduces the display window of tl to one bucket per scale unit.
// Buckets without events are included with a zero value.
func Summarize(tl *timeline.Timeline, title string) *SummaryView {
	c := tl.Chart()
	unit := c.Scale()
	window := c.Window()

	view := &SummaryView{
		Title:   title,
		Scale:   unit.Name(),
		From:    window.From,
		To:      window.To,
		Buckets: []*BucketView{},
	}

	for _, e := range tl.GetData() {
		if e.HasDate() {
			view.Total++
		} else {
			view.Undated++
		}
	}

	sel := tl.GetSelectionRange()
	if !sel.Empty() {
		view.Selection = &RangeView{From: sel.From, To: sel.To}
		view.Selected = len(tl.GetSelectedData())
	}

	group := tl.Group()
	for k := unit.Floor(window.From); !k.After(window.To) && len(view.Buckets) < render.MaxBuckets; k = unit.Increment(k) {
		b := &BucketView{Key: k, Label: render.Label(unit.Name(), k)}
		if group != nil {
			b.Value, _ = group.Get(k)
		}
		b.Selected = render.Overlaps(sel, unit, k)
		view.Buckets = append(view.Buckets, b)
	}

	return view
}

// Events lays out the rows the data table of tl would show. A timeline
// without a data table uses its option store directly.
func Events(tl *timeline.Timeline) *EventsView {
	dt := tl.DataTable()
	if dt == nil {
		dt = datatable.New(tl.Container(), tl.Options(), nil)
	}
	return EventsFromTable(dt.Build(tl.Dimension()))
}

// EventsFromTable flattens a computed table into rows of text.
func EventsFromTable(t datatable.Table) *EventsView {
	view := &EventsView{Columns: t.Columns, Rows: []*EventRowView{}}
	for _, g := range t.Groups {
		for _, r := range g.Rows {
			row := &EventRowView{Group: g.Key, Values: make([]string, len(r))}
			for i, v := range r {
				row.Values[i] = cellText(v)
			}
			view.Rows = append(view.Rows, row)
		}
	}
	return view
}

func cellText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case time.Time:
		return FormatTime(v)
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return formatAny(v)
		}
		return s
	}
}
