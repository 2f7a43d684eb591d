// Package echarts renders timeline charts as standalone HTML pages using
// Apache ECharts.
//
// The page is written when a chart is rendered. Redraws update the in-memory
// selection only; render again to write a page reflecting it.
package echarts

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/safedep/timelineviewer/core/aggregate"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/render"
	"github.com/safedep/timelineviewer/render/headless"
)

const (
	defaultColor   = "#4682B4"
	highlightColor = "#F0AD4E"
	seriesName     = "events"
)

// Engine writes one HTML page per rendered chart to Out.
type Engine struct {
	Out       io.Writer
	PageTitle string
}

func New(out io.Writer, title string) *Engine {
	return &Engine{Out: out, PageTitle: title}
}

// NewChart implements chart.Engine.
func (e *Engine) NewChart(container string, spec chart.Spec) (chart.Drawable, error) {
	if e.Out == nil {
		return nil, fmt.Errorf("echarts engine for %q has no output", container)
	}
	return &Chart{Chart: headless.NewChart(container, spec), engine: e}, nil
}

// Chart is a drawable that writes an HTML page on Render.
type Chart struct {
	*headless.Chart
	engine *Engine
}

func (c *Chart) Render() error {
	if err := c.write(c.engine.Out); err != nil {
		return fmt.Errorf("failed to write chart page: %w", err)
	}
	return c.Chart.Render()
}

func (c *Chart) write(w io.Writer) error {
	spec := c.Spec
	data := render.Series(spec)
	filters := c.Filters()
	color := render.Primary(spec.Colors, defaultColor)

	labels := make([]string, len(data))
	for i, d := range data {
		labels[i] = render.Label(spec.Units.Name(), d.Key)
	}

	global := c.globalOptions(filters)

	if spec.Primitive == chart.PrimitiveBar {
		items := make([]opts.BarData, len(data))
		for i, d := range data {
			items[i] = opts.BarData{Value: d.Value}
			if render.Selected(filters, spec.Units, d.Key) {
				items[i].ItemStyle = &opts.ItemStyle{Color: highlightColor}
			}
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(global...)
		bar.SetXAxis(labels).
			AddSeries(seriesName, items).
			SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: color}))
		return bar.Render(w)
	}

	items := make([]opts.LineData, len(data))
	for i, d := range data {
		items[i] = opts.LineData{Value: d.Value}
	}

	series := []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
	}
	if spec.RenderArea {
		series = append(series, charts.WithAreaStyleOpts(opts.AreaStyle{Color: color, Opacity: 0.4}))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(global...)
	line.SetXAxis(labels).
		AddSeries(seriesName, items).
		SetSeriesOptions(series...)
	return line.Render(w)
}

func (c *Chart) globalOptions(filters []aggregate.Range) []charts.GlobalOpts {
	spec := c.Spec

	subtitle := fmt.Sprintf("%s to %s, per %s",
		render.Label(spec.Units.Name(), spec.Domain.From),
		render.Label(spec.Units.Name(), spec.Domain.To),
		spec.Units.Name())
	if len(filters) > 0 {
		subtitle += fmt.Sprintf(" (selected %s to %s)",
			render.Label(spec.Units.Name(), filters[0].From),
			render.Label(spec.Units.Name(), filters[0].To))
	}

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.engine.PageTitle,
			Width:     pixels(spec.Width),
			Height:    pixels(spec.Height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.engine.PageTitle,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithGridOpts(opts.Grid{
			Top:    pixels(spec.Margins.Top + 50),
			Right:  pixels(spec.Margins.Right),
			Bottom: pixels(spec.Margins.Bottom + 30),
			Left:   pixels(spec.Margins.Left),
		}),
		charts.WithYAxisOpts(opts.YAxis{SplitNumber: spec.Ticks}),
	}
	if spec.Brush {
		global = append(global, charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}))
	}
	return global
}

func pixels(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n) + "px"
}
