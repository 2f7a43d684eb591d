// Package terminal draws timeline charts and data tables as text with block
// glyphs, for printing to a terminal or embedding in a TUI.
package terminal

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/datatable"
	"github.com/safedep/timelineviewer/render"
	"github.com/safedep/timelineviewer/render/headless"
)

const (
	DefaultWidth = 80
	DefaultRows  = 10

	minRows = 3
	maxRows = 40

	defaultColor = "#5B9BD5"
)

var blocks = []rune(" ▁▂▃▄▅▆▇█")

// Engine draws charts and tables as text. Out may be nil, in which case
// views are only kept in memory.
type Engine struct {
	Out io.Writer

	// Width is the number of columns available. Zero uses DefaultWidth.
	Width int

	// Rows is the chart height in lines. Zero derives it from the chart
	// height in pixels.
	Rows int

	chart *Chart
	table string
}

func New(out io.Writer, width int) *Engine {
	return &Engine{Out: out, Width: width}
}

// NewChart implements chart.Engine.
func (e *Engine) NewChart(container string, spec chart.Spec) (chart.Drawable, error) {
	return &Chart{Chart: headless.NewChart(container, spec), engine: e, cursor: -1}, nil
}

// RenderTable implements datatable.Engine.
func (e *Engine) RenderTable(_ string, t datatable.Table) error {
	e.table = Table(t, e.width())
	return e.print(e.table)
}

// Chart returns the most recently rendered chart, or nil.
func (e *Engine) Chart() *Chart {
	return e.chart
}

// TableView returns the most recently rendered table.
func (e *Engine) TableView() string {
	return e.table
}

func (e *Engine) width() int {
	if e.Width <= 0 {
		return DefaultWidth
	}
	return e.Width
}

func (e *Engine) rows(spec chart.Spec) int {
	if e.Rows > 0 {
		return e.Rows
	}
	if spec.Height <= 0 {
		return DefaultRows
	}
	return min(max(spec.Height/25, minRows), maxRows)
}

func (e *Engine) print(view string) error {
	if e.Out == nil || view == "" {
		return nil
	}
	if _, err := fmt.Fprintln(e.Out, view); err != nil {
		return fmt.Errorf("failed to write view: %w", err)
	}
	return nil
}

// Chart is a drawable with a movable cursor over its buckets.
type Chart struct {
	*headless.Chart
	engine *Engine
	cursor int
}

func (c *Chart) Render() error {
	c.engine.chart = c
	if err := c.engine.print(c.View()); err != nil {
		return err
	}
	return c.Chart.Render()
}

// Buckets returns every bucket of the x domain, including empty ones.
func (c *Chart) Buckets() []chart.Datum {
	return render.Series(c.Spec)
}

// Cursor returns the bucket index under the cursor, or -1.
func (c *Chart) Cursor() int {
	return c.cursor
}

// SetCursor moves the cursor, clamped to the bucket range. A negative index
// hides it.
func (c *Chart) SetCursor(i int) {
	n := len(c.Buckets())
	switch {
	case i < 0 || n == 0:
		c.cursor = -1
	case i >= n:
		c.cursor = n - 1
	default:
		c.cursor = i
	}
}

// View draws the chart with its axes, selection and cursor.
func (c *Chart) View() string {
	spec := c.Spec
	data := c.Buckets()
	unit := spec.Units.Name()

	var out strings.Builder
	out.WriteString(titleStyle.Render(c.title()))
	out.WriteByte('\n')

	if len(data) == 0 {
		out.WriteString(dimStyle.Render("no events"))
		return out.String()
	}

	peak := 0.0
	for _, d := range data {
		peak = math.Max(peak, d.Value)
	}

	top := formatValue(peak)
	gutter := len(top) + 1
	width := max(c.engine.width()-gutter-1, 1)
	rows := c.engine.rows(spec)

	cols := layout(len(data), width, spec.Primitive == chart.PrimitiveBar)
	levels := make([]int, len(cols))
	for i, b := range cols {
		if b >= 0 && peak > 0 {
			levels[i] = int(math.Round(data[b].Value / peak * float64(rows*subsPerRow)))
		}
	}

	filters := c.Filters()
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(render.Primary(spec.Colors, defaultColor)))
	styleOf := func(col int) lipgloss.Style {
		b := cols[col]
		switch {
		case b < 0:
			return plainStyle
		case b == c.cursor:
			return cursorStyle
		case render.Selected(filters, spec.Units, data[b].Key):
			return selectedStyle
		}
		return bar
	}

	for row := rows - 1; row >= 0; row-- {
		label := ""
		switch row {
		case rows - 1:
			label = top
		case 0:
			label = "0"
		}
		out.WriteString(dimStyle.Render(fmt.Sprintf("%*s ┤", gutter-1, label)))
		out.WriteString(drawRow(levels, row, spec, styleOf))
		out.WriteByte('\n')
	}

	out.WriteString(dimStyle.Render(strings.Repeat(" ", gutter) + "└" + strings.Repeat("─", len(cols))))
	out.WriteByte('\n')
	out.WriteString(dimStyle.Render(axisLabels(
		render.Label(unit, data[0].Key), render.Label(unit, data[len(data)-1].Key), gutter+1, len(cols))))

	if c.cursor >= 0 && c.cursor < len(data) {
		at := 0
		for i, b := range cols {
			if b == c.cursor {
				at = i
				break
			}
		}
		d := data[c.cursor]
		out.WriteByte('\n')
		out.WriteString(strings.Repeat(" ", gutter+1+at))
		out.WriteString(cursorStyle.Render("▲ " + render.Label(unit, d.Key) + ": " + formatValue(d.Value)))
	}
	return out.String()
}

func (c *Chart) title() string {
	spec := c.Spec
	unit := spec.Units.Name()
	s := fmt.Sprintf("Events per %s, %s to %s", strings.TrimSuffix(unit, "s"),
		render.Label(unit, spec.Domain.From), render.Label(unit, spec.Domain.To))
	if f := c.Filters(); len(f) > 0 {
		s += fmt.Sprintf(" (selected %s to %s)", render.Label(unit, f[0].From), render.Label(unit, f[0].To))
	}
	return s
}

const subsPerRow = 8

// layout maps output columns to bucket indexes. Wide bucket columns end in
// a one column gap when gaps is set, marked -1.
func layout(n, width int, gaps bool) []int {
	if n <= 0 || width <= 0 {
		return nil
	}

	if n > width {
		cols := make([]int, width)
		for i := range cols {
			cols[i] = min((i*n)/width, n-1)
		}
		return cols
	}

	per := width / n
	gap := gaps && per >= 3
	cols := make([]int, 0, per*n)
	for b := 0; b < n; b++ {
		for j := 0; j < per; j++ {
			if gap && j == per-1 {
				cols = append(cols, -1)
				continue
			}
			cols = append(cols, b)
		}
	}
	return cols
}

// drawRow renders one line of the plot. Cells of equal style are rendered
// together.
func drawRow(levels []int, row int, spec chart.Spec, styleOf func(int) lipgloss.Style) string {
	threshold := row * subsPerRow

	var out strings.Builder
	var run []rune
	var current lipgloss.Style
	for col, level := range levels {
		style := styleOf(col)
		if len(run) > 0 && !sameStyle(style, current) {
			out.WriteString(current.Render(string(run)))
			run = run[:0]
		}
		current = style
		run = append(run, glyph(level-threshold, spec))
	}
	if len(run) > 0 {
		out.WriteString(current.Render(string(run)))
	}
	return out.String()
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() && a.GetBold() == b.GetBold()
}

// glyph picks the rune for a cell filled to fill eighths. Cells below the
// top of a column are more than full.
func glyph(fill int, spec chart.Spec) rune {
	switch {
	case fill <= 0:
		return blocks[0]
	case fill <= subsPerRow:
		if spec.Primitive == chart.PrimitiveLine && !spec.RenderArea {
			return '•'
		}
		return blocks[fill]
	case spec.Primitive == chart.PrimitiveBar:
		return blocks[subsPerRow]
	case spec.RenderArea:
		return '░'
	default:
		return blocks[0]
	}
}

func axisLabels(first, last string, indent, width int) string {
	pad := strings.Repeat(" ", indent)
	if first == last || width < len(first)+len(last)+1 {
		return pad + first
	}
	return pad + first + strings.Repeat(" ", width-len(first)-len(last)) + last
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
